// Package validator checks a dive step's absolute pressure against the
// ascent ceiling computed by a decocore.Model, and reports a typed
// failure when the step sits below its ceiling.
package validator

import (
	"github.com/m5lapp/decocore"
	"github.com/m5lapp/decocore/decoerr"
)

// Step is one (pressure, data) tuple emitted by a dive planner.
type Step struct {
	Pressure float64
	Data     decocore.Data
}

// Validator inspects steps against a single model. It carries no state
// of its own across calls; each Validate evaluates the step's ceiling
// from the model and the step's data alone.
type Validator struct {
	model *decocore.Model
}

// New constructs a Validator bound to model.
func New(model *decocore.Model) *Validator {
	return &Validator{model: model}
}

// Validate computes the step's ceiling from the validator's model and
// the step's own gradient factor, and returns a *decoerr.CeilingViolation
// if the step's pressure is strictly less than that ceiling. Sitting
// exactly at the ceiling is permitted.
func (v *Validator) Validate(step Step) error {
	ceiling, err := v.model.PressureLimit(step.Data, step.Data.GF)
	if err != nil {
		return err
	}

	if step.Pressure < ceiling {
		return &decoerr.CeilingViolation{
			Pressure: step.Pressure,
			Ceiling:  ceiling,
		}
	}

	return nil
}

// ValidateAll validates each step in order, stopping at and returning
// the first violation encountered. It returns nil if every step passes.
func (v *Validator) ValidateAll(steps []Step) error {
	for _, step := range steps {
		if err := v.Validate(step); err != nil {
			return err
		}
	}
	return nil
}
