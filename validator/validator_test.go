package validator

import (
	"errors"
	"testing"

	"github.com/m5lapp/decocore"
	"github.com/m5lapp/decocore/decoerr"
)

func TestValidateAcceptsPressureAtOrAboveCeiling(t *testing.T) {
	m, err := decocore.New(decocore.ZHL16BGF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := m.Init(1.01325)
	v := New(m)

	ceiling, err := m.PressureLimit(data, data.GF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step := Step{Pressure: ceiling, Data: data}
	if err := v.Validate(step); err != nil {
		t.Errorf("want nil at exact ceiling; got %v", err)
	}

	step.Pressure = ceiling + 1.0
	if err := v.Validate(step); err != nil {
		t.Errorf("want nil above ceiling; got %v", err)
	}
}

func TestValidateRejectsPressureBelowCeiling(t *testing.T) {
	m, err := decocore.New(decocore.ZHL16BGF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := m.Init(1.01325)
	v := New(m)

	ceiling, err := m.PressureLimit(data, data.GF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step := Step{Pressure: ceiling - 0.5, Data: data}
	err = v.Validate(step)
	if err == nil {
		t.Fatal("want a ceiling violation; got nil")
	}

	if !errors.Is(err, decoerr.ErrCeilingViolated) {
		t.Errorf("want: %v; got: %v", decoerr.ErrCeilingViolated, err)
	}

	var cv *decoerr.CeilingViolation
	if !errors.As(err, &cv) {
		t.Fatalf("want *decoerr.CeilingViolation; got %T", err)
	}
	if cv.Pressure != step.Pressure {
		t.Errorf("want pressure %f; got %f", step.Pressure, cv.Pressure)
	}
	if cv.Ceiling != ceiling {
		t.Errorf("want ceiling %f; got %f", ceiling, cv.Ceiling)
	}
}

func TestValidateAllStopsAtFirstViolation(t *testing.T) {
	m, err := decocore.New(decocore.ZHL16BGF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := m.Init(1.01325)
	v := New(m)

	ceiling, err := m.PressureLimit(data, data.GF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := []Step{
		{Pressure: ceiling + 1.0, Data: data},
		{Pressure: ceiling - 0.5, Data: data},
		{Pressure: ceiling + 2.0, Data: data},
	}

	err = v.ValidateAll(steps)
	if !errors.Is(err, decoerr.ErrCeilingViolated) {
		t.Errorf("want: %v; got: %v", decoerr.ErrCeilingViolated, err)
	}
}

func TestValidateAllAcceptsCleanProfile(t *testing.T) {
	m, err := decocore.New(decocore.ZHL16BGF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := m.Init(1.01325)
	v := New(m)

	ceiling, err := m.PressureLimit(data, data.GF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := []Step{
		{Pressure: ceiling + 3.0, Data: data},
		{Pressure: ceiling + 1.0, Data: data},
		{Pressure: ceiling, Data: data},
	}

	if err := v.ValidateAll(steps); err != nil {
		t.Errorf("want nil; got %v", err)
	}
}
