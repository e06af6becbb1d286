// Package decocore implements the Bühlmann ZH-L16 inert-gas saturation
// model extended with Eric Baker's gradient-factor (GF) ascent-ceiling
// method. It tracks the partial pressure of nitrogen in sixteen tissue
// compartments and derives, from the gradient-factor-scaled M-value line,
// the shallowest absolute pressure a diver may occupy at any point in a
// dive.
//
// The package is purely computational: it holds no state beyond the
// coefficient tables bound to a Model at construction time, and every
// operation that advances a dive returns a fresh Data value rather than
// mutating its input.
package decocore

import (
	"fmt"
	"math"

	"github.com/m5lapp/decocore/decoerr"
	"github.com/m5lapp/decocore/gasmix"
)

// NumCompartments is the number of tissue compartments tracked by the
// model, per inert gas.
const NumCompartments = 16

// WaterVapourPressureDefault is the canonical alveolar water-vapour
// pressure used by Baker's reference, in bar.
const WaterVapourPressureDefault = 0.0627

// GFLowDefault and GFHighDefault are the gradient-factor bounds a Model
// uses when none are supplied to New.
const (
	GFLowDefault  = 0.30
	GFHighDefault = 0.85
)

// Data is the inert-gas state of a dive at one instant: the partial
// pressure of nitrogen in each of the 16 compartments, and the
// gradient-factor value currently in force. Data is immutable; every
// Model method that advances a dive returns a new Data rather than
// mutating its receiver's argument, so a planner can discard an
// unfavourable probe at no cost to the state it branched from.
type Data struct {
	Tissues [NumCompartments]float64
	GF      float64
}

// Variant selects one of the two standard ZH-L16 coefficient
// parameterizations.
type Variant int

const (
	// ZHL16BGF is tuned for table-based dive planning.
	ZHL16BGF Variant = iota
	// ZHL16CGF is tuned for real-time dive computers.
	ZHL16CGF
)

func (v Variant) String() string {
	switch v {
	case ZHL16BGF:
		return "ZH-L16B-GF"
	case ZHL16CGF:
		return "ZH-L16C-GF"
	}
	return "unknown variant"
}

// coefficientSet holds the six 16-entry tables (A, B, half-life, for
// each of N2 and He) that distinguish one ZH-L16 variant from another.
// Values are fixed by the reference model and must be reproduced
// verbatim; any divergence changes dive outcomes.
type coefficientSet struct {
	n2A        [NumCompartments]float64
	n2B        [NumCompartments]float64
	n2HalfLife [NumCompartments]float64
	heA        [NumCompartments]float64
	heB        [NumCompartments]float64
	heHalfLife [NumCompartments]float64
}

var zhl16bCoefficients = coefficientSet{
	n2A: [NumCompartments]float64{
		1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5600, 0.4947, 0.4500,
		0.4187, 0.3798, 0.3497, 0.3223, 0.2850, 0.2737, 0.2523, 0.2327,
	},
	n2B: [NumCompartments]float64{
		0.5578, 0.6514, 0.7222, 0.7825, 0.8126, 0.8434, 0.8693, 0.8910,
		0.9092, 0.9222, 0.9319, 0.9403, 0.9477, 0.9544, 0.9602, 0.9653,
	},
	n2HalfLife: [NumCompartments]float64{
		5.0, 8.0, 12.5, 18.5, 27.0, 38.3, 54.3, 77.0, 109.0, 146.0, 187.0,
		239.0, 305.0, 390.0, 498.0, 635.0,
	},
	heA: [NumCompartments]float64{
		1.6189, 1.3830, 1.1919, 1.0458, 0.9220, 0.8205, 0.7305, 0.6502,
		0.5950, 0.5545, 0.5333, 0.5189, 0.5181, 0.5176, 0.5172, 0.5119,
	},
	heB: [NumCompartments]float64{
		0.4770, 0.5747, 0.6527, 0.7223, 0.7582, 0.7957, 0.8279, 0.8553,
		0.8757, 0.8903, 0.8997, 0.9073, 0.9122, 0.9171, 0.9217, 0.9267,
	},
	heHalfLife: [NumCompartments]float64{
		1.88, 3.02, 4.72, 6.99, 10.21, 14.48, 20.53, 29.11, 41.20, 55.19,
		70.69, 90.34, 115.29, 147.42, 188.24, 240.03,
	},
}

// zhl16cCoefficients is the ZH-L16C-GF table. It is derived from
// zhl16bCoefficients at init time; only compartment 0 (and N2_A[4..14])
// differ between the two variants, so the C table is built by copying B
// and overwriting the differing entries, the same way the reference
// source's two classes share their tail entries verbatim.
var zhl16cCoefficients = buildZHL16CCoefficients()

func buildZHL16CCoefficients() coefficientSet {
	c := zhl16bCoefficients

	c.n2A[0] = 1.2599
	c.n2A[4] = 0.6200
	c.n2A[5] = 0.5043
	c.n2A[6] = 0.4410
	c.n2A[7] = 0.4000
	c.n2A[8] = 0.3750
	c.n2A[9] = 0.3500
	c.n2A[10] = 0.3295
	c.n2A[11] = 0.3065
	c.n2A[12] = 0.2835
	c.n2A[13] = 0.2610
	c.n2A[14] = 0.2480
	c.n2A[15] = 0.2327

	c.n2B[0] = 0.5050
	c.n2HalfLife[0] = 4.0
	c.heA[0] = 1.7424
	c.heB[0] = 0.4245
	c.heHalfLife[0] = 1.51

	return c
}

func coefficientsFor(v Variant) coefficientSet {
	if v == ZHL16CGF {
		return zhl16cCoefficients
	}
	return zhl16bCoefficients
}

// tissueCalculator applies the Schreiner loader across all 16
// compartments of a single inert gas (nitrogen), using the variant's
// half-life table and a fixed water-vapour-pressure constant. It holds
// no mutable state.
type tissueCalculator struct {
	n2HalfLife          [NumCompartments]float64
	waterVapourPressure float64
}

// loadTissue evaluates the Schreiner equation for compartment k, using
// the tissue calculator's half-life table and water-vapour-pressure
// constant, and the gas mix's nitrogen fraction.
func (tc *tissueCalculator) loadTissue(absP, tSec float64, gas *gasmix.GasMix, rate, pTissue float64, k int) (float64, error) {
	return schreinerLoad(absP, tSec, gas.N2/100.0, rate, pTissue, tc.n2HalfLife[k], tc.waterVapourPressure)
}

// schreinerLoad computes the new partial pressure of an inert gas in one
// compartment after a linear ambient-pressure change over a segment.
//
// absP is the absolute pressure in bar at the start of the segment,
// tSec the segment duration in seconds (strictly positive), fg the
// inert-gas fraction in (0, 1], rate the rate of ambient-pressure change
// in bar/min (negative for ascent), pTissue the compartment's current
// partial pressure in bar, halfLife the compartment half-life in
// minutes, and waterVapourPressure the alveolar water-vapour pressure in
// bar.
func schreinerLoad(absP, tSec, fg, rate, pTissue, halfLife, waterVapourPressure float64) (float64, error) {
	if tSec <= 0 {
		return 0, fmt.Errorf("%w: segment time must be strictly positive, got %f", decoerr.ErrBadArgument, tSec)
	}
	if fg <= 0 || fg > 1 {
		return 0, fmt.Errorf("%w: inert-gas fraction must be in (0, 1], got %f", decoerr.ErrBadArgument, fg)
	}

	palv := fg * (absP - waterVapourPressure)
	t := tSec / 60.0
	k := math.Ln2 / halfLife
	rg := fg * rate

	pNew := palv + rg*(t-1/k) - (palv-pTissue-rg/k)*math.Exp(-k*t)
	return pNew, nil
}

// gfCeiling computes the ascent-ceiling absolute pressure for one
// compartment given its current nitrogen and helium partial pressures,
// the variant's N2 A/B coefficients, and a gradient-factor value. The
// core always calls this with pHe == 0, per the reference source's
// explicit nitrogen-only simplification; the parameter is kept so a
// future extension can thread helium through without reshaping the
// equation.
func gfCeiling(pN2, pHe, a, b, gf float64) (float64, error) {
	if gf <= 0 || gf > 1.5 {
		return 0, fmt.Errorf("%w: gf must be in (0, 1.5], got %f", decoerr.ErrBadArgument, gf)
	}

	p := pN2 + pHe
	if p == 0 {
		return 0, fmt.Errorf("%w: cannot evaluate ceiling against a zero total compartment pressure", decoerr.ErrBadArgument)
	}

	aw := (a*pN2 + 0*pHe) / p
	bw := (b*pN2 + 0*pHe) / p

	return (p - aw*gf) / (gf/bw + 1 - gf), nil
}

// Model holds a variant's coefficient tables, gradient-factor bounds and
// water-vapour-pressure constant. It is read-only after New; the same
// Model may be shared across dives.
type Model struct {
	variant Variant
	coefs   coefficientSet
	calc    tissueCalculator
	gfLow   float64
	gfHigh  float64
}

// Option configures a Model constructed by New.
type Option func(*Model)

// WithGFBounds overrides the default gradient-factor bounds.
func WithGFBounds(gfLow, gfHigh float64) Option {
	return func(m *Model) {
		m.gfLow = gfLow
		m.gfHigh = gfHigh
	}
}

// WithWaterVapourPressure overrides the default water-vapour-pressure
// constant.
func WithWaterVapourPressure(p float64) Option {
	return func(m *Model) {
		m.calc.waterVapourPressure = p
	}
}

// New constructs a Model for the given variant, with default GF bounds
// of 0.30/0.85 and a water-vapour pressure of 0.0627 bar unless
// overridden by opts.
func New(variant Variant, opts ...Option) (*Model, error) {
	coefs := coefficientsFor(variant)

	m := &Model{
		variant: variant,
		coefs:   coefs,
		calc: tissueCalculator{
			n2HalfLife:          coefs.n2HalfLife,
			waterVapourPressure: WaterVapourPressureDefault,
		},
		gfLow:  GFLowDefault,
		gfHigh: GFHighDefault,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.gfLow <= 0 || m.gfHigh > 1.5 || m.gfLow > m.gfHigh {
		return nil, fmt.Errorf("%w: gf bounds must satisfy 0 < gf_low <= gf_high <= 1.5, got low=%f high=%f", decoerr.ErrBadArgument, m.gfLow, m.gfHigh)
	}

	return m, nil
}

// Variant returns the model's coefficient variant.
func (m *Model) Variant() Variant {
	return m.variant
}

// Init constructs a Data with every compartment loaded to the
// equilibrium nitrogen partial pressure of air at the given surface
// pressure, and gf set to the model's gf_low.
func (m *Model) Init(surfacePressure float64) Data {
	p := 0.7902 * (surfacePressure - m.calc.waterVapourPressure)

	var d Data
	for k := 0; k < NumCompartments; k++ {
		d.Tissues[k] = p
	}
	d.GF = m.gfLow

	return d
}

// Load applies the Schreiner loader to every compartment for a segment
// of absolute pressure absP, duration tSec seconds, gas mix gas and
// pressure rate of change rate (bar/min), and returns a new Data
// carrying the updated tissue pressures and the input data's gf
// unchanged; the planner decides when to advance gf.
func (m *Model) Load(absP, tSec float64, gas *gasmix.GasMix, rate float64, data Data) (Data, error) {
	var next Data
	next.GF = data.GF

	for k := 0; k < NumCompartments; k++ {
		p, err := m.calc.loadTissue(absP, tSec, gas, rate, data.Tissues[k], k)
		if err != nil {
			return Data{}, err
		}
		next.Tissues[k] = p
	}

	return next, nil
}

// GFLimit applies the GF-ceiling equation to every compartment of data,
// using the model's N2 A/B coefficient tables, and returns the 16
// resulting ceilings in compartment index order. If gf is zero, the
// model's gf_low is used.
func (m *Model) GFLimit(gf float64, data Data) ([NumCompartments]float64, error) {
	if gf == 0 {
		gf = m.gfLow
	}

	var ceilings [NumCompartments]float64
	for k := 0; k < NumCompartments; k++ {
		c, err := gfCeiling(data.Tissues[k], 0, m.coefs.n2A[k], m.coefs.n2B[k], gf)
		if err != nil {
			return [NumCompartments]float64{}, err
		}
		ceilings[k] = c
	}

	return ceilings, nil
}

// PressureLimit returns the maximum over GFLimit(gf, data), the binding
// compartment's ascent ceiling in bar. If gf is zero, the model's gf_low
// is used.
func (m *Model) PressureLimit(data Data, gf float64) (float64, error) {
	ceilings, err := m.GFLimit(gf, data)
	if err != nil {
		return 0, err
	}

	limit := ceilings[0]
	for _, c := range ceilings[1:] {
		if c > limit {
			limit = c
		}
	}

	return limit, nil
}
