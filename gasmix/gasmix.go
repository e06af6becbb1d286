// Package gasmix represents breathing gas mixtures for the decocore
// model. Fractions are expressed as percentages in [0, 100], matching the
// gas.n2 convention the Schreiner loader (package decocore) expects.
package gasmix

import (
	"fmt"
	"math"

	"github.com/m5lapp/decocore/helpers"
)

// GasMix represents a breathing gas mixture with a given percentage of
// Helium (He), Nitrogen (N2) and Oxygen (O2). He and/or N2 can be zero
// depending on the type of gas mixture (Air, Nitrox, pure O2, etc.).
type GasMix struct {
	He float64
	N2 float64
	O2 float64
}

// MixType represents the type of a gas mix.
type MixType int

const (
	Unknown MixType = iota
	Air
	Heliox
	Nitrox
	Trimix
)

func (mt MixType) String() string {
	switch mt {
	case Air:
		return "Air"
	case Heliox:
		return "Heliox"
	case Nitrox:
		return "Nitrox"
	case Trimix:
		return "Trimix"
	}
	return "Unknown Gas Mix Type"
}

// NewAirMix is a convenience constructor for a gas mix of pure air.
func NewAirMix() *GasMix {
	return &GasMix{N2: 79.0, O2: 21.0}
}

// NewNitroxMix is a constructor for a Nitrox gas mix with a given
// percentage of Oxygen. The percentage of Nitrogen is calculated from this.
func NewNitroxMix(o2Pct float64) (*GasMix, error) {
	if o2Pct < 21.0 || o2Pct > 100.0 {
		return nil, fmt.Errorf("gasmix: invalid O2 percentage (%f), should be between 21 and 100 inclusive", o2Pct)
	}

	return &GasMix{N2: 100.0 - o2Pct, O2: o2Pct}, nil
}

// NewTrimixMix is a constructor for a Trimix gas mix with a given
// percentage of Oxygen and a given percentage of Helium. The percentage
// of Nitrogen is calculated from this.
func NewTrimixMix(o2Pct, hePct float64) (*GasMix, error) {
	if o2Pct < 21.0 || o2Pct > 98.0 {
		return nil, fmt.Errorf("gasmix: invalid O2 percentage (%f), should be between 21 and 98 inclusive", o2Pct)
	}

	if hePct < 1.0 || hePct > 78.0 {
		return nil, fmt.Errorf("gasmix: invalid He percentage (%f), should be between 1 and 78 inclusive", hePct)
	}

	if o2Pct+hePct > 100.0 {
		return nil, fmt.Errorf("gasmix: invalid O2 (%f) and He (%f) percentages, total (%f) should not exceed 100", o2Pct, hePct, o2Pct+hePct)
	}

	return &GasMix{He: hePct, N2: 100.0 - (hePct + o2Pct), O2: o2Pct}, nil
}

// NewHelioxMix is a constructor for a Heliox gas mix with a given
// percentage of Oxygen. The percentage of Helium is calculated from this.
func NewHelioxMix(o2Pct float64) (*GasMix, error) {
	if o2Pct < 21.0 || o2Pct >= 99.0 {
		return nil, fmt.Errorf("gasmix: invalid O2 percentage (%f), should be between 21 and 99 exclusive of the upper bound", o2Pct)
	}

	return &GasMix{He: 100.0 - o2Pct, O2: o2Pct}, nil
}

// NewNitroxBestMix returns the Nitrox mix that maximises the Oxygen
// content without exceeding the maximum PPO2 specified at the deepest
// part of the dive. The result is floored to the nearest whole percent.
func NewNitroxBestMix(depth, maxPPO2 float64) (*GasMix, error) {
	bestO2 := maxPPO2 / helpers.Pressure(depth) * 100.0
	bestO2 = math.Floor(bestO2)
	return NewNitroxMix(bestO2)
}

// MixType returns the appropriate MixType constant for the gas mix.
func (gm *GasMix) MixType() MixType {
	if gm.O2 == 21.0 && gm.N2 == 79.0 && gm.He == 0.0 {
		return Air
	} else if gm.He > 0.0 {
		// The mix contains Helium so is either Heliox or Trimix.
		if gm.N2 == 0.0 {
			return Heliox
		}
		return Trimix
	} else if gm.He == 0.0 {
		// The mix does not contain Helium and is not plain air.
		return Nitrox
	}

	return Unknown
}

// EAD calculates the Nitrox mix's Equivalent Air Depth in metres for a
// given depth in metres.
func (gm *GasMix) EAD(depth float64) float64 {
	d := math.Abs(depth)
	fn2 := (100.0 - gm.O2) / 100.0

	return (d+10.0)*fn2/0.79 - 10.0
}

// MOD calculates the gas mix's Maximum Operating Depth in metres for a
// given maximum Partial Pressure of Oxygen in bar.
func (gm *GasMix) MOD(maxPPO2 float64) float64 {
	mod := 10.0 * (maxPPO2/(gm.O2/100.0) - 1.0)
	return math.Round(mod)
}

// PPHe returns the Partial Pressure of Helium for the gas mix at the
// given depth in metres.
func (gm *GasMix) PPHe(depth float64) float64 {
	d := math.Abs(depth)
	return helpers.Pressure(d) * (gm.He / 100.0)
}

// PPN2 returns the Partial Pressure of Nitrogen for the gas mix at the
// given depth in metres.
func (gm *GasMix) PPN2(depth float64) float64 {
	d := math.Abs(depth)
	return helpers.Pressure(d) * (gm.N2 / 100.0)
}

// PPO2 returns the Partial Pressure of Oxygen for the gas mix at the
// given depth in metres.
func (gm *GasMix) PPO2(depth float64) float64 {
	d := math.Abs(depth)
	return helpers.Pressure(d) * (gm.O2 / 100.0)
}
