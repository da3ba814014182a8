package detailing

import (
	"math"

	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Zone is the stress state of a bar for anchorage.
type Zone string

const (
	ZoneTension     Zone = "tension"
	ZoneCompression Zone = "compression"
)

const (
	deformedBondFactor    = 1.6  // Cl 26.2.1.1, deformed bars
	compressionBondFactor = 1.25 // Cl 26.2.1.1, bars in compression
	poorBondFactor        = 0.7  // bars cast in poor bond positions
)

// DesignBondStress returns τbd (N/mm²) for the bar type, zone and bond
// condition.
func DesignBondStress(fck, fy float64, bond section.BondCondition, zone Zone) float64 {
	tau := is456.BondStress(fck)
	if is456.IsDeformed(fy) {
		tau *= deformedBondFactor
	}
	if zone == ZoneCompression {
		tau *= compressionBondFactor
	}
	if bond == section.BondPoor {
		tau *= poorBondFactor
	}
	return tau
}

// DevelopmentLength returns Ld = φ σs / (4 τbd) with σs = 0.87 fy (mm,
// Cl 26.2.1).
func DevelopmentLength(dia int, fck, fy float64, bond section.BondCondition, zone Zone) float64 {
	sigma := is456.SteelDesignFactor * fy
	return float64(dia) * sigma / (4 * DesignBondStress(fck, fy, bond, zone))
}

// LapLength returns the lap splice length (mm, Cl 26.2.5.1): the larger of
// Ld and 30φ in tension, Ld and 24φ in compression.
func LapLength(dia int, fck, fy float64, bond section.BondCondition, zone Zone) float64 {
	ld := DevelopmentLength(dia, fck, fy, bond, zone)
	multiple := 30.0
	if zone == ZoneCompression {
		multiple = 24
	}
	return math.Max(ld, multiple*float64(dia))
}
