// Package is456 holds the IS 456:2000 constants and lookup tables shared by
// every design engine. All tables are package-level values initialised once
// and never mutated, so they are safe for concurrent readers.
package is456

import (
	"errors"
	"fmt"
)

// IS 456:2000 material constants
const (
	// Es is the modulus of elasticity of reinforcing steel (Cl 5.6.3)
	Es = 200000.0 // N/mm²

	// EpsilonCU is the limiting compressive strain in concrete (Cl 38.1(b))
	EpsilonCU = 0.0035

	// Partial safety factor applied to steel: design stress is 0.87 fy
	SteelDesignFactor = 0.87

	// MaxStirrupFy caps the characteristic strength of shear reinforcement (Cl 40.4)
	MaxStirrupFy = 415.0 // N/mm²

	// SteelDensity is used for bar weights (kg/m³)
	SteelDensity = 7850.0
)

// ErrUnsupportedGrade is returned by exact-match lookups for a grade that
// has no tabulated value.
var ErrUnsupportedGrade = errors.New("unsupported material grade")

// ConcreteGrades is the set of supported characteristic strengths fck (N/mm²).
var ConcreteGrades = []float64{15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80}

// SteelGrades is the set of supported yield strengths fy (N/mm²).
// Fe 550 is excluded: it has no entry in the xu,max/d table.
var SteelGrades = []float64{250, 415, 500}

// IsConcreteGrade reports whether fck is a supported concrete grade.
func IsConcreteGrade(fck float64) bool { return contains(ConcreteGrades, fck) }

// IsSteelGrade reports whether fy is a supported steel grade.
func IsSteelGrade(fy float64) bool { return contains(SteelGrades, fy) }

func contains(set []float64, v float64) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// xuMaxRatios is the limiting neutral-axis depth ratio xu,max/d (Cl 38.1, note)
var xuMaxRatios = map[float64]float64{
	250: 0.53,
	415: 0.48,
	500: 0.46,
}

// XuMaxRatio returns xu,max/d for the steel grade. There is no interpolation:
// fy must match a tabulated grade exactly.
func XuMaxRatio(fy float64) (float64, error) {
	k, ok := xuMaxRatios[fy]
	if !ok {
		return 0, fmt.Errorf("xu,max/d for fy=%g: %w", fy, ErrUnsupportedGrade)
	}
	return k, nil
}

// IsDeformed reports whether bars of grade fy are high-yield deformed bars.
// Fe 250 is mild steel (plain bars).
func IsDeformed(fy float64) bool { return fy > 250 }

// bondGrades/bondStresses: design bond stress τbd for plain bars in tension
// (Cl 26.2.1.1). M40 and above share the last value.
var (
	bondGrades   = []float64{15, 20, 25, 30, 35, 40}
	bondStresses = []float64{1.0, 1.2, 1.4, 1.5, 1.7, 1.9}
)

// BondStress returns τbd for plain bars in tension, by nearest lower grade.
func BondStress(fck float64) float64 {
	idx, _ := gradeColumn(bondGrades, fck)
	return bondStresses[idx]
}

// cbcGrades/cbcStresses: permissible stress in bending compression σcbc
// (Table 21), used for the modular ratio m = 280 / (3 σcbc).
var (
	cbcGrades   = []float64{15, 20, 25, 30, 35, 40, 45, 50}
	cbcStresses = []float64{5.0, 7.0, 8.5, 10.0, 11.5, 13.0, 14.5, 16.0}
)

// PermissibleBendingCompression returns σcbc for the grade (nearest lower).
func PermissibleBendingCompression(fck float64) float64 {
	idx, _ := gradeColumn(cbcGrades, fck)
	return cbcStresses[idx]
}

// ModularRatio returns m = 280 / (3 σcbc) (Annex B-1.3(d)).
func ModularRatio(fck float64) float64 {
	return 280 / (3 * PermissibleBendingCompression(fck))
}

// gradeColumn selects the nearest lower tabulated grade. Grades outside the
// tabulated range clamp to the nearest bound and report clamped=true.
func gradeColumn(grades []float64, fck float64) (idx int, clamped bool) {
	if fck < grades[0] {
		return 0, true
	}
	last := len(grades) - 1
	if fck > grades[last] {
		return last, true
	}
	for i := last; i >= 0; i-- {
		if grades[i] <= fck {
			return i, false
		}
	}
	return 0, true
}
