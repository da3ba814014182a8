package detailing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
)

// Diameters is the catalogue of standard bar sizes (mm), ascending.
var Diameters = []int{8, 10, 12, 16, 20, 25, 32}

const (
	// MinBars is the least number of bars in a layer (one per corner).
	MinBars = 2

	// DefaultMaxBars bounds the count search for a single layer.
	DefaultMaxBars = 12

	// MinClearSpacingMM is the absolute lower limit on clear spacing
	// (Cl 26.3.2).
	MinClearSpacingMM = 25.0

	// areaTolerance treats areas this close as equal when ranking.
	areaTolerance = 1e-6
)

// BarArea returns the cross-sectional area of one bar (mm²).
func BarArea(dia int) float64 {
	d := float64(dia)
	return math.Pi * d * d / 4
}

// BarGroup is a count of bars of one diameter.
type BarGroup struct {
	DiaMM int `json:"dia_mm"`
	Count int `json:"count"`
}

// Area returns the total area of the group (mm²).
func (g BarGroup) Area() float64 { return float64(g.Count) * BarArea(g.DiaMM) }

// Arrangement is one layer of bars, largest diameter first.
type Arrangement struct {
	Groups            []BarGroup `json:"groups"`
	AreaMM2           float64    `json:"area_mm2"`
	ExcessMM2         float64    `json:"excess_mm2"`
	ClearSpacingMM    float64    `json:"clear_spacing_mm"`
	MinClearSpacingMM float64    `json:"min_clear_spacing_mm"`
}

// TotalBars returns the number of bars in the layer.
func (a Arrangement) TotalBars() int {
	n := 0
	for _, g := range a.Groups {
		n += g.Count
	}
	return n
}

// MaxDia returns the largest diameter in the layer.
func (a Arrangement) MaxDia() int {
	m := 0
	for _, g := range a.Groups {
		if g.DiaMM > m {
			m = g.DiaMM
		}
	}
	return m
}

// Fits reports whether the clear spacing meets the minimum.
func (a Arrangement) Fits() bool { return a.ClearSpacingMM >= a.MinClearSpacingMM }

// String renders the layer as "2-20 + 1-16".
func (a Arrangement) String() string {
	parts := make([]string, 0, len(a.Groups))
	for _, g := range a.Groups {
		parts = append(parts, fmt.Sprintf("%d-%d", g.Count, g.DiaMM))
	}
	return strings.Join(parts, " + ")
}

// ClearSpacing returns the clear gap between adjacent bars of a layer laid
// across clearWidth (mm), the width inside the stirrups.
func ClearSpacing(groups []BarGroup, clearWidth float64) float64 {
	n, sum := 0, 0.0
	for _, g := range groups {
		n += g.Count
		sum += float64(g.Count * g.DiaMM)
	}
	if n < 2 {
		return clearWidth - sum
	}
	return (clearWidth - sum) / float64(n-1)
}

// MinClearSpacing returns max(φmax, 25 mm) (Cl 26.3.2(a)).
func MinClearSpacing(maxDia int) float64 {
	return math.Max(float64(maxDia), MinClearSpacingMM)
}

func newArrangement(groups []BarGroup, required, clearWidth float64) Arrangement {
	a := Arrangement{Groups: groups}
	for _, g := range groups {
		a.AreaMM2 += g.Area()
	}
	a.ExcessMM2 = a.AreaMM2 - required
	a.ClearSpacingMM = ClearSpacing(groups, clearWidth)
	a.MinClearSpacingMM = MinClearSpacing(a.MaxDia())
	return a
}

// better ranks arrangements: least excess area, then fewer diameters, then
// fewer bars, then the smaller largest diameter.
func better(a, b Arrangement) bool {
	if math.Abs(a.ExcessMM2-b.ExcessMM2) > areaTolerance {
		return a.ExcessMM2 < b.ExcessMM2
	}
	if len(a.Groups) != len(b.Groups) {
		return len(a.Groups) < len(b.Groups)
	}
	if a.TotalBars() != b.TotalBars() {
		return a.TotalBars() < b.TotalBars()
	}
	return a.MaxDia() < b.MaxDia()
}

// Candidates returns every single-layer arrangement of at most maxBars bars
// that provides the required area: one diameter at the least sufficient
// count, then two diameters with at least two of the larger size. Results
// are ranked best first; spacing is not filtered.
func Candidates(required, clearWidth float64, maxBars int) (single, mixed []Arrangement) {
	for _, dia := range Diameters {
		n := int(math.Ceil(required/BarArea(dia) - areaTolerance))
		if n < MinBars {
			n = MinBars
		}
		if n > maxBars {
			continue
		}
		single = append(single, newArrangement([]BarGroup{{DiaMM: dia, Count: n}}, required, clearWidth))
	}

	for i := len(Diameters) - 1; i > 0; i-- {
		large := Diameters[i]
		for j := i - 1; j >= 0; j-- {
			small := Diameters[j]
			for n1 := MinBars; n1 < maxBars; n1++ {
				rest := required - float64(n1)*BarArea(large)
				if rest <= 0 {
					break
				}
				n2 := int(math.Ceil(rest/BarArea(small) - areaTolerance))
				if n1+n2 > maxBars {
					continue
				}
				mixed = append(mixed, newArrangement([]BarGroup{
					{DiaMM: large, Count: n1},
					{DiaMM: small, Count: n2},
				}, required, clearWidth))
			}
		}
	}

	rank := func(list []Arrangement) {
		sort.SliceStable(list, func(x, y int) bool { return better(list[x], list[y]) })
	}
	rank(single)
	rank(mixed)
	return single, mixed
}

// SelectBars picks the layer for the required area (mm²). A single diameter
// is preferred; two diameters are used only when no single size fits the
// spacing rule. When nothing fits, the arrangement with the widest clear
// spacing is returned with E_DETAILING_SPACING.
func SelectBars(required, clearWidth float64, maxBars int) (Arrangement, diagnostics.List) {
	if maxBars < MinBars {
		maxBars = DefaultMaxBars
	}
	single, mixed := Candidates(required, clearWidth, maxBars)

	for _, a := range single {
		if a.Fits() {
			return a, nil
		}
	}
	for _, a := range mixed {
		if a.Fits() {
			return a, diagnostics.List{diagnostics.NewInfo(diagnostics.CodeDetailingTwoSizes,
				fmt.Sprintf("no single bar size fits; using %s", a))}
		}
	}

	var best Arrangement
	found := false
	for _, list := range [][]Arrangement{single, mixed} {
		for _, a := range list {
			if !found || a.ClearSpacingMM-a.MinClearSpacingMM > best.ClearSpacingMM-best.MinClearSpacingMM {
				best, found = a, true
			}
		}
	}
	if !found {
		return Arrangement{}, diagnostics.List{diagnostics.NewError(diagnostics.CodeDetailingNoBars,
			fmt.Sprintf("Ast=%.0f mm² cannot be provided with at most %d bars in one layer", required, maxBars),
			diagnostics.WithHint("increase the section width or use a second layer"))}
	}
	return best, diagnostics.List{diagnostics.NewError(diagnostics.CodeDetailingSpacing,
		fmt.Sprintf("best arrangement %s has clear spacing %.1f mm, below the minimum %.1f mm",
			best, best.ClearSpacingMM, best.MinClearSpacingMM),
		diagnostics.WithHint("increase the beam width or use two layers"),
		diagnostics.WithClause("26.3.2"))}
}
