// Package detailing turns steel areas into constructible bar layouts and
// anchorage lengths per IS 456:2000 Cl 26.
package detailing

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// HangerDiaMM is the size of the nominal top bars that hold the stirrups
// when no compression steel is required.
const HangerDiaMM = 12

// Input is the detailing record.
type Input struct {
	Geometry  section.Geometry
	Materials section.Materials
	Stirrup   section.Stirrup
	Bond      section.BondCondition

	AstRequiredMM2 float64
	AscRequiredMM2 float64 // zero means hanger bars only

	StirrupSpacingMM float64 // from the shear design
	MaxBarsPerLayer  int     // zero uses DefaultMaxBars
}

// StirrupSet is the shear reinforcement as detailed.
type StirrupSet struct {
	DiaMM     int     `json:"dia_mm"`
	Legs      int     `json:"legs"`
	SpacingMM float64 `json:"spacing_mm"`
}

// Result holds the bar layout. Lengths in mm.
type Result struct {
	Bottom   Arrangement `json:"bottom"`
	Top      Arrangement `json:"top"`
	Stirrups StirrupSet  `json:"stirrups"`

	AstProvidedMM2 float64 `json:"ast_provided_mm2"`
	AscProvidedMM2 float64 `json:"asc_provided_mm2"`

	ClearSpacingMM    float64 `json:"clear_spacing_mm"`
	MinClearSpacingMM float64 `json:"min_clear_spacing_mm"`

	// Anchorage of the largest bottom bar
	DevelopmentLengthMM float64 `json:"ld_mm"`
	LapLengthMM         float64 `json:"lap_mm"`

	// Anchorage of the largest top bar
	TopDevelopmentLengthMM float64 `json:"top_ld_mm"`
	TopLapLengthMM         float64 `json:"top_lap_mm"`

	Errors diagnostics.List `json:"errors"`
}

// IsSafe is derived from the diagnostics.
func (r *Result) IsSafe() bool { return r.Errors.IsSafe() }

// ClearWidth returns the width available for a layer of bars inside the
// stirrups: b - 2 cover - 2 φstirrup.
func ClearWidth(g section.Geometry, stirrupDia int) float64 {
	return g.WebWidth() - 2*g.CoverMM - 2*float64(stirrupDia)
}

// Detail selects bottom and top bars and computes their anchorage.
func Detail(in Input) *Result {
	result := &Result{
		Stirrups: StirrupSet{DiaMM: in.Stirrup.DiaMM, Legs: in.Stirrup.Legs, SpacingMM: in.StirrupSpacingMM},
	}

	diags := diagnostics.Merge(
		section.ValidateGeometry(in.Geometry),
		section.ValidateMaterials(in.Materials),
		section.ValidateStirrup(in.Stirrup),
	)
	if in.AstRequiredMM2 <= 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputNonPositive,
			fmt.Sprintf("required tension steel %.1f mm² must be positive", in.AstRequiredMM2),
			diagnostics.WithField("ast_required_mm2")))
	}
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	fck, fy := in.Materials.FckNmm2, in.Materials.FyNmm2
	width := ClearWidth(in.Geometry, in.Stirrup.DiaMM)
	if width <= 0 {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeDetailingSpacing,
			fmt.Sprintf("no width is left for bars inside the stirrups (%.1f mm)", width),
			diagnostics.WithField("geometry.cover_mm")))
		return result
	}

	bottom, bDiags := SelectBars(in.AstRequiredMM2, width, in.MaxBarsPerLayer)
	result.Errors = append(result.Errors, bDiags...)
	result.Bottom = bottom
	result.AstProvidedMM2 = bottom.AreaMM2
	result.ClearSpacingMM = bottom.ClearSpacingMM
	result.MinClearSpacingMM = bottom.MinClearSpacingMM
	if dia := bottom.MaxDia(); dia > 0 {
		result.DevelopmentLengthMM = DevelopmentLength(dia, fck, fy, in.Bond, ZoneTension)
		result.LapLengthMM = LapLength(dia, fck, fy, in.Bond, ZoneTension)
	}

	if in.AscRequiredMM2 > 0 {
		top, tDiags := SelectBars(in.AscRequiredMM2, width, in.MaxBarsPerLayer)
		result.Errors = append(result.Errors, tDiags...)
		result.Top = top
	} else {
		result.Top = newArrangement([]BarGroup{{DiaMM: HangerDiaMM, Count: MinBars}}, 0, width)
		result.Errors = append(result.Errors, diagnostics.NewInfo(diagnostics.CodeDetailingHangerBar,
			fmt.Sprintf("no compression steel required; %s hanger bars hold the stirrups", result.Top)))
	}
	result.AscProvidedMM2 = result.Top.AreaMM2
	if dia := result.Top.MaxDia(); dia > 0 {
		result.TopDevelopmentLengthMM = DevelopmentLength(dia, fck, fy, in.Bond, ZoneCompression)
		result.TopLapLengthMM = LapLength(dia, fck, fy, in.Bond, ZoneCompression)
	}

	return result
}
