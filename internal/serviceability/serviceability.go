// Package serviceability checks deflection (span/depth) and crack width per
// IS 456:2000 Cl 23.2, Cl 35.3.2 and Annex F. Every factor must be supplied;
// a missing input is an error, never a default.
package serviceability

import (
	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Input is the combined serviceability record.
type Input struct {
	Geometry  section.Geometry
	Materials section.Materials
	Params    *section.ServiceabilityParams
	SpanMM    float64

	ServiceMomentKNm *float64

	AstRequiredMM2 float64
	AstProvidedMM2 float64
	AscProvidedMM2 float64
	BarDiaMM       int
	ClearSpacingMM float64
	StirrupDiaMM   int
}

// Result combines both checks.
type Result struct {
	Deflection *DeflectionResult `json:"deflection,omitempty"`
	Crack      *CrackResult      `json:"crack,omitempty"`

	DeflectionOK bool `json:"deflection_ok"`
	CrackOK      bool `json:"crack_ok"`

	Errors diagnostics.List `json:"errors"`
}

// IsSafe is derived from the diagnostics.
func (r *Result) IsSafe() bool { return r.Errors.IsSafe() }

// Check runs the deflection and crack width checks.
func Check(in Input) *Result {
	if in.Params == nil {
		return &Result{Errors: diagnostics.List{missing("serviceability", "serviceability block (support, exposure)")}}
	}

	defl := Deflection(DeflectionInput{
		Geometry:       in.Geometry,
		Materials:      in.Materials,
		Support:        in.Params.Support,
		SpanMM:         in.SpanMM,
		AstRequiredMM2: in.AstRequiredMM2,
		AstProvidedMM2: in.AstProvidedMM2,
		AscProvidedMM2: in.AscProvidedMM2,
	})
	crack := CrackWidth(CrackInput{
		Geometry:         in.Geometry,
		Materials:        in.Materials,
		Exposure:         in.Params.Exposure,
		ServiceMomentKNm: in.ServiceMomentKNm,
		AstProvidedMM2:   in.AstProvidedMM2,
		BarDiaMM:         in.BarDiaMM,
		ClearSpacingMM:   in.ClearSpacingMM,
		StirrupDiaMM:     in.StirrupDiaMM,
	})

	return &Result{
		Deflection:   defl,
		Crack:        crack,
		DeflectionOK: defl.OK,
		CrackOK:      crack.OK,
		Errors:       dedupe(diagnostics.Merge(defl.Errors, crack.Errors)),
	}
}

// dedupe drops repeated entries; both checks validate the same geometry.
func dedupe(list diagnostics.List) diagnostics.List {
	if len(list) == 0 {
		return list
	}
	seen := make(map[diagnostics.DesignError]bool, len(list))
	out := make(diagnostics.List, 0, len(list))
	for _, e := range list {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
