// Package shear designs vertical stirrups per IS 456:2000 Cl 40.
package shear

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

const (
	// MaxSpacingMM is the absolute cap on stirrup spacing (Cl 26.5.1.5).
	MaxSpacingMM = 300.0

	// SpacingRoundMM is the site increment provided spacings are floored to.
	SpacingRoundMM = 10.0

	// TightSpacingMM is the practical lower limit for placing concrete
	// between stirrups.
	TightSpacingMM = 75.0
)

// Input is the shear design record.
type Input struct {
	Geometry       section.Geometry
	Materials      section.Materials
	VuKN           float64 // factored shear (kN)
	AstProvidedMM2 float64 // tension steel used for pt
	Stirrup        section.Stirrup
}

// Result holds the shear design. Stresses are in N/mm², forces in kN and
// lengths in mm.
type Result struct {
	VuKN float64 `json:"vu_kn"`

	TauV   float64 `json:"tau_v_nmm2"`   // nominal shear stress
	Pt     float64 `json:"pt_percent"`   // tension steel percentage
	TauC   float64 `json:"tau_c_nmm2"`   // design shear strength
	TauMax float64 `json:"tau_max_nmm2"` // maximum shear stress

	VcKN  float64 `json:"vc_kn"`  // concrete shear capacity τc·b·d
	VusKN float64 `json:"vus_kn"` // shear carried by stirrups

	// Stirrups
	StirrupFy   float64 `json:"stirrup_fy_nmm2"`
	Asv         float64 `json:"asv_mm2"` // area of all legs
	MinimumOnly bool    `json:"minimum_only"`

	SpacingRequired float64 `json:"spacing_required_mm"` // before rounding
	SpacingMinReinf float64 `json:"spacing_min_reinf_mm"`
	SpacingMax      float64 `json:"spacing_max_mm"`
	SpacingProvided float64 `json:"spacing_provided_mm"`

	Utilization float64          `json:"utilization"` // τv / τc,max
	Errors      diagnostics.List `json:"errors"`
}

// IsSafe is derived from the diagnostics.
func (r *Result) IsSafe() bool { return r.Errors.IsSafe() }

// Design checks the section in shear and sizes the stirrup spacing.
//
// Decision table (Cl 40.2 - 40.4):
//
//	τv > τc,max        section inadequate
//	τv ≤ τc            minimum stirrups (Cl 26.5.1.6), never none
//	τc < τv ≤ τc,max   sv = 0.87 fy Asv d / Vus
func Design(in Input) *Result {
	result := &Result{VuKN: in.VuKN}

	diags := diagnostics.Merge(
		section.ValidateGeometry(in.Geometry),
		section.ValidateMaterials(in.Materials),
		section.ValidateStirrup(in.Stirrup),
	)
	if in.VuKN < 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputNegativeLoad,
			fmt.Sprintf("Vu=%.2f kN must not be negative; pass magnitudes only", in.VuKN),
			diagnostics.WithField("vu_kn")))
	}
	if in.AstProvidedMM2 <= 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputMissing,
			"provided tension steel is required to look up the design shear strength",
			diagnostics.WithField("ast_provided_mm2")))
	}
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	b := in.Geometry.WebWidth()
	d := in.Geometry.EffectiveDepthMM
	fck := in.Materials.FckNmm2

	// Nominal shear stress (Cl 40.1)
	vu := section.KNToN(in.VuKN)
	result.TauV = vu / (b * d)
	result.Pt = 100 * in.AstProvidedMM2 / (b * d)

	tauC, tcDiags := is456.DesignShearStrength(fck, result.Pt)
	tauMax, tmDiags := is456.MaxShearStress(fck)
	result.TauC = tauC
	result.TauMax = tauMax
	result.Errors = append(result.Errors, tcDiags...)
	result.Errors = append(result.Errors, tmDiags...)
	result.Utilization = result.TauV / tauMax
	result.VcKN = section.NToKN(tauC * b * d)

	if result.TauV > tauMax {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeShearExceedsMax,
			fmt.Sprintf("τv=%.3f N/mm² exceeds τc,max=%.2f N/mm²", result.TauV, tauMax),
			diagnostics.WithField("vu_kn"),
			diagnostics.WithHint("increase the section size; stirrups cannot resolve this"),
			diagnostics.WithClause("40.2.3")))
		return result
	}

	// Stirrup steel is not relied on beyond Fe 415 (Cl 40.4)
	fyv := math.Min(in.Materials.FyNmm2, is456.MaxStirrupFy)
	dia := float64(in.Stirrup.DiaMM)
	result.StirrupFy = fyv
	result.Asv = float64(in.Stirrup.Legs) * math.Pi * dia * dia / 4

	result.SpacingMinReinf = MinimumReinforcementSpacing(result.Asv, fyv, b)
	result.SpacingMax = math.Min(0.75*d, MaxSpacingMM)

	if result.TauV <= tauC {
		result.MinimumOnly = true
		result.SpacingRequired = result.SpacingMinReinf
		result.Errors = append(result.Errors, diagnostics.NewInfo(diagnostics.CodeShearMinimumOnly,
			fmt.Sprintf("τv=%.3f N/mm² ≤ τc=%.3f N/mm²; provide minimum shear reinforcement", result.TauV, tauC),
			diagnostics.WithClause("26.5.1.6")))
	} else {
		vus := vu - tauC*b*d
		result.VusKN = section.NToKN(vus)
		result.SpacingRequired = 0.87 * fyv * result.Asv * d / vus
	}

	spacing := math.Min(result.SpacingRequired, result.SpacingMinReinf)
	spacing = math.Min(spacing, result.SpacingMax)
	result.SpacingProvided = math.Floor(spacing/SpacingRoundMM) * SpacingRoundMM

	if result.SpacingProvided < TightSpacingMM {
		result.Errors = append(result.Errors, diagnostics.NewWarning(diagnostics.CodeShearTightSpacing,
			fmt.Sprintf("stirrup spacing %.0f mm is below %.0f mm", result.SpacingProvided, TightSpacingMM),
			diagnostics.WithField("stirrup"),
			diagnostics.WithHint("use a larger stirrup diameter or more legs")))
	}

	return result
}

// MinimumReinforcementSpacing returns the largest spacing satisfying
// Asv/(b sv) ≥ 0.4/(0.87 fy) (Cl 26.5.1.6).
func MinimumReinforcementSpacing(asv, fy, b float64) float64 {
	return 0.87 * fy * asv / (0.4 * b)
}

// Capacity returns the shear resistance (kN) of a section with the given
// stirrups at spacing sv: Vc + 0.87 fy Asv d / sv.
func Capacity(r *Result, d, sv float64) float64 {
	if sv <= 0 {
		return r.VcKN
	}
	return r.VcKN + section.NToKN(0.87*r.StirrupFy*r.Asv*d/sv)
}
