package serviceability

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

const (
	// Surface crack width limits (Cl 35.3.2)
	crackLimitMM      = 0.3
	severeCoverFactor = 0.004
)

// CrackInput carries the provided bars and the service moment.
type CrackInput struct {
	Geometry  section.Geometry
	Materials section.Materials
	Exposure  section.Exposure

	ServiceMomentKNm *float64

	AstProvidedMM2 float64
	BarDiaMM       int     // largest tension bar
	ClearSpacingMM float64 // between tension bars
	StirrupDiaMM   int
}

// CrackResult is the Annex F surface crack width estimate. Lengths in mm.
type CrackResult struct {
	ModularRatio float64 `json:"modular_ratio"`
	X            float64 `json:"x_mm"`      // cracked neutral axis depth
	Fs           float64 `json:"fs_nmm2"`   // steel stress under service moment
	Strain       float64 `json:"epsilon_m"` // average strain at the soffit
	Acr          float64 `json:"acr_mm"`    // distance to the nearest bar surface
	CoverMin     float64 `json:"c_min_mm"`  // clear cover to the main bars
	Width        float64 `json:"width_mm"`
	Limit        float64 `json:"limit_mm"`
	OK           bool    `json:"ok"`

	Errors diagnostics.List `json:"errors"`
}

// CrackLimit returns the permissible surface crack width for the exposure.
func CrackLimit(exp section.Exposure, coverMM float64) (float64, bool) {
	switch exp {
	case section.ExposureMild, section.ExposureModerate:
		return crackLimitMM, true
	case section.ExposureSevere, section.ExposureVerySevere, section.ExposureExtreme:
		return severeCoverFactor * coverMM, true
	}
	return 0, false
}

// CrackWidth estimates the soffit crack width per Annex F:
//
//	w = 3 acr εm / (1 + 2 (acr - cmin)/(h - x))
//	εm = ε1 - bw (h - x)(h - x) / (3 Es As (d - x))
//
// using the cracked elastic section with m = 280/(3 σcbc). The critical
// point is the worse of midway between bars and the corner.
func CrackWidth(in CrackInput) *CrackResult {
	result := &CrackResult{}

	var diags diagnostics.List
	if in.Exposure == "" {
		diags = append(diags, missing("serviceability.exposure", "exposure class"))
	}
	if in.ServiceMomentKNm == nil {
		diags = append(diags, missing("service_mu_knm", "service moment"))
	} else if *in.ServiceMomentKNm < 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputNegativeLoad,
			fmt.Sprintf("service moment %.2f kN-m must not be negative", *in.ServiceMomentKNm),
			diagnostics.WithField("service_mu_knm")))
	}
	if in.AstProvidedMM2 <= 0 {
		diags = append(diags, missing("ast_provided_mm2", "provided tension steel"))
	}
	if in.BarDiaMM <= 0 {
		diags = append(diags, missing("bar_dia_mm", "tension bar diameter"))
	}
	switch {
	case in.ClearSpacingMM < 0:
		diags = append(diags, diagnostics.NewError(diagnostics.CodeServiceBarSpacing,
			fmt.Sprintf("clear spacing %.1f mm is negative; the tension bars do not fit the web", in.ClearSpacingMM),
			diagnostics.WithField("clear_spacing_mm"),
			diagnostics.WithHint("resolve the detailing spacing error first")))
	case in.ClearSpacingMM == 0:
		diags = append(diags, missing("clear_spacing_mm", "tension bar spacing"))
	}
	if in.StirrupDiaMM <= 0 {
		diags = append(diags, missing("stirrup.dia_mm", "stirrup diameter"))
	}
	diags = append(diags, section.ValidateGeometry(in.Geometry)...)
	diags = append(diags, section.ValidateMaterials(in.Materials)...)
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	g := in.Geometry
	b := g.CompressionWidth()
	bw := g.WebWidth()
	h, d := g.DepthMM, g.EffectiveDepthMM
	as := in.AstProvidedMM2
	dia := float64(in.BarDiaMM)

	result.CoverMin = g.CoverMM + float64(in.StirrupDiaMM)
	limit, ok := CrackLimit(in.Exposure, result.CoverMin)
	if !ok {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeInputInvalid,
			fmt.Sprintf("unknown exposure class %q", in.Exposure),
			diagnostics.WithField("serviceability.exposure"),
			diagnostics.WithClause("Table 3")))
		return result
	}
	result.Limit = limit

	// Cracked section: b x²/2 = m As (d - x)
	m := is456.ModularRatio(in.Materials.FckNmm2)
	result.ModularRatio = m
	mAs := m * as
	x := (-mAs + math.Sqrt(mAs*mAs+2*b*mAs*d)) / b
	result.X = x

	ms := section.KNmToNmm(*in.ServiceMomentKNm)
	result.Fs = ms / (as * (d - x/3))

	e1 := result.Fs / is456.Es * (h - x) / (d - x)
	em := e1 - bw*(h-x)*(h-x)/(3*is456.Es*as*(d-x))
	result.Strain = math.Max(em, 0)

	// Centre of the bars from the soffit and from the side face
	cy := result.CoverMin + dia/2
	pitch := in.ClearSpacingMM + dia
	between := math.Hypot(pitch/2, cy) - dia/2
	corner := math.Hypot(cy, cy) - dia/2
	result.Acr = math.Max(between, corner)

	result.Width = 3 * result.Acr * result.Strain / (1 + 2*(result.Acr-result.CoverMin)/(h-x))
	result.OK = result.Width <= result.Limit

	if !result.OK {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeServiceCrackWidth,
			fmt.Sprintf("estimated crack width %.3f mm exceeds the %.3f mm limit for %s exposure",
				result.Width, result.Limit, in.Exposure),
			diagnostics.WithHint("use more bars of a smaller diameter or increase the steel area"),
			diagnostics.WithClause("35.3.2, Annex F")))
	}
	return result
}
