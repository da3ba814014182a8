// Package flexure designs tension (and compression) reinforcement for
// rectangular and flanged beam sections in bending per IS 456:2000 Cl 38 and
// Annex G. Every failure is returned as data on the Result.
package flexure

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Method names the design path that produced a Result.
type Method string

const (
	MethodSingly  Method = "SINGLY"
	MethodDoubly  Method = "DOUBLY"
	MethodFlanged Method = "FLANGED"
)

// Classification of the section relative to the balanced neutral axis.
type Classification string

const (
	UnderReinforced Classification = "UNDER_REINFORCED"
	Balanced        Classification = "BALANCED"
	OverReinforced  Classification = "OVER_REINFORCED"
)

// balancedBand is the fraction of xu,max above which a section is reported
// as balanced rather than under-reinforced.
const balancedBand = 0.99

// Beam is a cross-section with its material grades.
type Beam struct {
	Geometry  section.Geometry
	Materials section.Materials
}

// Input is the single flexure entry point record.
type Input struct {
	Geometry  section.Geometry
	Materials section.Materials
	MuKNm     float64 // factored moment (kN-m)

	// Proposed compression steel (mm²); non-nil selects the doubly
	// reinforced path, zero asks for it to be sized.
	CompressionSteelMM2 *float64
}

// Result holds the results of a flexure design
type Result struct {
	Method Method  `json:"method"`
	MuKNm  float64 `json:"mu_knm"` // demand

	// Reinforcement (mm²)
	AstCalculated float64 `json:"ast_calculated_mm2"` // from equilibrium, before the minimum applies
	AstRequired   float64 `json:"ast_required_mm2"`
	AstMin        float64 `json:"ast_min_mm2"`
	AstMax        float64 `json:"ast_max_mm2"`
	AscRequired   float64 `json:"asc_required_mm2"`
	AscProvided   float64 `json:"asc_provided_mm2"`

	// Neutral axis (mm)
	Xu    float64 `json:"xu_mm"`
	XuMax float64 `json:"xu_max_mm"`

	// Capacity (kN-m)
	MuLimKNm          float64 `json:"mu_lim_knm"`
	MomentCapacityKNm float64 `json:"moment_capacity_knm"`

	// Compression steel stress (N/mm², doubly reinforced only)
	Fsc float64 `json:"fsc_nmm2,omitempty"`

	Classification Classification   `json:"classification"`
	Utilization    float64          `json:"utilization"`
	Errors         diagnostics.List `json:"errors"`
}

// IsSafe is derived from the diagnostics.
func (r *Result) IsSafe() bool { return r.Errors.IsSafe() }

// Design dispatches on the section kind and on the presence of compression
// steel. It never switches strategy on its own: a singly reinforced request
// whose moment exceeds Mu,lim fails rather than becoming doubly reinforced.
func Design(in Input) *Result {
	b := Beam{Geometry: in.Geometry, Materials: in.Materials}

	switch in.Geometry.Kind.Normalize() {
	case section.KindTBeam, section.KindLBeam:
		if in.CompressionSteelMM2 != nil {
			return &Result{
				Method: MethodFlanged,
				MuKNm:  in.MuKNm,
				Errors: diagnostics.List{diagnostics.NewError(diagnostics.CodeFlexureUnsupportedShape,
					"doubly reinforced flanged sections are not supported",
					diagnostics.WithField("asc_mm2"),
					diagnostics.WithHint("remove asc_mm2 or increase the web depth"))},
			}
		}
		return b.Flanged(in.MuKNm)
	default:
		if in.CompressionSteelMM2 != nil {
			return b.Doubly(in.MuKNm, *in.CompressionSteelMM2)
		}
		return b.Singly(in.MuKNm)
	}
}

// LimitingMoment returns Mu,lim = 0.36 k (1 - 0.42 k) fck b d² in N-mm,
// with k = xu,max/d (Annex G-1.1(c)).
func LimitingMoment(k, fck, b, d float64) float64 {
	return 0.36 * k * (1 - 0.42*k) * fck * b * d * d
}

// MinTensionSteel returns 0.85 b d / fy (Cl 26.5.1.1(a)).
func MinTensionSteel(b, d, fy float64) float64 { return 0.85 * b * d / fy }

// MaxTensionSteel returns 0.04 b D (Cl 26.5.1.1(b)).
func MaxTensionSteel(b, depth float64) float64 { return 0.04 * b * depth }

// CheckProvided verifies a provided tension steel area against the code
// minimum and maximum. The web width is used for flanged sections.
func CheckProvided(g section.Geometry, m section.Materials, astProvided float64) diagnostics.List {
	var diags diagnostics.List
	b := g.WebWidth()
	minAst := MinTensionSteel(b, g.EffectiveDepthMM, m.FyNmm2)
	maxAst := MaxTensionSteel(b, g.DepthMM)

	if astProvided < minAst {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeFlexureMinSteel,
			fmt.Sprintf("provided Ast=%.0f mm² is below the minimum %.0f mm²", astProvided, minAst),
			diagnostics.WithField("ast_provided_mm2"),
			diagnostics.WithClause("26.5.1.1(a)")))
	}
	if astProvided > maxAst {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeFlexureMaxSteel,
			fmt.Sprintf("provided Ast=%.0f mm² exceeds the maximum %.0f mm²", astProvided, maxAst),
			diagnostics.WithField("ast_provided_mm2"),
			diagnostics.WithHint("increase the section size"),
			diagnostics.WithClause("26.5.1.1(b)")))
	}
	return diags
}

// preflight runs the input checks every path needs and looks up xu,max/d.
func (b Beam) preflight() (k float64, diags diagnostics.List) {
	diags = append(section.ValidateGeometry(b.Geometry), section.ValidateMaterials(b.Materials)...)
	if len(diags) > 0 {
		return 0, diags
	}
	k, err := is456.XuMaxRatio(b.Materials.FyNmm2)
	if err != nil {
		return 0, diagnostics.List{diagnostics.NewError(diagnostics.CodeFlexureUnsupportedGrade,
			err.Error(), diagnostics.WithField("fy_nmm2"), diagnostics.WithClause("38.1"))}
	}
	return k, nil
}

// designPreflight adds the moment check to preflight. Moments are
// magnitudes; a negative value is an input error.
func (b Beam) designPreflight(muKNm float64) (float64, diagnostics.List) {
	k, diags := b.preflight()
	if muKNm < 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputNegativeLoad,
			fmt.Sprintf("Mu=%.2f kN-m must not be negative; pass magnitudes only", muKNm),
			diagnostics.WithField("mu_knm")))
	}
	return k, diags
}

// applySteelLimits raises the calculated steel to the minimum and rejects
// steel above the maximum.
func (r *Result) applySteelLimits() {
	r.AstRequired = r.AstCalculated
	switch {
	case r.AstCalculated < r.AstMin:
		r.AstRequired = r.AstMin
		r.Errors = append(r.Errors, diagnostics.NewWarning(diagnostics.CodeFlexureMinSteelGoverns,
			fmt.Sprintf("calculated Ast=%.0f mm² is below the minimum; Ast,min=%.0f mm² governs", r.AstCalculated, r.AstMin),
			diagnostics.WithClause("26.5.1.1(a)")))
	case r.AstCalculated < 1.1*r.AstMin:
		r.Errors = append(r.Errors, diagnostics.NewWarning(diagnostics.CodeFlexureNearMinSteel,
			fmt.Sprintf("Ast=%.0f mm² is within 10%% of the minimum %.0f mm²", r.AstCalculated, r.AstMin),
			diagnostics.WithClause("26.5.1.1(a)")))
	}

	if r.AstRequired > r.AstMax {
		r.Errors = append(r.Errors, diagnostics.NewError(diagnostics.CodeFlexureMaxSteel,
			fmt.Sprintf("required Ast=%.0f mm² exceeds the maximum %.0f mm²", r.AstRequired, r.AstMax),
			diagnostics.WithHint("increase the section size"),
			diagnostics.WithClause("26.5.1.1(b)")))
	}
}

func (r *Result) classify() {
	if r.Xu >= balancedBand*r.XuMax {
		r.Classification = Balanced
		return
	}
	r.Classification = UnderReinforced
}

func (r *Result) overReinforced(hint string) {
	r.Classification = OverReinforced
	r.Errors = append(r.Errors, diagnostics.NewError(diagnostics.CodeFlexureExceedsMuLim,
		fmt.Sprintf("Mu=%.2f kN-m exceeds the limiting moment Mu,lim=%.2f kN-m", r.MuKNm, r.MuLimKNm),
		diagnostics.WithHint(hint),
		diagnostics.WithClause("Annex G-1.1")))
}

func utilization(demand, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return demand / capacity
}
