package flexure

import (
	"math"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Singly designs a singly reinforced rectangular section for mu (kN-m).
func (b Beam) Singly(muKNm float64) *Result {
	result := &Result{Method: MethodSingly, MuKNm: muKNm}

	k, diags := b.designPreflight(muKNm)
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	fck, fy := b.Materials.FckNmm2, b.Materials.FyNmm2
	width, d := b.Geometry.WidthMM, b.Geometry.EffectiveDepthMM

	result.XuMax = k * d
	result.AstMin = MinTensionSteel(width, d, fy)
	result.AstMax = MaxTensionSteel(width, b.Geometry.DepthMM)

	// Convert Mu from kN-m to N-mm
	mu := section.KNmToNmm(muKNm)
	muLim := LimitingMoment(k, fck, width, d)
	result.MuLimKNm = section.NmmToKNm(muLim)
	result.MomentCapacityKNm = result.MuLimKNm
	result.Utilization = utilization(muKNm, result.MuLimKNm)

	if mu > muLim {
		result.overReinforced("use the doubly reinforced design (provide asc_mm2 and d_dash_mm) or increase the section")
		return result
	}

	result.AstCalculated = RequiredSteel(mu, fck, fy, width, d)
	result.Xu = NeutralAxisDepth(result.AstCalculated, fck, fy, width)
	result.classify()
	result.applySteelLimits()

	return result
}

// RequiredSteel solves Mu = 0.87 fy Ast d (1 - Ast fy / (b d fck)) for Ast
// (Annex G-1.1(b)):
//
//	Ast = 0.5 fck/fy [1 - √(1 - 4.6 Mu/(fck b d²))] b d
//
// mu is in N-mm. Callers ensure mu does not exceed Mu,lim.
func RequiredSteel(mu, fck, fy, b, d float64) float64 {
	term := 4.6 * mu / (fck * b * d * d)
	if term > 1 {
		term = 1
	}
	return 0.5 * fck / fy * (1 - math.Sqrt(1-term)) * b * d
}

// NeutralAxisDepth returns xu = 0.87 fy Ast / (0.36 fck b) (Annex G-1.1(a)).
func NeutralAxisDepth(ast, fck, fy, b float64) float64 {
	return 0.87 * fy * ast / (0.36 * fck * b)
}

// ResistingMoment back-substitutes Ast into the equilibrium equation and
// returns the moment in N-mm.
func ResistingMoment(ast, fck, fy, b, d float64) float64 {
	return 0.87 * fy * ast * d * (1 - ast*fy/(b*d*fck))
}

// singlyInfo annotates a singly result returned through the doubly path.
func singlyInfo(r *Result) {
	r.Method = MethodDoubly
	r.Errors = append(r.Errors, diagnostics.NewInfo(diagnostics.CodeFlexureAscNotRequired,
		"Mu does not exceed Mu,lim; compression steel is not required for strength"))
}
