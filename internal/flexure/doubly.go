package flexure

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Doubly designs a doubly reinforced rectangular section for mu (kN-m).
// ascProposed is the caller's compression steel (mm²); zero means size it.
//
// The balanced section carries Mu,lim with Ast1; the remainder Mu2 is
// carried by the couple of compression steel Asc and extra tension steel
// Ast2 acting over (d - d') (Annex G-1.2).
func (b Beam) Doubly(muKNm, ascProposed float64) *Result {
	result := &Result{Method: MethodDoubly, MuKNm: muKNm}

	k, diags := b.designPreflight(muKNm)
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	g := b.Geometry
	fck, fy := b.Materials.FckNmm2, b.Materials.FyNmm2
	width, d, dPrime := g.WidthMM, g.EffectiveDepthMM, g.CompressionCoverMM

	if dPrime <= 0 {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeInputMissing,
			"compression steel cover d' is required for a doubly reinforced design",
			diagnostics.WithField("d_dash_mm")))
		return result
	}
	if ascProposed < 0 {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeInputNegativeLoad,
			fmt.Sprintf("proposed compression steel %.1f mm² is negative", ascProposed),
			diagnostics.WithField("asc_mm2")))
		return result
	}

	ratio := dPrime / d
	if ratio > is456.MaxDPrimeRatio {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeFlexureDPrimeTooLarge,
			fmt.Sprintf("d'/d=%.3f exceeds %.2f; compression steel is ineffective", ratio, is456.MaxDPrimeRatio),
			diagnostics.WithField("d_dash_mm"),
			diagnostics.WithHint("reduce the compression steel cover or deepen the section"),
			diagnostics.WithClause("SP:16 Table F")))
		return result
	}

	mu := section.KNmToNmm(muKNm)
	muLim := LimitingMoment(k, fck, width, d)

	// Check if singly reinforced is adequate
	if mu <= muLim {
		r := b.Singly(muKNm)
		singlyInfo(r)
		r.AscProvided = ascProposed
		return r
	}

	fsc, err := is456.CompressionSteelStress(fy, ratio)
	if err != nil {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeFlexureUnsupportedGrade,
			err.Error(), diagnostics.WithField("fy_nmm2")))
		return result
	}

	xuMax := k * d
	result.XuMax = xuMax
	result.Xu = xuMax
	result.Fsc = fsc
	result.MuLimKNm = section.NmmToKNm(muLim)
	result.AstMin = MinTensionSteel(width, d, fy)
	result.AstMax = MaxTensionSteel(width, g.DepthMM)

	// Ast1 = Mu,lim / (0.87 fy (d - 0.42 xu,max))
	ast1 := muLim / (0.87 * fy * (d - 0.42*xuMax))

	// Mu2 = Asc (fsc - 0.446 fck)(d - d')
	mu2 := mu - muLim
	fscNet := fsc - 0.446*fck
	result.AscRequired = mu2 / (fscNet * (d - dPrime))

	// Ast2 0.87 fy = Asc (fsc - 0.446 fck)
	ast2 := result.AscRequired * fscNet / (0.87 * fy)
	result.AstCalculated = ast1 + ast2

	result.AscProvided = ascProposed
	if ascProposed == 0 {
		result.AscProvided = result.AscRequired
	} else if ascProposed < result.AscRequired {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeFlexureAscInsufficient,
			fmt.Sprintf("proposed Asc=%.0f mm² is less than the required %.0f mm²", ascProposed, result.AscRequired),
			diagnostics.WithField("asc_mm2"),
			diagnostics.WithClause("Annex G-1.2")))
	}

	result.MomentCapacityKNm = section.NmmToKNm(muLim + fscNet*result.AscProvided*(d-dPrime))
	result.Utilization = utilization(muKNm, result.MomentCapacityKNm)
	result.classify()
	result.applySteelLimits()

	if result.AscProvided > result.AstMax {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeFlexureMaxSteel,
			fmt.Sprintf("compression steel Asc=%.0f mm² exceeds the maximum %.0f mm²", result.AscProvided, result.AstMax),
			diagnostics.WithField("asc_mm2"),
			diagnostics.WithClause("26.5.1.2")))
	}

	return result
}
