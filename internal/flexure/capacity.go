package flexure

import (
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// MomentCapacity analyses the section with the given provided steel areas
// (mm²) and returns its moment of resistance in kN-m. It returns 0 for a
// section that fails its input checks.
func (b Beam) MomentCapacity(ast, asc float64) float64 {
	k, diags := b.preflight()
	if len(diags) > 0 || ast <= 0 {
		return 0
	}

	switch {
	case b.Geometry.Kind.Normalize().IsFlanged():
		return section.NmmToKNm(b.flangedCapacity(k, ast))
	case asc > 0 && b.Geometry.CompressionCoverMM > 0:
		return section.NmmToKNm(b.doublyCapacity(k, ast, asc))
	default:
		return section.NmmToKNm(rectangularCapacity(k, b.Materials.FckNmm2, b.Materials.FyNmm2,
			b.Geometry.WidthMM, b.Geometry.EffectiveDepthMM, ast))
	}
}

// rectangularCapacity returns Mu (N-mm) for a singly reinforced rectangle.
// Over-reinforced sections are limited to Mu,lim (Annex G-1.1(c)).
func rectangularCapacity(k, fck, fy, width, d, ast float64) float64 {
	xu := NeutralAxisDepth(ast, fck, fy, width)
	if xu > k*d {
		return LimitingMoment(k, fck, width, d)
	}
	// Mu = 0.87 fy Ast (d - 0.42 xu)
	return 0.87 * fy * ast * (d - 0.42*xu)
}

func (b Beam) doublyCapacity(k, ast, asc float64) float64 {
	fck, fy := b.Materials.FckNmm2, b.Materials.FyNmm2
	width, d, dPrime := b.Geometry.WidthMM, b.Geometry.EffectiveDepthMM, b.Geometry.CompressionCoverMM

	fsc, err := is456.CompressionSteelStress(fy, dPrime/d)
	if err != nil {
		// ineffective compression steel: analyse as singly reinforced
		return rectangularCapacity(k, fck, fy, width, d, ast)
	}

	tension := 0.87 * fy * ast
	steelCouple := (fsc - 0.446*fck) * asc
	concrete := tension - steelCouple
	if concrete <= 0 {
		return tension * (d - dPrime)
	}

	xu := concrete / (0.36 * fck * width)
	if xu > k*d {
		xu = k * d
		concrete = 0.36 * fck * width * xu
	}
	// Mu = Cc (d - 0.42 xu) + Cs (d - d')
	return concrete*(d-0.42*xu) + steelCouple*(d-dPrime)
}

func (b Beam) flangedCapacity(k, ast float64) float64 {
	fl := b.flange(k)
	tension := 0.87 * fl.fy * ast

	// Neutral axis within the flange
	if fl.Df >= fl.xuMax || tension <= 0.36*fl.fck*fl.bf*fl.Df {
		return rectangularCapacity(k, fl.fck, fl.fy, fl.bf, fl.d, ast)
	}

	xu := fl.solveForForce(tension)
	return fl.moment(xu)
}
