package flexure

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// bisectionSteps fixes the iteration count so results are reproducible
// bit for bit.
const bisectionSteps = 100

// Flanged designs a T or L section for mu (kN-m) per Annex G-2. The
// effective flange width must be supplied on the geometry.
func (b Beam) Flanged(muKNm float64) *Result {
	result := &Result{Method: MethodFlanged, MuKNm: muKNm}

	k, diags := b.designPreflight(muKNm)
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	fl := b.flange(k)
	result.XuMax = fl.xuMax
	result.AstMin = MinTensionSteel(fl.bw, fl.d, fl.fy)
	result.AstMax = MaxTensionSteel(fl.bw, b.Geometry.DepthMM)

	muLim := fl.limitingMoment()
	result.MuLimKNm = section.NmmToKNm(muLim)
	result.MomentCapacityKNm = result.MuLimKNm
	result.Utilization = utilization(muKNm, result.MuLimKNm)

	mu := section.KNmToNmm(muKNm)
	if mu > muLim {
		result.overReinforced("increase the web depth or the flange width")
		return result
	}

	if fl.Df >= fl.xuMax || mu <= fl.flangeMoment() {
		// Neutral axis within the flange: rectangular section of width bf
		result.AstCalculated = RequiredSteel(mu, fl.fck, fl.fy, fl.bf, fl.d)
		result.Xu = NeutralAxisDepth(result.AstCalculated, fl.fck, fl.fy, fl.bf)
		result.Errors = append(result.Errors, diagnostics.NewInfo(diagnostics.CodeFlexureNeutralAxisFlange,
			fmt.Sprintf("neutral axis xu=%.1f mm lies within the flange (Df=%.1f mm)", result.Xu, fl.Df)))
	} else {
		xu := fl.solveForMoment(mu)
		result.Xu = xu
		result.AstCalculated = fl.compression(xu) / (0.87 * fl.fy)
	}

	result.classify()
	result.applySteelLimits()
	return result
}

// flange collects the section values used by the Annex G-2 equations.
type flange struct {
	bw, bf, Df, d float64
	fck, fy       float64
	xuMax         float64
}

func (b Beam) flange(k float64) flange {
	g := b.Geometry
	return flange{
		bw:    g.WidthMM,
		bf:    g.FlangeWidthMM,
		Df:    g.FlangeThicknessMM,
		d:     g.EffectiveDepthMM,
		fck:   b.Materials.FckNmm2,
		fy:    b.Materials.FyNmm2,
		xuMax: k * g.EffectiveDepthMM,
	}
}

// yf is the equivalent flange depth: Df when Df/d ≤ 0.2, otherwise
// 0.15 xu + 0.65 Df but not more than Df (Annex G-2.2.1).
func (f flange) yf(xu float64) float64 {
	if f.Df/f.d <= 0.2 {
		return f.Df
	}
	y := 0.15*xu + 0.65*f.Df
	if y > f.Df {
		return f.Df
	}
	return y
}

// compression returns the total compressive force (N) for a neutral axis
// below the flange.
func (f flange) compression(xu float64) float64 {
	return 0.36*f.fck*f.bw*xu + 0.45*f.fck*(f.bf-f.bw)*f.yf(xu)
}

// moment returns the moment of resistance (N-mm) for a neutral axis below
// the flange:
// Mu = 0.36 fck bw xu (d - 0.42 xu) + 0.45 fck (bf - bw) yf (d - yf/2)
func (f flange) moment(xu float64) float64 {
	y := f.yf(xu)
	return 0.36*f.fck*f.bw*xu*(f.d-0.42*xu) + 0.45*f.fck*(f.bf-f.bw)*y*(f.d-y/2)
}

// flangeMoment is the capacity with the neutral axis at the flange soffit.
func (f flange) flangeMoment() float64 {
	return 0.36 * f.fck * f.bf * f.Df * (f.d - 0.42*f.Df)
}

func (f flange) limitingMoment() float64 {
	if f.Df >= f.xuMax {
		return 0.36 * f.fck * f.bf * f.xuMax * (f.d - 0.42*f.xuMax)
	}
	return f.moment(f.xuMax)
}

// solveForMoment finds xu in [Df, xu,max] with moment(xu) = mu by
// bisection; moment is increasing on that interval.
func (f flange) solveForMoment(mu float64) float64 {
	lo, hi := f.Df, f.xuMax
	if f.moment(lo) >= mu {
		return lo
	}
	for i := 0; i < bisectionSteps; i++ {
		mid := (lo + hi) / 2
		if f.moment(mid) < mu {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// solveForForce finds xu in [Df, xu,max] with compression(xu) = force.
func (f flange) solveForForce(force float64) float64 {
	lo, hi := f.Df, f.xuMax
	if f.compression(lo) >= force {
		return lo
	}
	if f.compression(hi) <= force {
		return hi
	}
	for i := 0; i < bisectionSteps; i++ {
		mid := (lo + hi) / 2
		if f.compression(mid) < force {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
