package diagram

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/flexure"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// SectionDiagramData holds data for drawing a beam section diagram.
// Depths are measured from the compression face.
type SectionDiagramData struct {
	// Beam dimensions
	Width float64 // mm, overall width of the compression face
	Depth float64 // mm, D

	// Flanged outline, counter-clockwise from bottom-left; empty for rectangles
	Vertices []Point

	// Analysis results
	NeutralAxisDepth float64 // xu (mm)

	// Reinforcement
	EffectiveDepth float64 // d (mm)
	Ast            float64 // mm²
	CompSteelDepth float64 // d' (mm), 0 if none
	Asc            float64 // mm², 0 if none

	// Strains
	EpsilonCU float64 // 0.0035
	EpsilonS  float64 // tension steel strain
	EpsilonSC float64 // compression steel strain
	EpsilonY  float64 // design yield strain

	// Stresses (N/mm²)
	Fck float64
	Fcd float64 // 0.446 fck, peak of the parabolic-rectangular block
	Fst float64 // tension steel stress
	Fsc float64 // compression steel stress

	// Status
	TensionYields bool
	CompYields    bool
	IsDoubly      bool
}

// RectangularDepth is the depth of the constant-stress part of the block,
// 3/7 xu (IS 456 Fig 21).
func (d SectionDiagramData) RectangularDepth() float64 {
	return 3.0 / 7.0 * d.NeutralAxisDepth
}

// YieldStrain returns the design yield strain 0.87 fy/Es, plus 0.002 for
// cold-worked deformed bars (IS 456 Fig 23).
func YieldStrain(fy float64) float64 {
	eps := is456.SteelDesignFactor * fy / is456.Es
	if is456.IsDeformed(fy) {
		eps += 0.002
	}
	return eps
}

// FromFlexure builds the diagram of a designed section from its flexure
// result. The section must have a neutral axis.
func FromFlexure(g section.Geometry, m section.Materials, r *flexure.Result) (SectionDiagramData, error) {
	if r == nil || r.Xu <= 0 {
		return SectionDiagramData{}, fmt.Errorf("diagram: section has no neutral axis")
	}

	xu, d := r.Xu, g.EffectiveDepthMM
	data := SectionDiagramData{
		Width:            g.CompressionWidth(),
		Depth:            g.DepthMM,
		Vertices:         Outline(g),
		NeutralAxisDepth: xu,
		EffectiveDepth:   d,
		Ast:              r.AstRequired,
		EpsilonCU:        is456.EpsilonCU,
		EpsilonY:         YieldStrain(m.FyNmm2),
		Fck:              m.FckNmm2,
		Fcd:              0.446 * m.FckNmm2,
	}

	// εs = εcu (d - xu) / xu
	data.EpsilonS = is456.EpsilonCU * (d - xu) / xu
	data.TensionYields = data.EpsilonS >= data.EpsilonY
	data.Fst = is456.SteelDesignFactor * m.FyNmm2
	if !data.TensionYields {
		data.Fst = min(is456.Es*data.EpsilonS, data.Fst)
	}

	if r.Method == flexure.MethodDoubly && r.AscRequired > 0 {
		dPrime := g.CompressionCoverMM
		data.IsDoubly = true
		data.CompSteelDepth = dPrime
		data.Asc = r.AscRequired
		data.EpsilonSC = is456.EpsilonCU * (xu - dPrime) / xu
		data.CompYields = data.EpsilonSC >= data.EpsilonY
		data.Fsc = r.Fsc
	}

	return data, nil
}

// Outline returns the vertices of a flanged section with the compression
// face at y = D. Rectangular sections return nil.
func Outline(g section.Geometry) []Point {
	bw, bf, depth, df := g.WidthMM, g.FlangeWidthMM, g.DepthMM, g.FlangeThicknessMM
	switch g.Kind.Normalize() {
	case section.KindTBeam:
		x0 := (bf - bw) / 2
		return []Point{
			{x0, 0}, {x0 + bw, 0}, {x0 + bw, depth - df}, {bf, depth - df},
			{bf, depth}, {0, depth}, {0, depth - df}, {x0, depth - df},
		}
	case section.KindLBeam:
		return []Point{
			{0, 0}, {bw, 0}, {bw, depth - df}, {bf, depth - df}, {bf, depth}, {0, depth},
		}
	default:
		return nil
	}
}
