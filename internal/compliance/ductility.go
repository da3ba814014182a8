package compliance

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// IS 13920:2016 Cl 6.1 member size limits for flexural members.
const (
	DuctileMinWidthMM     = 200.0
	DuctileMinWidthDepth  = 0.3
	DuctileMaxDepthToSpan = 0.25
)

// DuctilityChecks applies the IS 13920 width and depth limits. Detailing
// for ductility beyond these is not covered.
func DuctilityChecks(g section.Geometry, spanMM float64) diagnostics.List {
	var diags diagnostics.List
	b, depth := g.WebWidth(), g.DepthMM

	if b < DuctileMinWidthMM {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeDuctileWidth,
			fmt.Sprintf("width %.0f mm is less than %.0f mm", b, DuctileMinWidthMM),
			diagnostics.WithField("geometry.b_mm"),
			diagnostics.WithClause("IS 13920 6.1.2")))
	}
	if depth > 0 && b/depth < DuctileMinWidthDepth {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeDuctileWidthDepth,
			fmt.Sprintf("b/D=%.3f is less than %.1f", b/depth, DuctileMinWidthDepth),
			diagnostics.WithField("geometry.b_mm"),
			diagnostics.WithClause("IS 13920 6.1.1")))
	}
	switch {
	case spanMM <= 0:
		diags = append(diags, diagnostics.NewError(diagnostics.CodeDuctileMissingSpan,
			"clear span is required for the depth/span check of a ductile beam",
			diagnostics.WithField("span_mm")))
	case depth > DuctileMaxDepthToSpan*spanMM:
		diags = append(diags, diagnostics.NewError(diagnostics.CodeDuctileDepthSpan,
			fmt.Sprintf("depth %.0f mm exceeds a quarter of the clear span (%.0f mm)", depth, DuctileMaxDepthToSpan*spanMM),
			diagnostics.WithField("geometry.D_mm"),
			diagnostics.WithClause("IS 13920 6.1.3")))
	}
	return diags
}
