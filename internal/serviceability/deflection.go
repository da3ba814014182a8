package serviceability

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// Basic span/effective depth ratios for spans up to 10 m (Cl 23.2.1).
var basicRatios = map[section.SupportCondition]float64{
	section.SupportCantilever:      7,
	section.SupportSimplySupported: 20,
	section.SupportContinuous:      26,
}

const (
	maxKt = 2.0
	maxKc = 1.5

	// longSpanMM is the span above which the basic ratio is scaled by 10/span.
	longSpanMM = 10000.0
)

// Fig 6: web/flange width ratio against the reduction factor.
var (
	flangeRatios  = []float64{0.3, 1.0}
	flangeFactors = []float64{0.8, 1.0}
)

// DeflectionInput carries everything the span/depth check uses. Zero
// values are treated as missing and reported by name.
type DeflectionInput struct {
	Geometry  section.Geometry
	Materials section.Materials
	Support   section.SupportCondition
	SpanMM    float64

	AstRequiredMM2 float64
	AstProvidedMM2 float64
	AscProvidedMM2 float64
}

// DeflectionResult is the span/effective depth check.
type DeflectionResult struct {
	BasicRatio float64 `json:"basic_ratio"`
	SpanFactor float64 `json:"span_factor"`

	Pt float64 `json:"pt_percent"`
	Fs float64 `json:"fs_nmm2"` // service steel stress estimate
	Kt float64 `json:"kt"`      // tension steel modification (Fig 4)
	Pc float64 `json:"pc_percent"`
	Kc float64 `json:"kc"` // compression steel modification (Fig 5)
	Kf float64 `json:"kf"` // flanged reduction (Fig 6)

	AllowableRatio float64 `json:"allowable_ratio"`
	ActualRatio    float64 `json:"actual_ratio"`
	OK             bool    `json:"ok"`

	Errors diagnostics.List `json:"errors"`
}

// Deflection compares span/d with the modified basic ratio. Percentages
// for Fig 4 and Fig 5 are based on bf·d for flanged sections.
func Deflection(in DeflectionInput) *DeflectionResult {
	result := &DeflectionResult{}

	basic, ok := basicRatios[in.Support]
	var diags diagnostics.List
	switch {
	case in.Support == "":
		diags = append(diags, missing("serviceability.support", "support condition"))
	case !ok:
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputInvalid,
			fmt.Sprintf("unknown support condition %q", in.Support),
			diagnostics.WithField("serviceability.support"),
			diagnostics.WithHint("use cantilever, simply_supported or continuous")))
	}
	if in.SpanMM <= 0 {
		diags = append(diags, missing("span_mm", "span"))
	}
	if in.AstRequiredMM2 <= 0 {
		diags = append(diags, missing("ast_required_mm2", "required tension steel"))
	}
	if in.AstProvidedMM2 <= 0 {
		diags = append(diags, missing("ast_provided_mm2", "provided tension steel"))
	}
	diags = append(diags, section.ValidateGeometry(in.Geometry)...)
	diags = append(diags, section.ValidateMaterials(in.Materials)...)
	if len(diags) > 0 {
		result.Errors = diags
		return result
	}

	g := in.Geometry
	d := g.EffectiveDepthMM
	width := g.CompressionWidth()

	result.BasicRatio = basic
	result.SpanFactor = 1
	if in.SpanMM > longSpanMM && in.Support != section.SupportCantilever {
		result.SpanFactor = longSpanMM / in.SpanMM
	}

	result.Pt = 100 * in.AstProvidedMM2 / (width * d)
	result.Fs = 0.58 * in.Materials.FyNmm2 * in.AstRequiredMM2 / in.AstProvidedMM2
	result.Kt = TensionModification(result.Fs, result.Pt)

	result.Pc = 100 * in.AscProvidedMM2 / (width * d)
	result.Kc = CompressionModification(result.Pc)

	result.Kf = 1
	if g.Kind.Normalize().IsFlanged() {
		result.Kf, _ = is456.Interpolate(flangeRatios, flangeFactors, g.WebWidth()/g.FlangeWidthMM)
	}

	result.AllowableRatio = result.BasicRatio * result.SpanFactor * result.Kt * result.Kc * result.Kf
	result.ActualRatio = in.SpanMM / d
	result.OK = result.ActualRatio <= result.AllowableRatio

	if !result.OK {
		result.Errors = append(result.Errors, diagnostics.NewError(diagnostics.CodeServiceDeflection,
			fmt.Sprintf("span/d=%.2f exceeds the allowable %.2f", result.ActualRatio, result.AllowableRatio),
			diagnostics.WithField("d_mm"),
			diagnostics.WithHint("increase the effective depth or provide compression steel"),
			diagnostics.WithClause("23.2.1")))
	}
	return result
}

// TensionModification is a curve fit of Fig 4:
// kt = 1 / (0.225 + 0.00322 fs - 0.625 log10(1/pt)), at most 2.
func TensionModification(fs, pt float64) float64 {
	kt := 1 / (0.225 + 0.00322*fs - 0.625*math.Log10(1/pt))
	if kt <= 0 || kt > maxKt {
		return maxKt
	}
	return kt
}

// CompressionModification is a curve fit of Fig 5:
// kc = 1 + pc / (3 + pc), at most 1.5.
func CompressionModification(pc float64) float64 {
	if pc <= 0 {
		return 1
	}
	return math.Min(1+pc/(3+pc), maxKc)
}

func missing(field, what string) diagnostics.DesignError {
	return diagnostics.NewError(diagnostics.CodeServiceMissingInput,
		fmt.Sprintf("%s is required for the serviceability checks", what),
		diagnostics.WithField(field),
		diagnostics.WithHint("serviceability inputs are never assumed"))
}
