package section

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
)

// inputValidate checks the per-field rules declared in struct tags.
// Cross-field rules are coded below.
var inputValidate *validator.Validate

func init() {
	inputValidate = validator.New(validator.WithRequiredStructEnabled())
	inputValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = inputValidate.RegisterValidation("fck_grade", func(fl validator.FieldLevel) bool {
		return is456.IsConcreteGrade(fl.Field().Float())
	})
	_ = inputValidate.RegisterValidation("fy_grade", func(fl validator.FieldLevel) bool {
		return is456.IsSteelGrade(fl.Field().Float())
	})
}

// Validate checks the beam-level record: geometry, materials, stirrups,
// bond condition and the load case list. A non-empty result always has
// error severity and blocks every load case of the beam.
func Validate(in BeamInput) diagnostics.List {
	diags := structErrors(in, "")

	diags = append(diags, geometryRules(in.Geometry, "geometry.")...)

	if in.IsDoubly() {
		g := in.Geometry
		switch {
		case g.CompressionCoverMM == 0:
			diags = append(diags, diagnostics.NewError(diagnostics.CodeInputMissing,
				"compression steel cover d' is required for a doubly reinforced design",
				diagnostics.WithField("geometry.d_dash_mm")))
		case g.CompressionCoverMM > 0 && g.EffectiveDepthMM > 0 && g.CompressionCoverMM >= g.EffectiveDepthMM:
			diags = append(diags, diagnostics.NewError(diagnostics.CodeInputCompressionCover,
				fmt.Sprintf("d'=%.1f mm must be less than d=%.1f mm", g.CompressionCoverMM, g.EffectiveDepthMM),
				diagnostics.WithField("geometry.d_dash_mm")))
		}
	}

	if len(in.LoadCases) == 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputMissing,
			"at least one load case is required",
			diagnostics.WithField("load_cases")))
	}
	seen := make(map[string]bool, len(in.LoadCases))
	for i, lc := range in.LoadCases {
		if lc.CaseID == "" {
			continue
		}
		if seen[lc.CaseID] {
			diags = append(diags, diagnostics.NewError(diagnostics.CodeInputDuplicateCase,
				fmt.Sprintf("load case id %q is used more than once", lc.CaseID),
				diagnostics.WithField(fmt.Sprintf("load_cases[%d].case_id", i))))
		}
		seen[lc.CaseID] = true
	}

	return diags
}

// ValidateCase checks a single load case. Its errors block only that case.
func ValidateCase(lc LoadCase) diagnostics.List {
	return structErrors(lc, "")
}

// ValidateGeometry checks geometry alone. Engines call it so that they can
// be used without the aggregator and still never divide by a bad input.
func ValidateGeometry(g Geometry) diagnostics.List {
	return append(structErrors(g, ""), geometryRules(g, "")...)
}

// ValidateMaterials checks the material grades alone.
func ValidateMaterials(m Materials) diagnostics.List {
	return structErrors(m, "")
}

// ValidateStirrup checks the stirrup diameter and leg count.
func ValidateStirrup(s Stirrup) diagnostics.List {
	return structErrors(s, "stirrup.")
}

func geometryRules(g Geometry, prefix string) diagnostics.List {
	var diags diagnostics.List

	if g.EffectiveDepthMM > 0 && g.DepthMM > 0 && g.EffectiveDepthMM >= g.DepthMM {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputDepthOrder,
			fmt.Sprintf("effective depth d=%.1f mm must be less than overall depth D=%.1f mm", g.EffectiveDepthMM, g.DepthMM),
			diagnostics.WithField(prefix+"d_mm")))
	}

	switch g.Kind.Normalize() {
	case KindRectangular:
	case KindTBeam, KindLBeam:
		diags = append(diags, flangeRules(g, prefix)...)
	default:
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputUnknownKind,
			fmt.Sprintf("unknown section kind %q", g.Kind),
			diagnostics.WithField(prefix+"kind"),
			diagnostics.WithHint("use RECTANGULAR, T_BEAM or L_BEAM")))
	}
	return diags
}

func flangeRules(g Geometry, prefix string) diagnostics.List {
	var diags diagnostics.List
	if g.FlangeWidthMM == 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputMissing,
			"effective flange width is required for a flanged section",
			diagnostics.WithField(prefix+"bf_mm"),
			diagnostics.WithHint("compute bf per Cl 23.1.2; it is never inferred from the span"),
			diagnostics.WithClause("23.1.2")))
	} else if g.FlangeWidthMM > 0 && g.FlangeWidthMM < g.WidthMM {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputFlangeWidth,
			fmt.Sprintf("flange width bf=%.1f mm is less than web width bw=%.1f mm", g.FlangeWidthMM, g.WidthMM),
			diagnostics.WithField(prefix+"bf_mm")))
	}
	if g.FlangeThicknessMM == 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputMissing,
			"flange thickness is required for a flanged section",
			diagnostics.WithField(prefix+"Df_mm")))
	} else if g.FlangeThicknessMM > 0 && g.EffectiveDepthMM > 0 && g.FlangeThicknessMM >= g.EffectiveDepthMM {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputFlangeThickness,
			fmt.Sprintf("flange thickness Df=%.1f mm must be less than d=%.1f mm", g.FlangeThicknessMM, g.EffectiveDepthMM),
			diagnostics.WithField(prefix+"Df_mm")))
	}
	return diags
}

// structErrors runs the tag validator and converts its field errors.
func structErrors(v any, prefix string) diagnostics.List {
	err := inputValidate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only reachable for a nil or non-struct argument
		panic(fmt.Sprintf("section: cannot validate %T: %v", v, err))
	}

	diags := make(diagnostics.List, 0, len(verrs))
	for _, fe := range verrs {
		diags = append(diags, fieldError(fe, prefix))
	}
	return diags
}

func fieldError(fe validator.FieldError, prefix string) diagnostics.DesignError {
	field := prefix + namespaceField(fe.Namespace())
	opt := diagnostics.WithField(field)

	switch fe.Tag() {
	case "required":
		return diagnostics.NewError(diagnostics.CodeInputMissing,
			fmt.Sprintf("%s is required", field), opt,
			diagnostics.WithHint("missing inputs are never defaulted"))
	case "gt":
		return diagnostics.NewError(diagnostics.CodeInputNonPositive,
			fmt.Sprintf("%s must be greater than zero (got %v)", field, fe.Value()), opt)
	case "gte":
		return diagnostics.NewError(diagnostics.CodeInputNegativeLoad,
			fmt.Sprintf("%s must not be negative (got %v); pass magnitudes only", field, fe.Value()), opt)
	case "fck_grade":
		return diagnostics.NewError(diagnostics.CodeInputUnsupportedFck,
			fmt.Sprintf("fck=%v is not a supported concrete grade", fe.Value()), opt,
			diagnostics.WithHint(fmt.Sprintf("use one of %v", is456.ConcreteGrades)),
			diagnostics.WithClause("Table 2"))
	case "fy_grade":
		return diagnostics.NewError(diagnostics.CodeInputUnsupportedFy,
			fmt.Sprintf("fy=%v is not a supported steel grade", fe.Value()), opt,
			diagnostics.WithHint(fmt.Sprintf("use one of %v", is456.SteelGrades)))
	case "oneof", "min":
		code := diagnostics.CodeInputStirrup
		if !strings.HasPrefix(field, "stirrup.") {
			code = diagnostics.CodeInputInvalid
		}
		return diagnostics.NewError(code,
			fmt.Sprintf("%s=%v is not allowed (%s=%s)", field, fe.Value(), fe.Tag(), fe.Param()), opt)
	default:
		return diagnostics.NewError(diagnostics.CodeInputInvalid,
			fmt.Sprintf("%s failed %q", field, fe.Tag()), opt)
	}
}

// namespaceField drops the root struct name: "BeamInput.geometry.b_mm"
// becomes "geometry.b_mm".
func namespaceField(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
