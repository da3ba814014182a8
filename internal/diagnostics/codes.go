package diagnostics

// Input validation
const (
	CodeInputMissing          = "E_INPUT_MISSING"
	CodeInputInvalid          = "E_INPUT_INVALID"
	CodeInputNonPositive      = "E_INPUT_NON_POSITIVE"
	CodeInputDepthOrder       = "E_INPUT_DEPTH_ORDER"
	CodeInputUnsupportedFck   = "E_INPUT_UNSUPPORTED_FCK"
	CodeInputUnsupportedFy    = "E_INPUT_UNSUPPORTED_FY"
	CodeInputNegativeLoad     = "E_INPUT_NEGATIVE_LOAD"
	CodeInputFlangeWidth      = "E_INPUT_FLANGE_WIDTH"
	CodeInputFlangeThickness  = "E_INPUT_FLANGE_THICKNESS"
	CodeInputUnknownKind      = "E_INPUT_UNKNOWN_SECTION_KIND"
	CodeInputStirrup          = "E_INPUT_STIRRUP"
	CodeInputDuplicateCase    = "E_INPUT_DUPLICATE_CASE"
	CodeInputCompressionCover = "E_INPUT_COMPRESSION_COVER"
)

// Flexure
const (
	CodeFlexureExceedsMuLim      = "E_FLEXURE_EXCEEDS_MU_LIM"
	CodeFlexureMinSteel          = "E_FLEXURE_MIN_STEEL"
	CodeFlexureMaxSteel          = "E_FLEXURE_MAX_STEEL"
	CodeFlexureDPrimeTooLarge    = "E_FLEXURE_DPRIME_TOO_LARGE"
	CodeFlexureAscInsufficient   = "E_FLEXURE_ASC_INSUFFICIENT"
	CodeFlexureUnsupportedGrade  = "E_FLEXURE_UNSUPPORTED_GRADE"
	CodeFlexureUnsupportedShape  = "E_FLEXURE_UNSUPPORTED_SECTION"
	CodeFlexureMinSteelGoverns   = "W_FLEXURE_MIN_STEEL_GOVERNS"
	CodeFlexureNearMinSteel      = "W_FLEXURE_NEAR_MIN_STEEL"
	CodeFlexureAscNotRequired    = "I_FLEXURE_ASC_NOT_REQUIRED"
	CodeFlexureNeutralAxisFlange = "I_FLEXURE_NA_IN_FLANGE"
)

// Shear
const (
	CodeShearExceedsMax   = "E_SHEAR_EXCEEDS_MAX"
	CodeShearMinimumOnly  = "I_SHEAR_MINIMUM_REINFORCEMENT"
	CodeShearTightSpacing = "W_SHEAR_TIGHT_SPACING"
)

// Detailing
const (
	CodeDetailingSpacing   = "E_DETAILING_SPACING"
	CodeDetailingNoBars    = "E_DETAILING_NO_ARRANGEMENT"
	CodeDetailingTwoSizes  = "I_DETAILING_TWO_SIZES"
	CodeDetailingHangerBar = "I_DETAILING_HANGER_BARS"
)

// Ductility (IS 13920 width/depth checks only)
const (
	CodeDuctileWidth       = "E_DUCTILE_WIDTH"
	CodeDuctileWidthDepth  = "E_DUCTILE_WIDTH_DEPTH_RATIO"
	CodeDuctileDepthSpan   = "E_DUCTILE_DEPTH_SPAN_RATIO"
	CodeDuctileMissingSpan = "E_DUCTILE_MISSING_SPAN"
)

// Serviceability
const (
	CodeServiceMissingInput = "E_SERVICE_MISSING_INPUT"
	CodeServiceBarSpacing   = "E_SERVICE_BAR_SPACING"
	CodeServiceDeflection   = "E_SERVICE_DEFLECTION"
	CodeServiceCrackWidth   = "E_SERVICE_CRACK_WIDTH"
	CodeServiceSkipped      = "I_SERVICE_SKIPPED"
)

// Bending schedule
const (
	CodeBBSNoBars = "E_BBS_NO_BARS"
)

// Tables and aggregation
const (
	CodeTableGradeClamped = "W_TABLE_GRADE_CLAMPED"
	CodeTablePtClamped    = "I_TABLE_PT_CLAMPED"
	CodeHighUtilization   = "W_HIGH_UTILIZATION"
	CodeStageBlocked      = "I_STAGE_BLOCKED"
)
