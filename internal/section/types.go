// Package section holds the plain input records consumed by the design
// engines: beam geometry, material grades, stirrup data and load cases.
package section

// Kind tags the cross-section shape. A single flexure entry point dispatches
// on it.
type Kind string

const (
	KindRectangular Kind = "RECTANGULAR"
	KindTBeam       Kind = "T_BEAM"
	KindLBeam       Kind = "L_BEAM"
)

// IsFlanged reports whether the section has a compression flange.
func (k Kind) IsFlanged() bool { return k == KindTBeam || k == KindLBeam }

// Normalize maps the empty kind (external records without a shape tag) to
// RECTANGULAR.
func (k Kind) Normalize() Kind {
	if k == "" {
		return KindRectangular
	}
	return k
}

// Geometry describes the beam cross-section. All lengths in mm.
type Geometry struct {
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	WidthMM          float64 `json:"b_mm" yaml:"b_mm" validate:"required,gt=0"`         // b, or web width bw for flanged sections
	DepthMM          float64 `json:"D_mm" yaml:"D_mm" validate:"required,gt=0"`         // D - overall depth
	EffectiveDepthMM float64 `json:"d_mm" yaml:"d_mm" validate:"required,gt=0"`         // d - to centroid of tension steel
	CoverMM          float64 `json:"cover_mm" yaml:"cover_mm" validate:"required,gt=0"` // clear cover to stirrups

	// d' - cover to centroid of compression steel (doubly reinforced only)
	CompressionCoverMM float64 `json:"d_dash_mm,omitempty" yaml:"d_dash_mm,omitempty" validate:"omitempty,gt=0"`

	// Flanged sections only
	FlangeWidthMM     float64 `json:"bf_mm,omitempty" yaml:"bf_mm,omitempty" validate:"omitempty,gt=0"` // effective flange width
	FlangeThicknessMM float64 `json:"Df_mm,omitempty" yaml:"Df_mm,omitempty" validate:"omitempty,gt=0"` // flange thickness
}

// WebWidth returns the width resisting shear (b, or bw for flanged sections).
func (g Geometry) WebWidth() float64 { return g.WidthMM }

// CompressionWidth returns the width of the compression face.
func (g Geometry) CompressionWidth() float64 {
	if g.Kind.Normalize().IsFlanged() {
		return g.FlangeWidthMM
	}
	return g.WidthMM
}

// Materials holds characteristic strengths (N/mm²).
type Materials struct {
	FckNmm2 float64 `json:"fck_nmm2" yaml:"fck_nmm2" validate:"required,fck_grade"` // concrete grade
	FyNmm2  float64 `json:"fy_nmm2" yaml:"fy_nmm2" validate:"required,fy_grade"`    // steel grade
}

// Stirrup describes the shear reinforcement the designer intends to use.
type Stirrup struct {
	DiaMM int `json:"dia_mm" yaml:"dia_mm" validate:"required,oneof=6 8 10 12"`
	Legs  int `json:"legs" yaml:"legs" validate:"required,min=2"`
}

// BondCondition classifies the bond quality for development length.
type BondCondition string

const (
	BondGood BondCondition = "good"
	BondPoor BondCondition = "poor"
)

// SupportCondition selects the basic span/depth ratio.
type SupportCondition string

const (
	SupportCantilever      SupportCondition = "cantilever"
	SupportSimplySupported SupportCondition = "simply_supported"
	SupportContinuous      SupportCondition = "continuous"
)

// Exposure is the IS 456 Table 3 environmental exposure class.
type Exposure string

const (
	ExposureMild       Exposure = "mild"
	ExposureModerate   Exposure = "moderate"
	ExposureSevere     Exposure = "severe"
	ExposureVerySevere Exposure = "very_severe"
	ExposureExtreme    Exposure = "extreme"
)

// ServiceabilityParams are the extra inputs the serviceability checks need.
// They are optional as a block; once present every field is mandatory and
// the serviceability engine reports each missing one by name.
type ServiceabilityParams struct {
	Support  SupportCondition `json:"support" yaml:"support"`
	Exposure Exposure         `json:"exposure" yaml:"exposure"`
}

// LoadCase holds factored actions (magnitudes only).
type LoadCase struct {
	CaseID string  `json:"case_id" yaml:"case_id" validate:"required"`
	MuKNm  float64 `json:"mu_knm" yaml:"mu_knm" validate:"gte=0"` // factored moment (kN-m)
	VuKN   float64 `json:"vu_kn" yaml:"vu_kn" validate:"gte=0"`   // factored shear (kN)

	// Service (unfactored) moment for the crack width check (kN-m)
	ServiceMomentKNm *float64 `json:"service_mu_knm,omitempty" yaml:"service_mu_knm,omitempty" validate:"omitempty,gte=0"`
}

// BeamInput is one beam design record.
type BeamInput struct {
	ID        string        `json:"id" yaml:"id" validate:"required"`
	Geometry  Geometry      `json:"geometry" yaml:"geometry"`
	Materials Materials     `json:"materials" yaml:"materials"`
	Stirrup   Stirrup       `json:"stirrup" yaml:"stirrup"`
	Bond      BondCondition `json:"bond" yaml:"bond" validate:"required,oneof=good poor"`

	// Proposed compression steel (mm²). Its presence selects the doubly
	// reinforced path; zero asks the engine to size it.
	CompressionSteelMM2 *float64 `json:"asc_mm2,omitempty" yaml:"asc_mm2,omitempty" validate:"omitempty,gte=0"`

	// Clear span (mm), used by serviceability, the bending schedule and the
	// ductility checks.
	SpanMM float64 `json:"span_mm,omitempty" yaml:"span_mm,omitempty" validate:"omitempty,gt=0"`

	// Ductile enables the IS 13920 width/depth checks.
	Ductile bool `json:"ductile,omitempty" yaml:"ductile,omitempty"`

	Serviceability *ServiceabilityParams `json:"serviceability,omitempty" yaml:"serviceability,omitempty"`

	LoadCases []LoadCase `json:"load_cases" yaml:"load_cases"`
}

// IsDoubly reports whether the caller asked for a doubly reinforced design.
func (b BeamInput) IsDoubly() bool { return b.CompressionSteelMM2 != nil }

// Document is the on-disk container for a set of beams.
type Document struct {
	Beams []BeamInput `json:"beams" yaml:"beams"`
}
