// Package compliance runs the design engines for every load case of a beam
// and folds their results into a single verdict.
package compliance

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alexiusacademia/isrcb/internal/bbs"
	"github.com/alexiusacademia/isrcb/internal/detailing"
	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/flexure"
	"github.com/alexiusacademia/isrcb/internal/section"
	"github.com/alexiusacademia/isrcb/internal/serviceability"
	"github.com/alexiusacademia/isrcb/internal/shear"
)

// SchemaVersion identifies the layout of Report.
const SchemaVersion = 1

// HighUtilization is the ratio above which a passing check is flagged.
const HighUtilization = 0.95

// Check names the engine that produced a utilization ratio.
type Check string

const (
	CheckFlexure Check = "flexure"
	CheckShear   Check = "shear"
)

// CaseResult is the design of one load case.
type CaseResult struct {
	CaseID string `json:"case_id"`

	Flexure        *flexure.Result        `json:"flexure,omitempty"`
	Shear          *shear.Result          `json:"shear,omitempty"`
	Detailing      *detailing.Result      `json:"detailing,omitempty"`
	Serviceability *serviceability.Result `json:"serviceability,omitempty"`
	Schedule       *bbs.Schedule          `json:"schedule,omitempty"`

	IsOK                 bool             `json:"is_ok"`
	GoverningUtilization float64          `json:"governing_utilization"`
	GoverningCheck       Check            `json:"governing_check,omitempty"`
	Errors               diagnostics.List `json:"errors"`
}

// BeamResult is the design of one beam over all its load cases.
type BeamResult struct {
	ID     string           `json:"id"`
	IsOK   bool             `json:"is_ok"`
	Cases  []CaseResult     `json:"cases"`
	Errors diagnostics.List `json:"errors"` // beam-level: input and ductility
}

// Report is the schema-versioned result document.
type Report struct {
	SchemaVersion int          `json:"schema_version"`
	IsOK          bool         `json:"is_ok"`
	Beams         []BeamResult `json:"beams"`
}

// Designer evaluates beams. It holds no per-beam state and may be shared.
type Designer struct {
	logger  *slog.Logger
	maxBars int
}

// Option configures a Designer.
type Option func(*Designer)

// WithLogger sets the logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Designer) {
		d.logger = logger
	}
}

// WithMaxBarsPerLayer bounds the bar count search of the detailing stage.
func WithMaxBarsPerLayer(n int) Option {
	return func(d *Designer) {
		d.maxBars = n
	}
}

// New returns a Designer.
func New(opts ...Option) *Designer {
	d := &Designer{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBars: detailing.DefaultMaxBars,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Design evaluates every load case of the beam. Beam-level input errors
// block all cases; a case-level input error blocks only that case.
func (d *Designer) Design(in section.BeamInput) BeamResult {
	log := d.logger.With("beam_id", in.ID)
	result := BeamResult{ID: in.ID}

	inputDiags := section.Validate(in)
	result.Errors = append(result.Errors, inputDiags...)
	if in.Ductile {
		result.Errors = append(result.Errors, DuctilityChecks(in.Geometry, in.SpanMM)...)
	}

	if !inputDiags.IsSafe() {
		log.Warn("beam input rejected", "errors", len(inputDiags.Errors()))
		for _, lc := range in.LoadCases {
			result.Cases = append(result.Cases, CaseResult{
				CaseID: lc.CaseID,
				Errors: diagnostics.List{blocked("beam input is invalid", "flexure", "shear", "detailing", "serviceability", "schedule")},
			})
		}
		result.IsOK = false
		return result
	}

	result.IsOK = result.Errors.IsSafe()
	for _, lc := range in.LoadCases {
		cr := d.designCase(in, lc)
		log.Debug("load case designed",
			"case_id", cr.CaseID,
			"is_ok", cr.IsOK,
			"governing_check", cr.GoverningCheck,
			"governing_utilization", cr.GoverningUtilization,
		)
		result.IsOK = result.IsOK && cr.IsOK
		result.Cases = append(result.Cases, cr)
	}

	log.Info("beam designed", "cases", len(result.Cases), "is_ok", result.IsOK)
	return result
}

func (d *Designer) designCase(in section.BeamInput, lc section.LoadCase) CaseResult {
	cr := CaseResult{CaseID: lc.CaseID}

	if diags := section.ValidateCase(lc); len(diags) > 0 {
		cr.Errors = append(diags, blocked("load case input is invalid", "flexure", "shear", "detailing", "serviceability", "schedule"))
		return cr
	}

	g, m := in.Geometry, in.Materials
	beam := flexure.Beam{Geometry: g, Materials: m}

	// Flexure
	cr.Flexure = flexure.Design(flexure.Input{
		Geometry:            g,
		Materials:           m,
		MuKNm:               lc.MuKNm,
		CompressionSteelMM2: in.CompressionSteelMM2,
	})
	cr.Errors = append(cr.Errors, cr.Flexure.Errors...)
	flexUtil := cr.Flexure.Utilization

	// Shear, with pt from the flexure steel. Past Mu,lim the balanced
	// section steel stands in.
	ptSteel := cr.Flexure.AstRequired
	if ptSteel <= 0 {
		ptSteel = balancedSteel(g, m, cr.Flexure.XuMax)
	}
	if ptSteel <= 0 {
		cr.Errors = append(cr.Errors, blocked("flexure produced no tension steel", "shear", "detailing", "serviceability", "schedule"))
		return cr.finish(flexUtil, 0)
	}
	cr.Shear = shear.Design(shear.Input{
		Geometry:       g,
		Materials:      m,
		VuKN:           lc.VuKN,
		AstProvidedMM2: ptSteel,
		Stirrup:        in.Stirrup,
	})
	cr.Errors = append(cr.Errors, cr.Shear.Errors...)
	if cr.Flexure.AstRequired <= 0 {
		cr.Errors = append(cr.Errors, blocked("flexure produced no tension steel", "detailing", "serviceability", "schedule"))
		return cr.finish(flexUtil, cr.Shear.Utilization)
	}

	// Detailing
	cr.Detailing = detailing.Detail(detailing.Input{
		Geometry:         g,
		Materials:        m,
		Stirrup:          in.Stirrup,
		Bond:             in.Bond,
		AstRequiredMM2:   cr.Flexure.AstRequired,
		AscRequiredMM2:   cr.Flexure.AscProvided,
		StirrupSpacingMM: cr.Shear.SpacingProvided,
		MaxBarsPerLayer:  d.maxBars,
	})
	cr.Errors = append(cr.Errors, cr.Detailing.Errors...)
	if len(cr.Detailing.Bottom.Groups) == 0 {
		cr.Errors = append(cr.Errors, blocked("no bar arrangement was found", "serviceability", "schedule"))
		return cr.finish(flexUtil, cr.Shear.Utilization)
	}

	// Provided bars
	cr.Errors = append(cr.Errors, flexure.CheckProvided(g, m, cr.Detailing.AstProvidedMM2)...)
	if cr.Flexure.IsSafe() {
		asc := 0.0
		if in.IsDoubly() {
			asc = cr.Detailing.AscProvidedMM2
		}
		if capacity := beam.MomentCapacity(cr.Detailing.AstProvidedMM2, asc); capacity > 0 {
			flexUtil = lc.MuKNm / capacity
		}
	}

	// Serviceability
	if in.Serviceability == nil {
		cr.Errors = append(cr.Errors, diagnostics.NewInfo(diagnostics.CodeServiceSkipped,
			"no serviceability block; deflection and crack width were not checked",
			diagnostics.WithField("serviceability")))
	} else {
		cr.Serviceability = serviceability.Check(serviceability.Input{
			Geometry:         g,
			Materials:        m,
			Params:           in.Serviceability,
			SpanMM:           in.SpanMM,
			ServiceMomentKNm: lc.ServiceMomentKNm,
			AstRequiredMM2:   cr.Flexure.AstRequired,
			AstProvidedMM2:   cr.Detailing.AstProvidedMM2,
			AscProvidedMM2:   cr.Detailing.AscProvidedMM2,
			BarDiaMM:         cr.Detailing.Bottom.MaxDia(),
			ClearSpacingMM:   cr.Detailing.ClearSpacingMM,
			StirrupDiaMM:     in.Stirrup.DiaMM,
		})
		cr.Errors = append(cr.Errors, cr.Serviceability.Errors...)
	}

	// Bending schedule
	if in.SpanMM > 0 {
		schedule, diags := bbs.Generate(cr.Detailing, bbs.Input{BeamID: in.ID, Geometry: g, SpanMM: in.SpanMM})
		cr.Schedule = schedule
		cr.Errors = append(cr.Errors, diags...)
	}

	return cr.finish(flexUtil, cr.Shear.Utilization)
}

// finish sets the governing ratio and the verdict.
func (cr CaseResult) finish(flexUtil, shearUtil float64) CaseResult {
	cr.GoverningCheck = CheckFlexure
	cr.GoverningUtilization = flexUtil
	if shearUtil > flexUtil {
		cr.GoverningCheck = CheckShear
		cr.GoverningUtilization = shearUtil
	}

	cr.IsOK = cr.Errors.IsSafe()
	if cr.IsOK && cr.GoverningUtilization > HighUtilization {
		cr.Errors = append(cr.Errors, diagnostics.NewWarning(diagnostics.CodeHighUtilization,
			fmt.Sprintf("%s utilization %.3f exceeds %.2f", cr.GoverningCheck, cr.GoverningUtilization, HighUtilization)))
	}
	return cr
}

// balancedSteel is the tension steel of the balanced web section,
// 0.36 fck bw xu,max / (0.87 fy). It is zero when xu,max is unknown.
func balancedSteel(g section.Geometry, m section.Materials, xuMax float64) float64 {
	if xuMax <= 0 || m.FyNmm2 <= 0 {
		return 0
	}
	return 0.36 * m.FckNmm2 * g.WebWidth() * xuMax / (0.87 * m.FyNmm2)
}

func blocked(reason string, stages ...string) diagnostics.DesignError {
	return diagnostics.NewInfo(diagnostics.CodeStageBlocked,
		reason+"; not evaluated: "+strings.Join(stages, ", "))
}
