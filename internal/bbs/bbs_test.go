package bbs

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/isrcb/internal/detailing"
	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

func detailed() *detailing.Result {
	return &detailing.Result{
		Bottom:                 detailing.Arrangement{Groups: []detailing.BarGroup{{DiaMM: 16, Count: 6}}},
		Top:                    detailing.Arrangement{Groups: []detailing.BarGroup{{DiaMM: 12, Count: 2}}},
		Stirrups:               detailing.StirrupSet{DiaMM: 8, Legs: 2, SpacingMM: 300},
		DevelopmentLengthMM:    752.1875,
		TopDevelopmentLengthMM: 451.3125,
	}
}

func scheduleInput() Input {
	return Input{
		BeamID:   "B1",
		Geometry: section.Geometry{WidthMM: 300, DepthMM: 500, EffectiveDepthMM: 450, CoverMM: 25},
		SpanMM:   6000,
	}
}

func TestGenerate(t *testing.T) {
	s, diags := Generate(detailed(), scheduleInput())
	require.Empty(t, diags)

	assert.Equal(t, "B1", s.BeamID)
	assert.Equal(t, []Entry{
		{Mark: "B1", Location: "bottom", Shape: ShapeStraight, DiaMM: 16, Count: 6, CutLengthMM: 7500, UnitWeightKg: 11.84, TotalWeightKg: 71.04},
		{Mark: "T1", Location: "top", Shape: ShapeStraight, DiaMM: 12, Count: 2, CutLengthMM: 6900, UnitWeightKg: 6.13, TotalWeightKg: 12.26},
		{Mark: "S1", Location: "stirrups", Shape: ShapeStirrup, DiaMM: 8, Count: 21, CutLengthMM: 1580, UnitWeightKg: 0.62, TotalWeightKg: 13.02},
	}, s.Entries)
	assert.InDelta(t, 96.32, s.TotalWeightKg, 1e-9)
	assert.InDelta(t, 71.04, s.WeightByDia[16], 1e-9)
}

func TestGenerateBentUp(t *testing.T) {
	in := scheduleInput()
	in.BentUpBars = 2
	s, diags := Generate(detailed(), in)
	require.Empty(t, diags)

	require.Len(t, s.Entries, 4)
	assert.Equal(t, "B1", s.Entries[0].Mark)
	assert.Equal(t, 4, s.Entries[0].Count)
	assert.Equal(t, "BU1", s.Entries[1].Mark)
	assert.Equal(t, ShapeBentUp, s.Entries[1].Shape)
	assert.Equal(t, 2, s.Entries[1].Count)
	assert.Equal(t, 7880.0, s.Entries[1].CutLengthMM)

	in.BentUpBars = 5
	_, diags = Generate(detailed(), in)
	assert.True(t, diags.HasCode(diagnostics.CodeInputInvalid))
}

func TestGenerateRounding(t *testing.T) {
	det := detailed()
	for _, span := range []float64{3210, 4567, 5999, 7333, 9001} {
		for _, ld := range []float64{401.3, 655.55, 987.6} {
			det.DevelopmentLengthMM = ld
			in := scheduleInput()
			in.SpanMM = span
			s, diags := Generate(det, in)
			require.Empty(t, diags)
			for _, e := range s.Entries {
				assert.Zero(t, math.Mod(e.CutLengthMM, 10), "%s length %v", e.Mark, e.CutLengthMM)
				assert.True(t, twoDecimals(e.UnitWeightKg), "%s unit weight %v", e.Mark, e.UnitWeightKg)
				assert.True(t, twoDecimals(e.TotalWeightKg), "%s weight %v", e.Mark, e.TotalWeightKg)
			}
			assert.True(t, twoDecimals(s.TotalWeightKg))
		}
	}
}

func twoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

func TestGenerateErrors(t *testing.T) {
	in := scheduleInput()
	in.SpanMM = 0
	s, diags := Generate(nil, in)
	assert.Nil(t, s)
	assert.True(t, diags.HasCode(diagnostics.CodeInputMissing))
	assert.True(t, diags.HasCode(diagnostics.CodeBBSNoBars))
	for _, d := range diags {
		assert.Equal(t, diagnostics.SeverityError, d.Severity)
		assert.True(t, strings.HasPrefix(d.Code, "E_"), d.Code)
	}
}

func TestFormulas(t *testing.T) {
	assert.InDelta(t, 1578.24, StirrupLength(300, 500, 25, 8), 1e-9)
	assert.Equal(t, 21, StirrupCount(6000, 300))
	assert.Equal(t, 20, StirrupCount(5999, 300))
	assert.Equal(t, 7500.0, RoundLength(7504.375))
	assert.Equal(t, 7510.0, RoundLength(7505))
	assert.InDelta(t, 1.578, UnitWeight(16, 1000), 0.001)
}
