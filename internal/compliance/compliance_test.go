package compliance

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

func ptr(v float64) *float64 { return &v }

func beam() section.BeamInput {
	return section.BeamInput{
		ID: "B1",
		Geometry: section.Geometry{
			WidthMM:          300,
			DepthMM:          500,
			EffectiveDepthMM: 450,
			CoverMM:          25,
		},
		Materials: section.Materials{FckNmm2: 20, FyNmm2: 415},
		Stirrup:   section.Stirrup{DiaMM: 8, Legs: 2},
		Bond:      section.BondGood,
		SpanMM:    6000,
		Serviceability: &section.ServiceabilityParams{
			Support:  section.SupportSimplySupported,
			Exposure: section.ExposureModerate,
		},
		LoadCases: []section.LoadCase{
			{CaseID: "LC1", MuKNm: 150, VuKN: 100, ServiceMomentKNm: ptr(100)},
		},
	}
}

func TestDesignPassingBeam(t *testing.T) {
	r := New().Design(beam())

	require.True(t, r.IsOK, "beam errors: %v", r.Errors)
	require.Len(t, r.Cases, 1)
	c := r.Cases[0]

	require.True(t, c.IsOK, "case errors: %v", c.Errors)
	assert.Equal(t, "LC1", c.CaseID)
	assert.InDelta(t, 1114.67, c.Flexure.AstRequired, 1)
	assert.InDelta(t, 0.5782, c.Shear.TauC, 0.0001, "pt comes from the flexure steel")
	assert.Equal(t, 300.0, c.Shear.SpacingProvided)
	assert.Equal(t, "6-16", c.Detailing.Bottom.String())
	assert.Equal(t, "2-12", c.Detailing.Top.String())
	require.NotNil(t, c.Serviceability)
	assert.True(t, c.Serviceability.DeflectionOK)
	assert.True(t, c.Serviceability.CrackOK)
	require.NotNil(t, c.Schedule)
	assert.Len(t, c.Schedule.Entries, 3)

	// Mu over the capacity of the provided 6-16
	assert.Equal(t, CheckFlexure, c.GoverningCheck)
	assert.InDelta(t, 0.9427, c.GoverningUtilization, 0.0001)
	assert.False(t, c.Errors.HasCode(diagnostics.CodeHighUtilization))
}

func TestDesignHighUtilization(t *testing.T) {
	in := beam()
	in.LoadCases[0].MuKNm = 160
	r := New().Design(in)

	c := r.Cases[0]
	assert.True(t, c.IsOK)
	assert.Equal(t, "4-20", c.Detailing.Bottom.String())
	assert.InDelta(t, 160/164.14, c.GoverningUtilization, 0.0005)
	assert.True(t, c.Errors.HasCode(diagnostics.CodeHighUtilization))
}

func TestDesignCaseFailuresDoNotStopOtherCases(t *testing.T) {
	in := beam()
	in.LoadCases = []section.LoadCase{
		{CaseID: "over", MuKNm: 250, VuKN: 100},
		{CaseID: "negative", MuKNm: -10, VuKN: 100},
		{CaseID: "shear", MuKNm: 100, VuKN: 400},
		{CaseID: "ok", MuKNm: 150, VuKN: 100, ServiceMomentKNm: ptr(100)},
	}
	r := New().Design(in)

	require.Len(t, r.Cases, 4)
	assert.False(t, r.IsOK)

	over := r.Cases[0]
	assert.False(t, over.IsOK)
	assert.True(t, over.Errors.HasCode(diagnostics.CodeFlexureExceedsMuLim))
	assert.True(t, over.Errors.HasCode(diagnostics.CodeStageBlocked))
	require.NotNil(t, over.Shear, "shear is still checked past Mu,lim")
	assert.True(t, over.Shear.IsSafe())
	assert.Nil(t, over.Detailing)
	assert.Equal(t, CheckFlexure, over.GoverningCheck)
	assert.InDelta(t, 250/167.6257, over.GoverningUtilization, 0.0001)

	negative := r.Cases[1]
	assert.False(t, negative.IsOK)
	assert.True(t, negative.Errors.HasCode(diagnostics.CodeInputNegativeLoad))
	assert.Nil(t, negative.Flexure)

	sh := r.Cases[2]
	assert.False(t, sh.IsOK)
	assert.True(t, sh.Errors.HasCode(diagnostics.CodeShearExceedsMax))
	assert.Equal(t, CheckShear, sh.GoverningCheck)
	assert.Greater(t, sh.GoverningUtilization, 1.0)

	assert.True(t, r.Cases[3].IsOK, "errors: %v", r.Cases[3].Errors)
}

func TestDesignShearGovernsPastLimitingMoment(t *testing.T) {
	in := beam()
	in.LoadCases = []section.LoadCase{{CaseID: "LC1", MuKNm: 250, VuKN: 600}}
	r := New().Design(in)

	c := r.Cases[0]
	assert.False(t, c.IsOK)
	assert.True(t, c.Errors.HasCode(diagnostics.CodeFlexureExceedsMuLim))
	assert.True(t, c.Errors.HasCode(diagnostics.CodeShearExceedsMax))

	require.NotNil(t, c.Shear)
	assert.False(t, c.Shear.IsSafe())
	// pt from the balanced section: 0.36*20*300*216/(0.87*415)
	assert.InDelta(t, 100*1292.23/(300*450), c.Shear.Pt, 1e-4)
	assert.Nil(t, c.Detailing)
	assert.Nil(t, c.Schedule)

	assert.Equal(t, CheckShear, c.GoverningCheck)
	assert.InDelta(t, 4.4444/2.8, c.GoverningUtilization, 1e-4)
}

func TestDesignBeamInputBlocksAllCases(t *testing.T) {
	in := beam()
	in.Materials.FckNmm2 = 22
	in.LoadCases = append(in.LoadCases, section.LoadCase{CaseID: "LC2", MuKNm: 50, VuKN: 20})
	r := New().Design(in)

	assert.False(t, r.IsOK)
	assert.True(t, r.Errors.HasCode(diagnostics.CodeInputUnsupportedFck))
	require.Len(t, r.Cases, 2)
	for _, c := range r.Cases {
		assert.False(t, c.IsOK)
		assert.Nil(t, c.Flexure)
		assert.True(t, c.Errors.HasCode(diagnostics.CodeStageBlocked))
	}
}

func TestDesignServiceabilitySkipped(t *testing.T) {
	in := beam()
	in.Serviceability = nil
	r := New().Design(in)

	c := r.Cases[0]
	assert.True(t, c.IsOK)
	assert.Nil(t, c.Serviceability)
	assert.True(t, c.Errors.HasCode(diagnostics.CodeServiceSkipped))
}

func TestDesignServiceabilityMissingMoment(t *testing.T) {
	in := beam()
	in.LoadCases[0].ServiceMomentKNm = nil
	r := New().Design(in)

	c := r.Cases[0]
	assert.False(t, c.IsOK)
	assert.True(t, c.Errors.HasCode(diagnostics.CodeServiceMissingInput))
}

func TestDesignWithoutSpanHasNoSchedule(t *testing.T) {
	in := beam()
	in.SpanMM = 0
	in.Serviceability = nil
	r := New().Design(in)

	assert.True(t, r.IsOK)
	assert.Nil(t, r.Cases[0].Schedule)
}

func TestDesignDoubly(t *testing.T) {
	in := beam()
	in.Geometry.CompressionCoverMM = 50
	in.CompressionSteelMM2 = ptr(0)
	in.LoadCases[0].MuKNm = 250
	in.Serviceability = nil
	r := New().Design(in)

	c := r.Cases[0]
	require.True(t, c.IsOK, "errors: %v", c.Errors)
	assert.InDelta(t, 602.79, c.Flexure.AscRequired, 1)
	assert.GreaterOrEqual(t, c.Detailing.AscProvidedMM2, 602.79)
	assert.GreaterOrEqual(t, c.Detailing.AstProvidedMM2, 1862.61)
	assert.Less(t, c.GoverningUtilization, 1.0)
}

func TestDuctilityChecks(t *testing.T) {
	g := beam().Geometry
	assert.Empty(t, DuctilityChecks(g, 6000))

	narrow := g
	narrow.WidthMM = 180
	diags := DuctilityChecks(narrow, 6000)
	assert.True(t, diags.HasCode(diagnostics.CodeDuctileWidth))
	assert.False(t, diags.HasCode(diagnostics.CodeDuctileWidthDepth))

	deep := g
	deep.WidthMM = 250
	deep.DepthMM = 900
	diags = DuctilityChecks(deep, 3000)
	assert.True(t, diags.HasCode(diagnostics.CodeDuctileWidthDepth))
	assert.True(t, diags.HasCode(diagnostics.CodeDuctileDepthSpan))

	assert.True(t, DuctilityChecks(g, 0).HasCode(diagnostics.CodeDuctileMissingSpan))
}

func TestDesignDuctileBeam(t *testing.T) {
	in := beam()
	in.Ductile = true
	in.Geometry.WidthMM = 180
	r := New().Design(in)

	assert.False(t, r.IsOK)
	assert.True(t, r.Errors.HasCode(diagnostics.CodeDuctileWidth))
	require.Len(t, r.Cases, 1)
	assert.NotNil(t, r.Cases[0].Flexure, "ductility violations do not block the design")
}

func TestDesignAll(t *testing.T) {
	var beams []section.BeamInput
	for i := 0; i < 20; i++ {
		b := beam()
		b.ID = fmt.Sprintf("B%02d", i)
		mu := 60 + 5*float64(i)
		b.LoadCases[0].MuKNm = mu
		b.LoadCases[0].ServiceMomentKNm = ptr(mu / 1.5)
		beams = append(beams, b)
	}
	beams[7].Materials.FyNmm2 = 550

	serial, err := New().DesignAll(context.Background(), beams, 1)
	require.NoError(t, err)
	parallel, err := New().DesignAll(context.Background(), beams, 8)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, serial.SchemaVersion)
	assert.Equal(t, serial, parallel)
	assert.False(t, parallel.IsOK)
	for i, b := range parallel.Beams {
		assert.Equal(t, beams[i].ID, b.ID)
	}
	assert.False(t, parallel.Beams[7].IsOK)
	assert.True(t, parallel.Beams[0].IsOK)
}

func TestDesignAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().DesignAll(ctx, []section.BeamInput{beam()}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDesignLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(WithLogger(logger)).Design(beam())

	out := buf.String()
	assert.Contains(t, out, `"msg":"load case designed"`)
	assert.Contains(t, out, `"msg":"beam designed"`)
	assert.Contains(t, out, `"beam_id":"B1"`)
}
