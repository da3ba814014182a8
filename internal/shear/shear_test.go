package shear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

func input(vu float64) Input {
	return Input{
		Geometry: section.Geometry{
			WidthMM:          300,
			DepthMM:          500,
			EffectiveDepthMM: 450,
			CoverMM:          25,
		},
		Materials:      section.Materials{FckNmm2: 20, FyNmm2: 415},
		VuKN:           vu,
		AstProvidedMM2: 1206, // pt = 0.893 %
		Stirrup:        section.Stirrup{DiaMM: 8, Legs: 2},
	}
}

func TestDesignStirrupsRequired(t *testing.T) {
	r := Design(input(100))

	require.True(t, r.IsSafe(), "errors: %v", r.Errors)
	assert.InDelta(t, 0.7407, r.TauV, 0.0001)
	assert.InDelta(t, 0.893, r.Pt, 0.001)
	assert.InDelta(t, 0.5944, r.TauC, 0.0001)
	assert.Equal(t, 2.8, r.TauMax)
	assert.False(t, r.MinimumOnly)
	assert.InDelta(t, 19.756, r.VusKN, 0.001)
	assert.InDelta(t, 826.76, r.SpacingRequired, 0.01)
	assert.InDelta(t, 302.47, r.SpacingMinReinf, 0.01)
	assert.Equal(t, 300.0, r.SpacingMax)
	assert.Equal(t, 300.0, r.SpacingProvided)
	assert.InDelta(t, 0.7407/2.8, r.Utilization, 0.0001)
}

func TestDesignMinimumReinforcementStillRequired(t *testing.T) {
	r := Design(input(50))

	require.True(t, r.IsSafe())
	assert.LessOrEqual(t, r.TauV, r.TauC)
	assert.True(t, r.MinimumOnly)
	assert.True(t, r.Errors.HasCode(diagnostics.CodeShearMinimumOnly))
	assert.Greater(t, r.Asv, 0.0)
	assert.Greater(t, r.SpacingProvided, 0.0, "stirrups are never omitted")
	assert.Zero(t, r.VusKN)
}

func TestDesignExceedsMaximum(t *testing.T) {
	for _, tc := range []struct {
		name string
		mod  func(*Input)
	}{
		{"high shear", func(in *Input) { in.VuKN = 400 }},
		{"high shear with heavy stirrups", func(in *Input) {
			in.VuKN = 400
			in.Stirrup = section.Stirrup{DiaMM: 12, Legs: 4}
		}},
		{"high shear with heavy tension steel", func(in *Input) {
			in.VuKN = 400
			in.AstProvidedMM2 = 4000
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := input(0)
			tc.mod(&in)
			r := Design(in)
			assert.Greater(t, r.TauV, r.TauMax)
			assert.False(t, r.IsSafe())
			assert.True(t, r.Errors.HasCode(diagnostics.CodeShearExceedsMax))
			assert.Greater(t, r.Utilization, 1.0)
		})
	}
}

func TestDesignTightSpacing(t *testing.T) {
	r := Design(input(350))

	assert.True(t, r.IsSafe(), "a warning does not affect safety")
	assert.InDelta(t, 60.55, r.SpacingRequired, 0.01)
	assert.Equal(t, 60.0, r.SpacingProvided)
	assert.True(t, r.Errors.HasCode(diagnostics.CodeShearTightSpacing))
}

func TestDesignCapsStirrupGrade(t *testing.T) {
	in := input(100)
	in.Materials.FyNmm2 = 500
	r := Design(in)
	assert.Equal(t, 415.0, r.StirrupFy)
}

func TestDesignProvidedSpacingIsRounded(t *testing.T) {
	for _, vu := range []float64{60, 120, 180, 240, 300} {
		r := Design(input(vu))
		require.True(t, r.IsSafe())
		assert.Zero(t, int(r.SpacingProvided)%10, "Vu=%.0f", vu)
		assert.LessOrEqual(t, r.SpacingProvided, r.SpacingMax)
		assert.LessOrEqual(t, r.SpacingProvided, r.SpacingMinReinf)
	}
}

func TestDesignInputErrors(t *testing.T) {
	in := input(100)
	in.AstProvidedMM2 = 0
	in.Stirrup.Legs = 1
	r := Design(in)

	assert.False(t, r.IsSafe())
	assert.True(t, r.Errors.HasCode(diagnostics.CodeInputMissing))
	assert.True(t, r.Errors.HasCode(diagnostics.CodeInputStirrup))
	assert.Zero(t, r.TauC)
}

func TestDesignClampedGrade(t *testing.T) {
	in := input(100)
	in.Materials.FckNmm2 = 50
	r := Design(in)

	assert.True(t, r.IsSafe())
	assert.True(t, r.Errors.HasCode(diagnostics.CodeTableGradeClamped))
	assert.Equal(t, 4.0, r.TauMax)
}

func TestCapacity(t *testing.T) {
	r := Design(input(100))
	assert.InDelta(t, r.VcKN, Capacity(r, 450, 0), 1e-12)
	// at the required spacing stirrups carry exactly Vus
	assert.InDelta(t, 100, Capacity(r, 450, r.SpacingRequired), 1e-6)
}
