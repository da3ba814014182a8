package detailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
)

func TestBarArea(t *testing.T) {
	assert.InDelta(t, 201.06, BarArea(16), 0.01)
	assert.InDelta(t, 314.16, BarArea(20), 0.01)
	assert.InDelta(t, 804.25, BarArea(32), 0.01)
}

func TestClearSpacing(t *testing.T) {
	assert.InDelta(t, 27.6, ClearSpacing([]BarGroup{{DiaMM: 16, Count: 6}}, 234), 1e-9)
	assert.InDelta(t, 36.0, ClearSpacing([]BarGroup{{DiaMM: 32, Count: 2}, {DiaMM: 8, Count: 1}}, 144), 1e-9)
	assert.Equal(t, 25.0, MinClearSpacing(20))
	assert.Equal(t, 32.0, MinClearSpacing(32))
}

func TestSelectBars(t *testing.T) {
	t.Run("least excess single size that fits", func(t *testing.T) {
		// 10-12 has less excess but a 12.7 mm gap
		a, diags := SelectBars(1114.67, 234, 0)
		assert.Empty(t, diags)
		assert.Equal(t, []BarGroup{{DiaMM: 16, Count: 6}}, a.Groups)
		assert.InDelta(t, 1206.37, a.AreaMM2, 0.01)
		assert.True(t, a.Fits())
		assert.Equal(t, "6-16", a.String())
	})

	t.Run("at least two bars", func(t *testing.T) {
		a, diags := SelectBars(226, 234, 0)
		assert.Empty(t, diags)
		assert.Equal(t, []BarGroup{{DiaMM: 12, Count: 2}}, a.Groups)
	})

	t.Run("two sizes when no single size fits", func(t *testing.T) {
		a, diags := SelectBars(1610, 144, 0)
		require.True(t, diags.IsSafe())
		assert.True(t, diags.HasCode(diagnostics.CodeDetailingTwoSizes))
		assert.Equal(t, []BarGroup{{DiaMM: 32, Count: 2}, {DiaMM: 8, Count: 1}}, a.Groups)
		assert.Equal(t, "2-32 + 1-8", a.String())
		assert.GreaterOrEqual(t, a.AreaMM2, 1610.0)
	})

	t.Run("nothing fits reports the best achievable spacing", func(t *testing.T) {
		a, diags := SelectBars(2500, 134, 0)
		assert.False(t, diags.IsSafe())
		assert.True(t, diags.HasCode(diagnostics.CodeDetailingSpacing))
		assert.False(t, a.Fits())
		assert.GreaterOrEqual(t, a.AreaMM2, 2500.0)
		assert.Contains(t, diags[0].Message, "below the minimum")
	})

	t.Run("area beyond the bar limit", func(t *testing.T) {
		_, diags := SelectBars(20000, 500, 4)
		assert.True(t, diags.HasCode(diagnostics.CodeDetailingNoBars))
	})
}

func TestSelectBarsProvidesRequiredArea(t *testing.T) {
	for req := 150.0; req <= 4000; req += 37 {
		a, diags := SelectBars(req, 400, 0)
		if diags.HasCode(diagnostics.CodeDetailingNoBars) {
			continue
		}
		assert.GreaterOrEqual(t, a.AreaMM2, req, "required %.0f", req)
		assert.GreaterOrEqual(t, a.TotalBars(), MinBars)
		if diags.IsSafe() {
			assert.GreaterOrEqual(t, a.ClearSpacingMM, a.MinClearSpacingMM)
		}
	}
}

func TestRankingTieBreak(t *testing.T) {
	few := Arrangement{Groups: []BarGroup{{DiaMM: 20, Count: 3}}, ExcessMM2: 50}
	many := Arrangement{Groups: []BarGroup{{DiaMM: 16, Count: 4}}, ExcessMM2: 50}
	mixed := Arrangement{Groups: []BarGroup{{DiaMM: 20, Count: 2}, {DiaMM: 12, Count: 1}}, ExcessMM2: 50}
	smaller := Arrangement{Groups: []BarGroup{{DiaMM: 16, Count: 3}}, ExcessMM2: 50}

	assert.True(t, better(few, mixed), "fewer diameters first")
	assert.True(t, better(few, many), "then fewer bars")
	assert.True(t, better(smaller, few), "then the smaller bar")
	assert.False(t, better(few, few))

	less := Arrangement{Groups: []BarGroup{{DiaMM: 12, Count: 9}}, ExcessMM2: 10}
	assert.True(t, better(less, few), "excess area dominates")
}

func TestDevelopmentLength(t *testing.T) {
	for _, tc := range []struct {
		name string
		dia  int
		fck  float64
		fy   float64
		bond section.BondCondition
		zone Zone
		ld   float64
		lap  float64
	}{
		{"deformed tension", 16, 20, 415, section.BondGood, ZoneTension, 752.19, 752.19},
		{"deformed compression", 12, 20, 415, section.BondGood, ZoneCompression, 451.31, 451.31},
		{"poor bond", 16, 20, 415, section.BondPoor, ZoneTension, 1074.55, 1074.55},
		{"plain bars", 16, 20, 250, section.BondGood, ZoneTension, 725.0, 725.0},
		{"30 diameters govern the lap", 20, 40, 250, section.BondGood, ZoneTension, 572.37, 600},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.ld, DevelopmentLength(tc.dia, tc.fck, tc.fy, tc.bond, tc.zone), 0.01)
			assert.InDelta(t, tc.lap, LapLength(tc.dia, tc.fck, tc.fy, tc.bond, tc.zone), 0.01)
		})
	}
}

func detailInput() Input {
	return Input{
		Geometry: section.Geometry{
			WidthMM:          300,
			DepthMM:          500,
			EffectiveDepthMM: 450,
			CoverMM:          25,
		},
		Materials:        section.Materials{FckNmm2: 20, FyNmm2: 415},
		Stirrup:          section.Stirrup{DiaMM: 8, Legs: 2},
		Bond:             section.BondGood,
		AstRequiredMM2:   1114.67,
		StirrupSpacingMM: 300,
	}
}

func TestDetail(t *testing.T) {
	t.Run("hanger bars", func(t *testing.T) {
		r := Detail(detailInput())

		require.True(t, r.IsSafe(), "errors: %v", r.Errors)
		assert.Equal(t, "6-16", r.Bottom.String())
		assert.InDelta(t, 1206.37, r.AstProvidedMM2, 0.01)
		assert.InDelta(t, 27.6, r.ClearSpacingMM, 1e-9)
		assert.Equal(t, 25.0, r.MinClearSpacingMM)
		assert.InDelta(t, 752.19, r.DevelopmentLengthMM, 0.01)
		assert.Equal(t, "2-12", r.Top.String())
		assert.True(t, r.Errors.HasCode(diagnostics.CodeDetailingHangerBar))
		assert.Equal(t, StirrupSet{DiaMM: 8, Legs: 2, SpacingMM: 300}, r.Stirrups)
	})

	t.Run("compression steel", func(t *testing.T) {
		in := detailInput()
		in.AstRequiredMM2 = 1862.61
		in.AscRequiredMM2 = 602.79
		r := Detail(in)

		require.True(t, r.IsSafe(), "errors: %v", r.Errors)
		assert.GreaterOrEqual(t, r.AstProvidedMM2, 1862.61)
		assert.GreaterOrEqual(t, r.AscProvidedMM2, 602.79)
		assert.False(t, r.Errors.HasCode(diagnostics.CodeDetailingHangerBar))
		assert.Greater(t, r.TopDevelopmentLengthMM, 0.0)
	})

	t.Run("invalid input", func(t *testing.T) {
		in := detailInput()
		in.AstRequiredMM2 = 0
		in.Stirrup.DiaMM = 7
		r := Detail(in)
		assert.False(t, r.IsSafe())
		assert.True(t, r.Errors.HasCode(diagnostics.CodeInputNonPositive))
		assert.True(t, r.Errors.HasCode(diagnostics.CodeInputStirrup))
	})

	t.Run("cover leaves no room", func(t *testing.T) {
		in := detailInput()
		in.Geometry.WidthMM = 60
		r := Detail(in)
		assert.True(t, r.Errors.HasCode(diagnostics.CodeDetailingSpacing))
	})
}
