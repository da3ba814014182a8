package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
)

func TestXuMaxRatioExactLookup(t *testing.T) {
	cases := []struct {
		fy   float64
		want float64
	}{
		{250, 0.53},
		{415, 0.48},
		{500, 0.46},
	}
	for _, tc := range cases {
		k, err := XuMaxRatio(tc.fy)
		require.NoError(t, err)
		assert.Equal(t, tc.want, k)
	}

	_, err := XuMaxRatio(450)
	require.ErrorIs(t, err, ErrUnsupportedGrade)
}

func TestDesignShearStrengthTablePoints(t *testing.T) {
	t.Run("M20 boundaries are bit-exact", func(t *testing.T) {
		tc, diags := DesignShearStrength(20, 0.15)
		assert.Equal(t, 0.28, tc)
		assert.Empty(t, diags)

		tc, diags = DesignShearStrength(20, 3.0)
		assert.Equal(t, 0.82, tc)
		assert.Empty(t, diags)
	})

	t.Run("every tabulated row is returned exactly", func(t *testing.T) {
		for c, grade := range shearGrades {
			for r, pt := range shearPt {
				got, _ := DesignShearStrength(grade, pt)
				assert.Equal(t, shearStrength[c][r], got, "M%g pt=%g", grade, pt)
			}
		}
	})

	t.Run("pt below and above the table clamps", func(t *testing.T) {
		low, diags := DesignShearStrength(20, 0.10)
		assert.Equal(t, 0.28, low)
		assert.True(t, diags.HasCode(diagnostics.CodeTablePtClamped))

		high, diags := DesignShearStrength(20, 5.0)
		assert.Equal(t, 0.82, high)
		assert.True(t, diags.HasCode(diagnostics.CodeTablePtClamped))
		assert.True(t, diags.IsSafe())
	})
}

func TestDesignShearStrengthInterpolation(t *testing.T) {
	// midway between pt=0.50 (0.48) and 0.75 (0.56) for M20
	tc, _ := DesignShearStrength(20, 0.625)
	assert.InDelta(t, 0.52, tc, 1e-12)

	// monotonically non-decreasing in pt for every column
	for _, grade := range shearGrades {
		prev := 0.0
		for pt := PtMin; pt <= PtMax; pt += 0.01 {
			got, _ := DesignShearStrength(grade, pt)
			assert.GreaterOrEqual(t, got, prev, "M%g pt=%.2f", grade, pt)
			prev = got
		}
	}
}

func TestGradeColumnSelection(t *testing.T) {
	t.Run("nearest lower column, never interpolated", func(t *testing.T) {
		m20, _ := DesignShearStrength(20, 1.0)
		m22, diags := DesignShearStrength(22, 1.0)
		assert.Equal(t, m20, m22)
		assert.Empty(t, diags)
	})

	t.Run("grades above M40 clamp with a warning", func(t *testing.T) {
		tc, diags := DesignShearStrength(50, 1.0)
		assert.Equal(t, 0.68, tc)
		require.Len(t, diags, 1)
		assert.Equal(t, diagnostics.CodeTableGradeClamped, diags[0].Code)
		assert.Equal(t, diagnostics.SeverityWarning, diags[0].Severity)

		tmax, diags := MaxShearStress(60)
		assert.Equal(t, 4.0, tmax)
		assert.True(t, diags.HasCode(diagnostics.CodeTableGradeClamped))
	})

	t.Run("grades below M15 clamp with a warning", func(t *testing.T) {
		tmax, diags := MaxShearStress(10)
		assert.Equal(t, 2.5, tmax)
		assert.True(t, diags.HasCode(diagnostics.CodeTableGradeClamped))
	})
}

func TestMaxShearStressTable(t *testing.T) {
	want := map[float64]float64{15: 2.5, 20: 2.8, 25: 3.1, 30: 3.5, 35: 3.7, 40: 4.0}
	for fck, v := range want {
		got, diags := MaxShearStress(fck)
		assert.Equal(t, v, got)
		assert.Empty(t, diags)
	}
}

func TestCompressionSteelStress(t *testing.T) {
	fsc, err := CompressionSteelStress(415, 0.10)
	require.NoError(t, err)
	assert.Equal(t, 353.0, fsc)

	fsc, err = CompressionSteelStress(500, 0.125)
	require.NoError(t, err)
	assert.InDelta(t, 403.5, fsc, 1e-9)

	fsc, err = CompressionSteelStress(415, 0.02)
	require.NoError(t, err)
	assert.Equal(t, 355.0, fsc)

	_, err = CompressionSteelStress(415, 0.25)
	assert.Error(t, err)

	_, err = CompressionSteelStress(550, 0.1)
	assert.ErrorIs(t, err, ErrUnsupportedGrade)
}

func TestInterpolatePanicsOnMalformedTable(t *testing.T) {
	assert.Panics(t, func() { Interpolate([]float64{1, 2}, []float64{1}, 1.5) })
}

func TestBondAndModularRatio(t *testing.T) {
	assert.Equal(t, 1.2, BondStress(20))
	assert.Equal(t, 1.9, BondStress(60))
	assert.InDelta(t, 13.33, ModularRatio(20), 0.01)
	assert.True(t, IsDeformed(415))
	assert.False(t, IsDeformed(250))
}

func TestGoverningAction(t *testing.T) {
	mu, combo := GoverningAction(Actions{Dead: 40, Imposed: 30}, LoadCombinations)
	assert.InDelta(t, 105.0, mu, 1e-9)
	assert.Equal(t, "1", combo.ID)

	mu, combo = GoverningAction(Actions{Dead: 10, Earthquake: 80}, LoadCombinations)
	assert.InDelta(t, 135.0, mu, 1e-9)
	assert.Equal(t, "5a", combo.ID)
}
