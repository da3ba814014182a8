package is456

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
)

// Table 19 bounds for the tension steel percentage.
const (
	PtMin = 0.15
	PtMax = 3.0
)

// shearGrades are the Table 19/20 columns. M40 and above share a column.
var shearGrades = []float64{15, 20, 25, 30, 35, 40}

// shearPt are the Table 19 rows (100 As / b d).
var shearPt = []float64{0.15, 0.25, 0.50, 0.75, 1.00, 1.25, 1.50, 1.75, 2.00, 2.25, 2.50, 2.75, 3.00}

// shearStrength[column][row] is τc (N/mm²), IS 456 Table 19.
var shearStrength = [][]float64{
	{0.28, 0.35, 0.46, 0.54, 0.60, 0.64, 0.68, 0.71, 0.71, 0.71, 0.71, 0.71, 0.71}, // M15
	{0.28, 0.36, 0.48, 0.56, 0.62, 0.67, 0.72, 0.75, 0.79, 0.81, 0.82, 0.82, 0.82}, // M20
	{0.29, 0.36, 0.49, 0.57, 0.64, 0.70, 0.74, 0.78, 0.82, 0.85, 0.88, 0.90, 0.92}, // M25
	{0.29, 0.37, 0.50, 0.59, 0.66, 0.71, 0.76, 0.80, 0.84, 0.88, 0.91, 0.94, 0.96}, // M30
	{0.29, 0.37, 0.50, 0.59, 0.67, 0.73, 0.78, 0.82, 0.86, 0.90, 0.93, 0.96, 0.99}, // M35
	{0.30, 0.38, 0.51, 0.60, 0.68, 0.74, 0.79, 0.84, 0.88, 0.92, 0.95, 0.98, 1.01}, // M40
}

// maxShearStress is τc,max (N/mm²), IS 456 Table 20.
var maxShearStress = []float64{2.5, 2.8, 3.1, 3.5, 3.7, 4.0}

// DesignShearStrength returns τc for the concrete grade and tension steel
// percentage pt. The grade column is the nearest lower tabulated grade and
// is never interpolated; pt is clamped to [PtMin, PtMax] and interpolated
// linearly between rows.
func DesignShearStrength(fck, pt float64) (float64, diagnostics.List) {
	var diags diagnostics.List
	col, clamped := gradeColumn(shearGrades, fck)
	if clamped {
		diags = append(diags, gradeClampedWarning("Table 19", fck, shearGrades[col]))
	}
	tc, ptClamped := Interpolate(shearPt, shearStrength[col], pt)
	if ptClamped {
		diags = append(diags, diagnostics.NewInfo(diagnostics.CodeTablePtClamped,
			fmt.Sprintf("pt=%.3f%% is outside Table 19 [%.2f, %.2f]; the nearest bound is used", pt, PtMin, PtMax),
			diagnostics.WithField("pt"),
			diagnostics.WithClause("Table 19")))
	}
	return tc, diags
}

// MaxShearStress returns τc,max for the concrete grade (Table 20).
func MaxShearStress(fck float64) (float64, diagnostics.List) {
	var diags diagnostics.List
	col, clamped := gradeColumn(shearGrades, fck)
	if clamped {
		diags = append(diags, gradeClampedWarning("Table 20", fck, shearGrades[col]))
	}
	return maxShearStress[col], diags
}

func gradeClampedWarning(table string, fck, used float64) diagnostics.DesignError {
	return diagnostics.NewWarning(diagnostics.CodeTableGradeClamped,
		fmt.Sprintf("fck=%g is outside the %s range [15, 40]; column M%g is used", fck, table, used),
		diagnostics.WithField("fck_nmm2"),
		diagnostics.WithHint("result is conservative for grades above M40"),
		diagnostics.WithClause(table))
}

// SP:16 Table F: stress in compression steel fsc (N/mm²) against d'/d.
var (
	fscRatios = []float64{0.05, 0.10, 0.15, 0.20}
	fscTable  = map[float64][]float64{
		250: {217.5, 217.5, 217.5, 217.5},
		415: {355, 353, 342, 329},
		500: {424, 412, 395, 370},
	}
)

// MaxDPrimeRatio is the largest d'/d for which compression steel is
// considered effective.
const MaxDPrimeRatio = 0.20

// CompressionSteelStress returns fsc for the steel grade at d'/d. Ratios
// below the first row use the first row; ratios above MaxDPrimeRatio are an
// error.
func CompressionSteelStress(fy, dPrimeRatio float64) (float64, error) {
	row, ok := fscTable[fy]
	if !ok {
		return 0, fmt.Errorf("fsc for fy=%g: %w", fy, ErrUnsupportedGrade)
	}
	if dPrimeRatio > MaxDPrimeRatio {
		return 0, fmt.Errorf("d'/d=%.3f exceeds %.2f", dPrimeRatio, MaxDPrimeRatio)
	}
	fsc, _ := Interpolate(fscRatios, row, dPrimeRatio)
	return fsc, nil
}

// ShearGrades returns the Table 19/20 grade columns.
func ShearGrades() []float64 { return append([]float64(nil), shearGrades...) }

// ShearPtRows returns the Table 19 pt rows.
func ShearPtRows() []float64 { return append([]float64(nil), shearPt...) }
