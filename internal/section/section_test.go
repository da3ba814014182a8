package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
)

func validBeam() BeamInput {
	return BeamInput{
		ID: "B1",
		Geometry: Geometry{
			WidthMM:          300,
			DepthMM:          500,
			EffectiveDepthMM: 450,
			CoverMM:          25,
		},
		Materials: Materials{FckNmm2: 20, FyNmm2: 415},
		Stirrup:   Stirrup{DiaMM: 8, Legs: 2},
		Bond:      BondGood,
		LoadCases: []LoadCase{{CaseID: "LC1", MuKNm: 150, VuKN: 100}},
	}
}

func codes(l diagnostics.List) []string {
	out := make([]string, 0, len(l))
	for _, e := range l {
		out = append(out, e.Code)
	}
	return out
}

func TestValidateAcceptsValidBeam(t *testing.T) {
	assert.Empty(t, Validate(validBeam()))
	assert.Empty(t, ValidateCase(validBeam().LoadCases[0]))
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BeamInput)
		code   string
		field  string
	}{
		{"missing width", func(b *BeamInput) { b.Geometry.WidthMM = 0 }, diagnostics.CodeInputMissing, "geometry.b_mm"},
		{"negative depth", func(b *BeamInput) { b.Geometry.DepthMM = -10 }, diagnostics.CodeInputNonPositive, "geometry.D_mm"},
		{"d not less than D", func(b *BeamInput) { b.Geometry.EffectiveDepthMM = 500 }, diagnostics.CodeInputDepthOrder, "geometry.d_mm"},
		{"unsupported fck", func(b *BeamInput) { b.Materials.FckNmm2 = 22 }, diagnostics.CodeInputUnsupportedFck, "materials.fck_nmm2"},
		{"unsupported fy", func(b *BeamInput) { b.Materials.FyNmm2 = 550 }, diagnostics.CodeInputUnsupportedFy, "materials.fy_nmm2"},
		{"single leg stirrup", func(b *BeamInput) { b.Stirrup.Legs = 1 }, diagnostics.CodeInputStirrup, "stirrup.legs"},
		{"odd stirrup size", func(b *BeamInput) { b.Stirrup.DiaMM = 9 }, diagnostics.CodeInputStirrup, "stirrup.dia_mm"},
		{"missing bond", func(b *BeamInput) { b.Bond = "" }, diagnostics.CodeInputMissing, "bond"},
		{"unknown bond", func(b *BeamInput) { b.Bond = "average" }, diagnostics.CodeInputInvalid, "bond"},
		{"no load cases", func(b *BeamInput) { b.LoadCases = nil }, diagnostics.CodeInputMissing, "load_cases"},
		{"unknown kind", func(b *BeamInput) { b.Geometry.Kind = "I_BEAM" }, diagnostics.CodeInputUnknownKind, "geometry.kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBeam()
			tt.mutate(&b)
			diags := Validate(b)
			require.NotEmpty(t, diags)
			assert.False(t, diags.IsSafe())
			require.Contains(t, codes(diags), tt.code)
			for _, d := range diags {
				if d.Code == tt.code {
					assert.Equal(t, tt.field, d.Field)
				}
			}
		})
	}
}

func TestValidateFlangedRules(t *testing.T) {
	b := validBeam()
	b.Geometry.Kind = KindTBeam

	diags := Validate(b)
	assert.Equal(t, []string{diagnostics.CodeInputMissing, diagnostics.CodeInputMissing}, codes(diags))

	b.Geometry.FlangeWidthMM = 200
	b.Geometry.FlangeThicknessMM = 450
	diags = Validate(b)
	assert.Equal(t, []string{diagnostics.CodeInputFlangeWidth, diagnostics.CodeInputFlangeThickness}, codes(diags))

	b.Geometry.FlangeWidthMM = 1200
	b.Geometry.FlangeThicknessMM = 120
	assert.Empty(t, Validate(b))
}

func TestValidateDoublyNeedsCompressionCover(t *testing.T) {
	b := validBeam()
	asc := 0.0
	b.CompressionSteelMM2 = &asc

	assert.True(t, Validate(b).HasCode(diagnostics.CodeInputMissing))

	b.Geometry.CompressionCoverMM = 460
	assert.True(t, Validate(b).HasCode(diagnostics.CodeInputCompressionCover))

	b.Geometry.CompressionCoverMM = 50
	assert.Empty(t, Validate(b))
}

func TestValidateCaseRejectsNegativeLoads(t *testing.T) {
	diags := ValidateCase(LoadCase{CaseID: "LC1", MuKNm: -5, VuKN: 10})
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.CodeInputNegativeLoad, diags[0].Code)
	assert.Equal(t, "mu_knm", diags[0].Field)

	diags = ValidateCase(LoadCase{MuKNm: 5})
	assert.Equal(t, []string{diagnostics.CodeInputMissing}, codes(diags))
}

func TestValidateDuplicateCaseIDs(t *testing.T) {
	b := validBeam()
	b.LoadCases = append(b.LoadCases, LoadCase{CaseID: "LC1", MuKNm: 10})
	assert.True(t, Validate(b).HasCode(diagnostics.CodeInputDuplicateCase))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlDoc := `beams:
  - id: B1
    geometry: {b_mm: 300, D_mm: 500, d_mm: 450, cover_mm: 25}
    materials: {fck_nmm2: 20, fy_nmm2: 415}
    stirrup: {dia_mm: 8, legs: 2}
    bond: good
    load_cases:
      - {case_id: LC1, mu_knm: 150, vu_kn: 100}
`
	yamlPath := filepath.Join(dir, "beams.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0o644))

	beams, err := LoadFromFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, beams, 1)
	assert.Equal(t, validBeam(), beams[0])

	jsonDoc := `{"beams":[{"id":"B2","geometry":{"kind":"T_BEAM","b_mm":250,"D_mm":450,"d_mm":400,"cover_mm":25,"bf_mm":1000,"Df_mm":100},
	"materials":{"fck_nmm2":25,"fy_nmm2":500},"stirrup":{"dia_mm":8,"legs":2},"bond":"poor",
	"load_cases":[{"case_id":"LC1","mu_knm":120,"vu_kn":80,"service_mu_knm":80}]}]}`
	jsonPath := filepath.Join(dir, "beams.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o644))

	beams, err = LoadFromFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, beams, 1)
	assert.Equal(t, KindTBeam, beams[0].Geometry.Kind)
	require.NotNil(t, beams[0].LoadCases[0].ServiceMomentKNm)
	assert.Equal(t, 80.0, *beams[0].LoadCases[0].ServiceMomentKNm)

	emptyPath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, []byte(`{"beams":[]}`), 0o644))
	_, err = LoadFromFile(emptyPath)
	assert.Error(t, err)
}
