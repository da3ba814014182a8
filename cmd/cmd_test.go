package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const beamsYAML = `beams:
  - id: B1
    geometry: {b_mm: 300, D_mm: 500, d_mm: 450, cover_mm: 25}
    materials: {fck_nmm2: 20, fy_nmm2: 415}
    stirrup: {dia_mm: 8, legs: 2}
    bond: good
    span_mm: 6000
    serviceability: {support: simply_supported, exposure: moderate}
    load_cases:
      - {case_id: LC1, mu_knm: 150, vu_kn: 100, service_mu_knm: 100}
  - id: B2
    geometry: {b_mm: 230, D_mm: 450, d_mm: 400, cover_mm: 25}
    materials: {fck_nmm2: 25, fy_nmm2: 500}
    stirrup: {dia_mm: 8, legs: 2}
    bond: good
    span_mm: 4000
    load_cases:
      - {case_id: LC1, mu_knm: 80, vu_kn: 60}
`

func run(t *testing.T, args ...string) error {
	t.Helper()
	dir := t.TempDir()
	rootCmd.SetArgs(append(args, "--env", filepath.Join(dir, "none.env")))
	return rootCmd.Execute()
}

func writeBeams(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestDesignCommandWritesOutputs(t *testing.T) {
	input := writeBeams(t, beamsYAML)
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "bbs.xlsx")
	pdf := filepath.Join(dir, "report.pdf")

	require.NoError(t, run(t, "design", "--input", input, "--xlsx", xlsx, "--pdf", pdf, "--workers", "2"))

	for _, path := range []string{xlsx, pdf} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestDesignCommandReportsFailure(t *testing.T) {
	failing := beamsYAML + `  - id: B3
    geometry: {b_mm: 300, D_mm: 500, d_mm: 450, cover_mm: 25}
    materials: {fck_nmm2: 20, fy_nmm2: 415}
    stirrup: {dia_mm: 8, legs: 2}
    bond: good
    load_cases:
      - {case_id: LC1, mu_knm: 400, vu_kn: 100}
`
	err := run(t, "design", "--input", writeBeams(t, failing), "--xlsx", "", "--pdf", "")
	assert.ErrorContains(t, err, "failed")
}

func TestDesignCommandMissingFile(t *testing.T) {
	err := run(t, "design", "--input", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "load beams")
}

func TestBBSCommand(t *testing.T) {
	xlsx := filepath.Join(t.TempDir(), "bbs.xlsx")
	require.NoError(t, run(t, "bbs", "--input", writeBeams(t, beamsYAML), "--bent-up", "2", "--xlsx", xlsx))
	_, err := os.Stat(xlsx)
	assert.NoError(t, err)
}

func TestSingleBeamCommands(t *testing.T) {
	section := []string{"-b", "300", "-D", "500", "-d", "450", "--fck", "20", "--fy", "415"}

	require.NoError(t, run(t, append([]string{"beam", "design", "--mu", "150", "--diagram"}, section...)...))
	require.NoError(t, run(t, append([]string{"beam", "analyze", "--ast", "1257", "--mu", "150"}, section...)...))
	require.NoError(t, run(t, append([]string{"beam", "shear", "--vu", "100", "--ast", "1206"}, section...)...))
	require.NoError(t, run(t, append([]string{"beam", "detail", "--ast", "1115"}, section...)...))

	assert.Error(t, run(t, append([]string{"beam", "analyze", "--ast", "1257", "--mu", "200"}, section...)...))
}

func TestMomentAndTables(t *testing.T) {
	assert.Error(t, run(t, "moment"))
	require.NoError(t, run(t, "moment", "--dead", "50", "--imposed", "30", "--wind", "20", "--all"))
	require.NoError(t, run(t, "tables"))
}
