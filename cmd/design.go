package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/isrcb/internal/bbs"
	"github.com/alexiusacademia/isrcb/internal/compliance"
	"github.com/alexiusacademia/isrcb/internal/export"
	"github.com/alexiusacademia/isrcb/internal/section"
	"github.com/spf13/cobra"
)

var (
	designInput   string
	designFormat  string
	designXLSX    string
	designPDF     string
	designProject string
	designWorkers int
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design every beam and load case in an input file",
	Long: `Run the full design of each beam in a YAML or JSON file: flexure,
shear, detailing, serviceability and the bar-bending schedule, for every
load case. Beams are designed in parallel; the report keeps input order.

The input file holds a "beams" list:

  beams:
    - id: B1
      geometry: {b_mm: 300, D_mm: 500, d_mm: 450, cover_mm: 25}
      materials: {fck_nmm2: 20, fy_nmm2: 415}
      stirrup: {dia_mm: 8, legs: 2}
      bond: good
      span_mm: 6000
      serviceability: {support: simply_supported, exposure: moderate}
      load_cases:
        - {case_id: LC1, mu_knm: 150, vu_kn: 100, service_mu_knm: 100}

Examples:
  isrcb design --input beams.yaml
  isrcb design --input beams.json --format json > report.json
  isrcb design --input beams.yaml --xlsx bbs.xlsx --pdf report.pdf --project "Ward block"`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&designInput, "input", "i", "", "Beam input file (.yaml, .yml or .json) [required]")
	designCmd.Flags().StringVarP(&designFormat, "format", "f", "text", "Output format: text or json")
	designCmd.Flags().StringVar(&designXLSX, "xlsx", "", "Write the bar-bending schedules to this workbook")
	designCmd.Flags().StringVar(&designPDF, "pdf", "", "Write the design report to this PDF")
	designCmd.Flags().StringVar(&designProject, "project", "", "Project name for the PDF report")
	designCmd.Flags().IntVar(&designWorkers, "workers", 0, "Parallel beams (default ISRCB_WORKERS, then one per CPU)")
	designCmd.MarkFlagRequired("input")
}

func runDesign(cmd *cobra.Command, args []string) error {
	_, report, err := designFile(cmd.Context(), designInput, designWorkers)
	if err != nil {
		return err
	}

	switch designFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	case "text":
		printReport(report)
	default:
		return fmt.Errorf("unknown format %q", designFormat)
	}

	if err := writeOutputs(report, designXLSX, designPDF); err != nil {
		return err
	}
	if !report.IsOK {
		return fmt.Errorf("one or more beams failed")
	}
	return nil
}

// designFile loads the beams and designs them on the configured workers.
func designFile(ctx context.Context, path string, workers int) ([]section.BeamInput, *compliance.Report, error) {
	beams, err := section.LoadFromFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load beams: %w", err)
	}
	if workers <= 0 {
		workers = cfg.Batch.Workers
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("designing beams", "file", path, "beams", len(beams))
	report, err := compliance.New(compliance.WithLogger(logger)).DesignAll(ctx, beams, workers)
	return beams, report, err
}

func writeOutputs(report *compliance.Report, xlsxPath, pdfPath string) error {
	if xlsxPath != "" {
		if err := writeFile(xlsxPath, func(f *os.File) error {
			return export.WriteSchedules(f, schedules(report))
		}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Bar-bending schedule written to: %s\n", xlsxPath)
	}
	if pdfPath != "" {
		meta := export.ReportMeta{
			Project: designProject,
			Author:  cfg.Report.Author,
			Date:    time.Now().Format("2006-01-02"),
		}
		if err := writeFile(pdfPath, func(f *os.File) error {
			return export.WriteReport(f, report, meta)
		}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Design report written to: %s\n", pdfPath)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// schedules collects the schedule of every case that produced one.
func schedules(report *compliance.Report) []*bbs.Schedule {
	var out []*bbs.Schedule
	for _, b := range report.Beams {
		for _, c := range b.Cases {
			if c.Schedule != nil {
				out = append(out, c.Schedule)
			}
		}
	}
	return out
}

func printReport(report *compliance.Report) {
	printHeader("BEAM DESIGN REPORT - IS 456:2000")

	for _, b := range report.Beams {
		fmt.Printf("BEAM %s: %s\n", b.ID, status(b.IsOK))
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Case\tAst req\tBottom\tTop\tStirrups\tGoverns\tUtil.\tStatus\n")
		for _, c := range b.Cases {
			ast, bottom, top, links := "-", "-", "-", "-"
			if c.Flexure != nil && c.Flexure.AstRequired > 0 {
				ast = fmt.Sprintf("%.0f", c.Flexure.AstRequired)
			}
			if d := c.Detailing; d != nil && len(d.Bottom.Groups) > 0 {
				bottom, top = d.Bottom.String(), d.Top.String()
				links = fmt.Sprintf("%d-L %d @ %.0f", d.Stirrups.Legs, d.Stirrups.DiaMM, d.Stirrups.SpacingMM)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%.3f\t%s\n",
				c.CaseID, ast, bottom, top, links, c.GoverningCheck, c.GoverningUtilization, status(c.IsOK))
		}
		w.Flush()
		fmt.Println()

		printDiagnostics(b.Errors)
		for _, c := range b.Cases {
			if !c.IsOK || len(c.Errors.Warnings()) > 0 {
				fmt.Printf("  Case %s\n", c.CaseID)
				printDiagnostics(append(c.Errors.Errors(), c.Errors.Warnings()...))
			}
		}
	}

	fmt.Printf("OVERALL: %s (%d beams)\n\n", status(report.IsOK), len(report.Beams))
}

func status(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}
