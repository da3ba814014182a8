package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/bbs"
	"github.com/alexiusacademia/isrcb/internal/export"
	"github.com/spf13/cobra"
)

var (
	bbsInput  string
	bbsXLSX   string
	bbsBentUp int
)

var bbsCmd = &cobra.Command{
	Use:   "bbs",
	Short: "Print bar-bending schedules for the beams in an input file",
	Long: `Design every beam in the input file and print its bar-bending
schedule: bar marks, IS 2502 shape codes, cut lengths and weights.
Cut lengths are rounded to 10 mm and weights to 0.01 kg.

Beams need span_mm to be scheduled.

Examples:
  isrcb bbs --input beams.yaml
  isrcb bbs --input beams.yaml --bent-up 2 --xlsx bbs.xlsx`,
	RunE: runBBS,
}

func init() {
	rootCmd.AddCommand(bbsCmd)

	bbsCmd.Flags().StringVarP(&bbsInput, "input", "i", "", "Beam input file (.yaml, .yml or .json) [required]")
	bbsCmd.Flags().StringVar(&bbsXLSX, "xlsx", "", "Also write the schedules to this workbook")
	bbsCmd.Flags().IntVar(&bbsBentUp, "bent-up", 0, "Bottom bars cranked up near the supports")
	bbsCmd.MarkFlagRequired("input")
}

func runBBS(cmd *cobra.Command, args []string) error {
	beams, report, err := designFile(cmd.Context(), bbsInput, 0)
	if err != nil {
		return err
	}

	var out []*bbs.Schedule
	for i, b := range report.Beams {
		for _, c := range b.Cases {
			if c.Schedule == nil {
				continue
			}
			s := *c.Schedule
			if bbsBentUp > 0 {
				regenerated, diags := bbs.Generate(c.Detailing, bbs.Input{
					BeamID:     b.ID,
					Geometry:   beams[i].Geometry,
					SpanMM:     beams[i].SpanMM,
					BentUpBars: bbsBentUp,
				})
				if !diags.IsSafe() {
					fmt.Printf("Beam %s, case %s:\n", b.ID, c.CaseID)
					printDiagnostics(diags)
					continue
				}
				s = *regenerated
			}
			s.BeamID = b.ID + "/" + c.CaseID
			out = append(out, &s)
		}
	}
	if len(out) == 0 {
		return fmt.Errorf("no beam produced a schedule; check span_mm and the design errors")
	}

	for _, s := range out {
		printSchedule(s)
	}

	if bbsXLSX != "" {
		if err := writeFile(bbsXLSX, func(f *os.File) error {
			return export.WriteSchedules(f, out)
		}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Bar-bending schedule written to: %s\n", bbsXLSX)
	}
	return nil
}

func printSchedule(s *bbs.Schedule) {
	fmt.Printf("BAR-BENDING SCHEDULE %s:\n", s.BeamID)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mark\tLocation\tShape\tDia\tNo.\tCut length\tUnit wt\tTotal wt\n")
	fmt.Fprintf(w, "  ────\t────────\t─────\t───\t───\t──────────\t───────\t────────\n")
	for _, e := range s.Entries {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%d\t%.0f mm\t%.2f kg\t%.2f kg\n",
			e.Mark, e.Location, e.Shape, e.DiaMM, e.Count, e.CutLengthMM, e.UnitWeightKg, e.TotalWeightKg)
	}
	fmt.Fprintf(w, "  \t\t\t\t\t\tTotal\t%.2f kg\n", s.TotalWeightKg)
	w.Flush()
	fmt.Println()
}
