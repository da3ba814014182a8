package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/detailing"
	"github.com/alexiusacademia/isrcb/internal/section"
	"github.com/spf13/cobra"
)

var (
	detailSection sectionFlags
	detailAst     float64
	detailAsc     float64
	detailSpacing float64
	detailDia     int
	detailLegs    int
	detailBond    string
	detailMaxBars int
)

var beamDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Select bars and anchorage lengths for required steel areas",
	Long: `Turn required steel areas into a single-layer bar arrangement and
compute development and lap lengths.

Bars are chosen from 8, 10, 12, 16, 20, 25 and 32 mm. One diameter is
preferred; two diameters are used only when no single size satisfies the
clear spacing rule (Cl 26.3.2). Development length follows Cl 26.2.1.

Examples:
  isrcb beam detail -b 300 -D 500 -d 450 --ast 1115
  isrcb beam detail -b 300 -D 500 -d 450 --ast 1863 --asc 603 --bond poor`,
	RunE: runBeamDetail,
}

func init() {
	beamCmd.AddCommand(beamDetailCmd)
	detailSection.bind(beamDetailCmd)

	beamDetailCmd.Flags().Float64Var(&detailAst, "ast", 0, "Required tension steel (mm²) [required]")
	beamDetailCmd.Flags().Float64Var(&detailAsc, "asc", 0, "Required compression steel (mm²)")
	beamDetailCmd.Flags().Float64Var(&detailSpacing, "spacing", 0, "Stirrup spacing from the shear design (mm)")
	beamDetailCmd.Flags().IntVar(&detailDia, "stirrup-dia", 8, "Stirrup diameter (mm)")
	beamDetailCmd.Flags().IntVar(&detailLegs, "legs", 2, "Number of stirrup legs")
	beamDetailCmd.Flags().StringVar(&detailBond, "bond", string(section.BondGood), "Bond condition: good or poor")
	beamDetailCmd.Flags().IntVar(&detailMaxBars, "max-bars", detailing.DefaultMaxBars, "Maximum bars in one layer")
	beamDetailCmd.MarkFlagRequired("ast")
}

func runBeamDetail(cmd *cobra.Command, args []string) error {
	result := detailing.Detail(detailing.Input{
		Geometry:         detailSection.geometry(),
		Materials:        detailSection.materials(),
		Stirrup:          section.Stirrup{DiaMM: detailDia, Legs: detailLegs},
		Bond:             section.BondCondition(detailBond),
		AstRequiredMM2:   detailAst,
		AscRequiredMM2:   detailAsc,
		StirrupSpacingMM: detailSpacing,
		MaxBarsPerLayer:  detailMaxBars,
	})

	printHeader("REINFORCEMENT DETAILING - IS 456:2000")
	printInputSummary(&detailSection)

	if len(result.Bottom.Groups) == 0 {
		return failed("detailing", result.Errors)
	}

	fmt.Println("BARS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tBars\tRequired\tProvided\n")
	fmt.Fprintf(w, "  ─────\t────\t────────\t────────\n")
	fmt.Fprintf(w, "  Bottom\t%s\t%.2f mm²\t%.2f mm²\n", result.Bottom, detailAst, result.AstProvidedMM2)
	fmt.Fprintf(w, "  Top\t%s\t%.2f mm²\t%.2f mm²\n", result.Top, detailAsc, result.AscProvidedMM2)
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Clear spacing:\t%.1f mm (min %.1f mm)\n", result.ClearSpacingMM, result.MinClearSpacingMM)
	if detailSpacing > 0 {
		fmt.Fprintf(w, "  Stirrups:\t%d-legged %d mm @ %.0f mm\n", result.Stirrups.Legs, result.Stirrups.DiaMM, result.Stirrups.SpacingMM)
	}
	fmt.Fprintf(w, "  Ld bottom (tension):\t%.0f mm\n", result.DevelopmentLengthMM)
	fmt.Fprintf(w, "  Lap bottom:\t%.0f mm\n", result.LapLengthMM)
	fmt.Fprintf(w, "  Ld top (compression):\t%.0f mm\n", result.TopDevelopmentLengthMM)
	fmt.Fprintf(w, "  Lap top:\t%.0f mm\n", result.TopLapLengthMM)
	w.Flush()
	fmt.Println()

	printDiagnostics(result.Errors)
	if !result.IsSafe() {
		return fmt.Errorf("detailing: %d error(s)", len(result.Errors.Errors()))
	}
	return nil
}
