package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/section"
	"github.com/alexiusacademia/isrcb/internal/shear"
	"github.com/spf13/cobra"
)

var (
	shearSection sectionFlags
	shearVu      float64
	shearAst     float64
	shearDia     int
	shearLegs    int
)

var beamShearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Design vertical stirrups for a factored shear",
	Long: `Check the section in shear and size the stirrup spacing.

The design follows IS 456:2000:
  - Clause 40.1: Nominal shear stress τv = Vu / (b d)
  - Table 19/20: Design shear strength τc and maximum τc,max
  - Clause 40.4: Vertical stirrups sv = 0.87 fy Asv d / Vus
  - Clause 26.5.1.5/6: Maximum spacing and minimum shear reinforcement

Examples:
  isrcb beam shear -b 300 -D 500 -d 450 --fck 20 --vu 100 --ast 1206`,
	RunE: runBeamShear,
}

func init() {
	beamCmd.AddCommand(beamShearCmd)
	shearSection.bind(beamShearCmd)

	beamShearCmd.Flags().Float64Var(&shearVu, "vu", 0, "Factored shear Vu (kN) [required]")
	beamShearCmd.Flags().Float64Var(&shearAst, "ast", 0, "Tension steel for pt (mm²) [required]")
	beamShearCmd.Flags().IntVar(&shearDia, "stirrup-dia", 8, "Stirrup diameter (mm)")
	beamShearCmd.Flags().IntVar(&shearLegs, "legs", 2, "Number of stirrup legs")
	beamShearCmd.MarkFlagRequired("vu")
	beamShearCmd.MarkFlagRequired("ast")
}

func runBeamShear(cmd *cobra.Command, args []string) error {
	g, m := shearSection.geometry(), shearSection.materials()
	result := shear.Design(shear.Input{
		Geometry:       g,
		Materials:      m,
		VuKN:           shearVu,
		AstProvidedMM2: shearAst,
		Stirrup:        section.Stirrup{DiaMM: shearDia, Legs: shearLegs},
	})
	logger.Debug("shear designed", "spacing_mm", result.SpacingProvided, "safe", result.IsSafe())

	printHeader("SHEAR DESIGN - IS 456:2000")
	printInputSummary(&shearSection)

	fmt.Println("SHEAR STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vu:\t%.2f kN\n", result.VuKN)
	fmt.Fprintf(w, "  τv:\t%.3f N/mm²\n", result.TauV)
	fmt.Fprintf(w, "  pt:\t%.3f %%\n", result.Pt)
	fmt.Fprintf(w, "  τc (Table 19):\t%.3f N/mm²\n", result.TauC)
	fmt.Fprintf(w, "  τc,max (Table 20):\t%.2f N/mm²\n", result.TauMax)
	fmt.Fprintf(w, "  Vc = τc b d:\t%.2f kN\n", result.VcKN)
	w.Flush()
	fmt.Println()

	if !result.IsSafe() {
		return failed("shear design", result.Errors)
	}

	fmt.Println("STIRRUPS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Asv (%d legs of %d mm):\t%.2f mm²\n", shearLegs, shearDia, result.Asv)
	if result.MinimumOnly {
		fmt.Fprintf(w, "  Vus:\t- (minimum reinforcement governs)\n")
	} else {
		fmt.Fprintf(w, "  Vus:\t%.2f kN\n", result.VusKN)
		fmt.Fprintf(w, "  sv (strength):\t%.1f mm\n", result.SpacingRequired)
	}
	fmt.Fprintf(w, "  sv (minimum steel):\t%.1f mm\n", result.SpacingMinReinf)
	fmt.Fprintf(w, "  sv (maximum):\t%.1f mm\n", result.SpacingMax)
	w.Flush()
	fmt.Println()

	fmt.Printf("  PROVIDE %d-legged %d mm stirrups @ %.0f mm c/c\n", shearLegs, shearDia, result.SpacingProvided)
	fmt.Printf("  Shear capacity = %.2f kN ≥ Vu = %.2f kN ✓\n\n", shear.Capacity(result, g.EffectiveDepthMM, result.SpacingProvided), shearVu)

	printDiagnostics(result.Errors)
	return nil
}
