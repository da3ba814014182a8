package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/detailing"
	"github.com/alexiusacademia/isrcb/internal/diagram"
	"github.com/alexiusacademia/isrcb/internal/flexure"
	"github.com/spf13/cobra"
)

var (
	// Design inputs
	designSection sectionFlags
	designMu      float64
	designAsc     float64
	designDoubly  bool

	// Diagram options
	designShowDiagram bool
	designExportFile  string
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design flexural reinforcement for a beam section",
	Long: `Calculate the required tension reinforcement area (Ast) for a
rectangular or flanged beam given the factored moment (Mu).

The design follows IS 456:2000:
  - Clause 38.1: Limit state of collapse in flexure
  - Clause 26.5.1: Minimum and maximum tension reinforcement
  - Annex G: Moments of resistance of rectangular and T-sections

A singly reinforced request whose moment exceeds Mu,lim fails; pass
--doubly (and optionally --asc) to design compression steel.

Examples:
  # Design a 300x500mm beam with Mu=150 kN-m
  isrcb beam design -b 300 -D 500 -d 450 --fck 20 --fy 415 --mu 150

  # Doubly reinforced, compression steel sized by the engine
  isrcb beam design -b 300 -D 500 -d 450 --d-dash 50 --mu 250 --doubly

  # T-beam
  isrcb beam design --kind T_BEAM -b 300 -D 500 -d 450 --bf 1000 --df 100 --mu 300`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)
	designSection.bind(beamDesignCmd)

	// Loading flag
	beamDesignCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	beamDesignCmd.MarkFlagRequired("mu")

	// Compression steel
	beamDesignCmd.Flags().BoolVar(&designDoubly, "doubly", false, "Design as doubly reinforced")
	beamDesignCmd.Flags().Float64Var(&designAsc, "asc", 0, "Proposed compression steel Asc (mm²), 0 sizes it")

	// Diagram options
	beamDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII stress-strain diagram")
	beamDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	if diags := designSection.validate(); !diags.IsSafe() {
		return failed("invalid section", diags)
	}

	g, m := designSection.geometry(), designSection.materials()
	in := flexure.Input{Geometry: g, Materials: m, MuKNm: designMu}
	if designDoubly || cmd.Flags().Changed("asc") {
		in.CompressionSteelMM2 = &designAsc
	}
	result := flexure.Design(in)
	logger.Debug("flexure designed", "method", result.Method, "ast_mm2", result.AstRequired, "safe", result.IsSafe())

	printHeader(fmt.Sprintf("%s BEAM DESIGN - IS 456:2000", result.Method))
	printInputSummary(&designSection)

	// Limits
	fmt.Println("LIMITS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  xu,max:\t%.2f mm\n", result.XuMax)
	fmt.Fprintf(w, "  Mu,lim:\t%.2f kN-m\n", result.MuLimKNm)
	fmt.Fprintf(w, "  Ast,min:\t%.2f mm²\n", result.AstMin)
	fmt.Fprintf(w, "  Ast,max:\t%.2f mm²\n", result.AstMax)
	w.Flush()
	fmt.Println()

	// Design result
	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if !result.IsSafe() {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT ADEQUATE                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		return failed("flexure design", result.Errors)
	}

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Neutral axis (xu):\t%.2f mm\n", result.Xu)
	fmt.Fprintf(w, "  Classification:\t%s\n", result.Classification)
	fmt.Fprintf(w, "  Ast (calculated):\t%.2f mm²\n", result.AstCalculated)
	if result.Method == flexure.MethodDoubly {
		fmt.Fprintf(w, "  fsc:\t%.1f N/mm²\n", result.Fsc)
		fmt.Fprintf(w, "  Asc required:\t%.2f mm²\n", result.AscRequired)
		fmt.Fprintf(w, "  Asc provided:\t%.2f mm²\n", result.AscProvided)
	}
	w.Flush()
	fmt.Println()
	fmt.Println(diagram.DrawSummaryBox("REQUIRED REINFORCEMENT", []string{
		fmt.Sprintf("Ast = %.2f mm²", result.AstRequired),
		fmt.Sprintf("Utilization = %.3f", result.Utilization),
	}))

	printBarSuggestions(result.AstRequired, detailing.ClearWidth(g, 8))
	printDiagnostics(result.Errors)

	if !designShowDiagram && designExportFile == "" {
		return nil
	}
	data, err := diagram.FromFlexure(g, m, result)
	if err != nil {
		return err
	}

	// Show diagram if requested
	if designShowDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(data))
		fmt.Println(diagram.DrawStrainDiagram(data))
		fmt.Println(diagram.DrawStressBlock(data))
	}

	// Export diagram if requested
	if designExportFile != "" {
		if err := diagram.ExportSectionDiagram(data, designExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", designExportFile)
	}
	return nil
}

// printBarSuggestions lists the single-size arrangements that fit in one
// layer, best first.
func printBarSuggestions(astRequired, clearWidth float64) {
	fmt.Println("SUGGESTED BAR COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	single, _ := detailing.Candidates(astRequired, clearWidth, detailing.DefaultMaxBars)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bars\tAst Provided\tRatio\tClear Spacing\n")
	fmt.Fprintf(w, "  ────\t────────────\t─────\t─────────────\n")
	for _, a := range single {
		if !a.Fits() {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.2f mm²\t%.2f\t%.1f mm\n", a, a.AreaMM2, a.AreaMM2/astRequired, a.ClearSpacingMM)
	}
	w.Flush()
	fmt.Println()
}
