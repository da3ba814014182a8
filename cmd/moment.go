package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/spf13/cobra"
)

var (
	// Unfactored moments (kN-m)
	momentDead       float64
	momentImposed    float64
	momentWind       float64
	momentEarthquake float64

	// Options
	showAll     bool
	gravityOnly bool
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate factored moment using IS 456 load combinations",
	Long: `Calculate the factored moment (Mu) for the limit state of collapse
using the partial safety factors of IS 456:2000 Table 18.

Provide unfactored moments from different load types and this command will
compute the factored moments for all applicable combinations. Lateral
loads are reversible, so each lateral combination is evaluated with both
signs.

Load Types:
  DL - Dead load
  IL - Imposed load
  WL - Wind load
  EL - Earthquake load

Examples:
  # Gravity loads (dead + imposed)
  isrcb moment --dead 50 --imposed 30

  # With wind load
  isrcb moment --dead 50 --imposed 30 --wind 20

  # Show all combinations
  isrcb moment --dead 50 --imposed 30 --wind 20 --all`,
	RunE: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	// Load moment flags
	momentCmd.Flags().Float64Var(&momentDead, "dead", 0, "Moment due to dead load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentImposed, "imposed", "l", 0, "Moment due to imposed load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "w", 0, "Moment due to wind load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "e", 0, "Moment due to earthquake load (kN-m)")

	// Options
	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVarP(&gravityOnly, "gravity", "g", false, "Use the gravity combination 1.5(DL + IL) only")
}

func runMoment(cmd *cobra.Command, args []string) error {
	moments := is456.Actions{
		Dead:       momentDead,
		Imposed:    momentImposed,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
	}

	// Check if any moment is provided
	if moments == (is456.Actions{}) {
		return fmt.Errorf("provide at least one unfactored moment; see 'isrcb moment --help'")
	}

	// Select which combinations to use
	combinations := is456.LoadCombinations
	if gravityOnly {
		combinations = is456.GravityCombinations
	}

	printHeader("IS 456:2000 FACTORED MOMENT CALCULATION")

	// Print input moments
	fmt.Println("UNFACTORED MOMENTS (kN-m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range []struct {
		label string
		v     float64
	}{
		{"Dead Load (DL)", moments.Dead},
		{"Imposed Load (IL)", moments.Imposed},
		{"Wind Load (WL)", moments.Wind},
		{"Earthquake Load (EL)", moments.Earthquake},
	} {
		if row.v != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", row.label, row.v)
		}
	}
	w.Flush()
	fmt.Println()

	// Calculate governing moment
	maxMu, governingCombo := is456.GoverningAction(moments, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS (IS 456:2000 Table 18):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMu (kN-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(moments), marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED MOMENT (Mu) = %.2f kN-m  \n", maxMu)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
