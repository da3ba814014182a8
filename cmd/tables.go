package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the IS 456 design tables used by the engines",
	Long: `Print the tabulated values the design engines look up:

  - Clause 38.1: Limiting neutral axis depth xu,max/d
  - Table 19:   Design shear strength τc (N/mm²)
  - Table 20:   Maximum shear stress τc,max (N/mm²)`,
	Run: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) {
	grades := is456.ShearGrades()

	printHeader("IS 456:2000 DESIGN TABLES")

	fmt.Println("LIMITING NEUTRAL AXIS DEPTH (Cl 38.1):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fy (N/mm²)\txu,max/d\n")
	for _, fy := range is456.SteelGrades {
		k, _ := is456.XuMaxRatio(fy)
		fmt.Fprintf(w, "  %.0f\t%.2f\n", fy, k)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN SHEAR STRENGTH τc (Table 19):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  pt (%%)\t")
	for _, g := range grades {
		fmt.Fprintf(w, "M%.0f\t", g)
	}
	fmt.Fprintln(w)
	for _, pt := range is456.ShearPtRows() {
		fmt.Fprintf(w, "  %.2f\t", pt)
		for _, g := range grades {
			tc, _ := is456.DesignShearStrength(g, pt)
			fmt.Fprintf(w, "%.2f\t", tc)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("MAXIMUM SHEAR STRESS τc,max (Table 20):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, g := range grades {
		fmt.Fprintf(w, "M%.0f\t", g)
	}
	fmt.Fprintln(w)
	for _, g := range grades {
		tmax, _ := is456.MaxShearStress(g)
		fmt.Fprintf(w, "%.1f\t", tmax)
	}
	fmt.Fprintln(w)
	w.Flush()
	fmt.Println()
}
