package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/section"
	"github.com/spf13/cobra"
)

// sectionFlags are the cross-section and material inputs shared by the
// single-beam commands.
type sectionFlags struct {
	kind  string
	width float64
	depth float64
	d     float64
	cover float64
	dDash float64
	bf    float64
	df    float64
	fck   float64
	fy    float64
}

func (f *sectionFlags) bind(cmd *cobra.Command) {
	// Geometry flags
	cmd.Flags().StringVar(&f.kind, "kind", string(section.KindRectangular), "Section kind: RECTANGULAR, T_BEAM or L_BEAM")
	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Beam width b, or web width bw (mm) [required]")
	cmd.Flags().Float64VarP(&f.depth, "depth", "D", 0, "Overall depth D (mm) [required]")
	cmd.Flags().Float64VarP(&f.d, "eff-depth", "d", 0, "Effective depth d (mm) [required]")
	cmd.Flags().Float64VarP(&f.cover, "cover", "c", 25, "Clear cover to stirrups (mm)")
	cmd.Flags().Float64Var(&f.dDash, "d-dash", 0, "Cover to compression steel centroid d' (mm)")
	cmd.Flags().Float64Var(&f.bf, "bf", 0, "Effective flange width (mm), flanged sections")
	cmd.Flags().Float64Var(&f.df, "df", 0, "Flange thickness (mm), flanged sections")

	// Material flags
	cmd.Flags().Float64Var(&f.fck, "fck", 20, "Concrete grade fck (N/mm²)")
	cmd.Flags().Float64Var(&f.fy, "fy", 415, "Steel grade fy (N/mm²)")

	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("depth")
	cmd.MarkFlagRequired("eff-depth")
}

func (f *sectionFlags) geometry() section.Geometry {
	return section.Geometry{
		Kind:               section.Kind(f.kind),
		WidthMM:            f.width,
		DepthMM:            f.depth,
		EffectiveDepthMM:   f.d,
		CoverMM:            f.cover,
		CompressionCoverMM: f.dDash,
		FlangeWidthMM:      f.bf,
		FlangeThicknessMM:  f.df,
	}
}

func (f *sectionFlags) materials() section.Materials {
	return section.Materials{FckNmm2: f.fck, FyNmm2: f.fy}
}

// validate runs the record checks the engines expect to have passed.
func (f *sectionFlags) validate() diagnostics.List {
	return append(section.ValidateGeometry(f.geometry()), section.ValidateMaterials(f.materials())...)
}

func printInputSummary(f *sectionFlags) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s\n", section.Kind(f.kind).Normalize())
	fmt.Fprintf(w, "  Width (b):\t%.0f mm\n", f.width)
	fmt.Fprintf(w, "  Overall Depth (D):\t%.0f mm\n", f.depth)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", f.d)
	if f.dDash > 0 {
		fmt.Fprintf(w, "  Compression Cover (d'):\t%.0f mm\n", f.dDash)
	}
	if section.Kind(f.kind).IsFlanged() {
		fmt.Fprintf(w, "  Flange (bf x Df):\t%.0f x %.0f mm\n", f.bf, f.df)
	}
	fmt.Fprintf(w, "  fck:\t%.0f N/mm²\n", f.fck)
	fmt.Fprintf(w, "  fy:\t%.0f N/mm²\n", f.fy)
	w.Flush()
	fmt.Println()
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

// printDiagnostics lists the entries under a heading, errors first.
func printDiagnostics(list diagnostics.List) {
	if len(list) == 0 {
		return
	}
	fmt.Println("DIAGNOSTICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, sev := range []diagnostics.Severity{diagnostics.SeverityError, diagnostics.SeverityWarning, diagnostics.SeverityInfo} {
		for _, e := range list {
			if e.Severity != sev {
				continue
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Severity, e.Code, e.Message)
			if e.Hint != "" {
				fmt.Fprintf(w, "  \t\t→ %s\n", e.Hint)
			}
		}
	}
	w.Flush()
	fmt.Println()
}

// failed prints the diagnostics and returns the error the command exits with.
func failed(what string, list diagnostics.List) error {
	printDiagnostics(list)
	return fmt.Errorf("%s: %d error(s)", what, len(list.Errors()))
}
