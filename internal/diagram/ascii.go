package diagram

import (
	"fmt"
	"strings"
)

// DrawASCIISectionDiagram creates an ASCII representation of beam section with stress block
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	// Scale factors for ASCII drawing
	widthChars := 30
	heightChars := 20

	row := func(depth float64) int {
		return int(depth / data.Depth * float64(heightChars))
	}
	naLine := row(data.NeutralAxisDepth)
	rectLine := row(data.RectangularDepth())
	tensionLine := row(data.EffectiveDepth)
	compLine := row(data.CompSteelDepth)

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                    STRAIN              STRESS\n")
	sb.WriteString("  ────────────                    ──────              ──────\n")

	for i := 0; i <= heightChars; i++ {
		// Section column
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			// ▓ constant stress, ░ parabolic part of the block
			shade := " "
			if i <= rectLine {
				shade = "▓"
			} else if i <= naLine {
				shade = "░"
			}
			fill := []rune(strings.Repeat(shade, widthChars))
			mid := widthChars / 2

			if data.IsDoubly && i == compLine {
				copy(fill[mid-2:], []rune("●──●"))
			}
			if i == tensionLine {
				copy(fill[mid-3:], []rune("●────●"))
			}

			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
			if i == naLine {
				sb.WriteString(" ◄─ N.A.")
			}
		}

		// Strain diagram column
		sb.WriteString("    ")
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		case i == naLine:
			sb.WriteString("  ├── ε = 0")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("  ├── εs = %.4f%s", data.EpsilonS, yieldMark(data.TensionYields)))
		case data.IsDoubly && i == compLine:
			sb.WriteString(fmt.Sprintf("  ├── εsc = %.4f%s", data.EpsilonSC, yieldMark(data.CompYields)))
		case i < heightChars:
			sb.WriteString("  │")
		}

		// Stress diagram column
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("      ┌── 0.446fck = %.1f N/mm²", data.Fcd))
		case i == rectLine && rectLine > 0:
			sb.WriteString("      ├── 3xu/7")
		case i == naLine:
			sb.WriteString("      └── (stress block)")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("      ── fst = %.1f N/mm²", data.Fst))
		case data.IsDoubly && i == compLine:
			sb.WriteString(fmt.Sprintf("      ── fsc = %.1f N/mm²", data.Fsc))
		}

		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ▓▓▓ = Constant stress zone (3xu/7)\n")
	sb.WriteString("  ░░░ = Parabolic stress zone\n")
	sb.WriteString("  ●●● = Reinforcement\n")
	sb.WriteString(fmt.Sprintf("  N.A. = Neutral Axis at xu = %.1f mm from top\n", data.NeutralAxisDepth))

	return sb.String()
}

func yieldMark(yields bool) string {
	if yields {
		return " (yields)"
	}
	return ""
}

// DrawStrainDiagram creates an ASCII strain distribution diagram
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	height := 15
	width := 40

	// Scale strains to fit
	maxStrain := max(data.EpsilonCU, data.EpsilonS)
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────────\n\n")

	naLine := int(data.NeutralAxisDepth / data.Depth * float64(height))
	tensionLine := int(data.EffectiveDepth / data.Depth * float64(height))

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Depth

		// Linear strain about the neutral axis, shown by magnitude
		strain := data.EpsilonCU * (data.NeutralAxisDepth - depth) / data.NeutralAxisDepth
		if strain < 0 {
			strain = -strain
		}
		bar := strings.Repeat("█", max(int(strain*scale), 0))

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%.4f\n", bar, data.EpsilonCU))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case i == tensionLine:
			mark := ""
			if data.TensionYields {
				mark = " ✓yields"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εs=%.4f%s\n", bar, data.EpsilonS, mark))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", bar))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", bar))
		}
	}

	// Yield strain reference
	yieldBar := int(data.EpsilonY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (design yield strain)\n", data.EpsilonY, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawStressBlock summarises the force couple of the IS 456 stress block
func DrawStressBlock(data SectionDiagramData) string {
	var sb strings.Builder

	xu := data.NeutralAxisDepth
	// C = 0.36 fck b xu acting at 0.42 xu
	compression := 0.36 * data.Fck * data.Width * xu / 1000
	tension := data.Ast * data.Fst / 1000
	lever := data.EffectiveDepth - 0.42*xu

	sb.WriteString("\n")
	sb.WriteString("  IS 456 STRESS BLOCK (PARABOLIC-RECTANGULAR)\n")
	sb.WriteString("  ───────────────────────────────────────────\n\n")
	sb.WriteString("       ┌───────────────┐\n")
	sb.WriteString(fmt.Sprintf("       │ 0.446fck      │ ← 3xu/7 = %.1f mm\n", data.RectangularDepth()))
	sb.WriteString(fmt.Sprintf("       │ = %-6.2f N/mm²│\n", data.Fcd))
	sb.WriteString("       │  (parabola)   │\n")
	sb.WriteString(fmt.Sprintf("       └───────────────┘ ─── C = 0.36·fck·b·xu = %.1f kN\n", compression))
	sb.WriteString(fmt.Sprintf("       ─ ─ ─ ─ ─ ─ ─ ─ ─ ← N.A. (xu = %.1f mm)\n", xu))
	sb.WriteString("                         │\n")
	sb.WriteString(fmt.Sprintf("                         │  z = d - 0.42xu = %.1f mm\n", lever))
	sb.WriteString("                         │\n")
	sb.WriteString("       ●═══════════════● ← Tension Steel\n")
	sb.WriteString(fmt.Sprintf("         Ast = %.1f mm²\n", data.Ast))
	sb.WriteString(fmt.Sprintf("         T = Ast·fst = %.1f kN\n", tension))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := func(s string) int { return len([]rune(s)) }
	maxLen := width(title)
	for _, line := range lines {
		maxLen = max(maxLen, width(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	pad := func(s string) string { return s + strings.Repeat(" ", maxLen-4-width(s)) }
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
