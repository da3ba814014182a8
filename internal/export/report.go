package export

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/isrcb/internal/compliance"
	"github.com/alexiusacademia/isrcb/internal/diagnostics"
)

// ReportMeta is printed in the report heading.
type ReportMeta struct {
	Project string
	Author  string
	Date    string // printed as given
}

type column struct {
	title string
	width float64 // mm
}

var caseColumns = []column{
	{"Case", 18}, {"Mu kNm", 18}, {"Vu kN", 16}, {"Ast req mm2", 22}, {"Bottom", 26},
	{"Top", 20}, {"Stirrups", 26}, {"Governs", 18}, {"Util.", 14}, {"Status", 12},
}

// WriteReport renders a one-section-per-beam summary of the report as PDF.
func WriteReport(w io.Writer, r *compliance.Report, meta ReportMeta) error {
	if r == nil {
		return fmt.Errorf("write report: no results")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("IS 456 beam design", false)
	pdf.SetAuthor(meta.Author, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam Design Report - IS 456:2000")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Beams: %d    Overall: %s", len(r.Beams), status(r.IsOK)))
	pdf.Ln(10)

	for _, b := range r.Beams {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Beam %s - %s", b.ID, status(b.IsOK))))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "B", 8)
		for _, c := range caseColumns {
			pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, c := range b.Cases {
			for i, cell := range caseRow(c) {
				pdf.CellFormat(caseColumns[i].width, 6, tr(cell), "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(2)

		notes := append(diagnostics.List{}, b.Errors...)
		for _, c := range b.Cases {
			for _, e := range c.Errors {
				if e.Severity != diagnostics.SeverityInfo {
					e.Message = c.CaseID + ": " + e.Message
					notes = append(notes, e)
				}
			}
		}
		for _, e := range notes {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("[%s] %s", e.Code, e.Message)), "", "L", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func caseRow(c compliance.CaseResult) []string {
	row := []string{c.CaseID, "-", "-", "-", "-", "-", "-", string(c.GoverningCheck),
		fmt.Sprintf("%.3f", c.GoverningUtilization), status(c.IsOK)}
	if c.Flexure != nil {
		row[1] = fmt.Sprintf("%.1f", c.Flexure.MuKNm)
		row[3] = fmt.Sprintf("%.0f", c.Flexure.AstRequired)
	}
	if c.Shear != nil {
		row[2] = fmt.Sprintf("%.1f", c.Shear.VuKN)
	}
	if d := c.Detailing; d != nil && len(d.Bottom.Groups) > 0 {
		row[4] = d.Bottom.String()
		row[5] = d.Top.String()
		row[6] = fmt.Sprintf("%d-L %d @ %.0f", d.Stirrups.Legs, d.Stirrups.DiaMM, d.Stirrups.SpacingMM)
	}
	return row
}

func status(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}
