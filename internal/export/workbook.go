// Package export writes design results to files for the site and the
// design office: bar-bending schedules as xlsx, design summaries as PDF.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/isrcb/internal/bbs"
)

const (
	ScheduleSheet = "BBS"
	SummarySheet  = "Weights"
)

var scheduleHeader = []interface{}{
	"Beam", "Mark", "Location", "Shape", "Dia (mm)", "No.", "Cut length (mm)", "Unit wt (kg)", "Total wt (kg)",
}

// WriteSchedules writes one workbook holding every schedule: a BBS sheet
// with a row per bar mark and a Weights sheet totalled by diameter.
func WriteSchedules(w io.Writer, schedules []*bbs.Schedule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ScheduleSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := setRow(f, ScheduleSheet, 1, scheduleHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(ScheduleSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	row := 2
	byDia := map[int]float64{}
	total := 0.0
	for _, s := range schedules {
		if s == nil {
			continue
		}
		for _, e := range s.Entries {
			values := []interface{}{
				s.BeamID, e.Mark, e.Location, string(e.Shape), e.DiaMM, e.Count,
				e.CutLengthMM, e.UnitWeightKg, e.TotalWeightKg,
			}
			if err := setRow(f, ScheduleSheet, row, values); err != nil {
				return err
			}
			row++
		}
		for dia, kg := range s.WeightByDia {
			byDia[dia] += kg
		}
		total += s.TotalWeightKg
	}

	if err := setRow(f, SummarySheet, 1, []interface{}{"Dia (mm)", "Weight (kg)"}); err != nil {
		return err
	}
	if err := f.SetRowStyle(SummarySheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	dias := make([]int, 0, len(byDia))
	for dia := range byDia {
		dias = append(dias, dia)
	}
	sort.Ints(dias)
	row = 2
	for _, dia := range dias {
		if err := setRow(f, SummarySheet, row, []interface{}{dia, bbs.RoundWeight(byDia[dia])}); err != nil {
			return err
		}
		row++
	}
	if err := setRow(f, SummarySheet, row, []interface{}{"Total", bbs.RoundWeight(total)}); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
