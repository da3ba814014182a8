// Package bbs generates bar-bending schedules (IS 2502) from a detailed
// beam.
package bbs

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/isrcb/internal/detailing"
	"github.com/alexiusacademia/isrcb/internal/diagnostics"
	"github.com/alexiusacademia/isrcb/internal/is456"
	"github.com/alexiusacademia/isrcb/internal/section"
)

// ShapeCode is the IS 2502 shape classification.
type ShapeCode string

const (
	ShapeStraight ShapeCode = "00"
	ShapeBentUp   ShapeCode = "41"
	ShapeStirrup  ShapeCode = "51"
)

const (
	lengthRoundMM = 10.0

	hookFactor    = 10.0 // hook allowance per hook, × φ
	cornerFactor  = 0.57 // bend allowance per corner, × φ
	crankFactor   = 0.42 // extra length of one 45° crank, × crank height
	hooksPerLink  = 2
	cornersOfLink = 4
)

// Entry is one line of the schedule.
type Entry struct {
	Mark          string    `json:"mark"`
	Location      string    `json:"location"`
	Shape         ShapeCode `json:"shape_code"`
	DiaMM         int       `json:"dia_mm"`
	Count         int       `json:"count"`
	CutLengthMM   float64   `json:"cut_length_mm"`
	UnitWeightKg  float64   `json:"unit_weight_kg"`
	TotalWeightKg float64   `json:"total_weight_kg"`
}

// Schedule is the bending schedule of one beam.
type Schedule struct {
	BeamID        string          `json:"beam_id"`
	Entries       []Entry         `json:"entries"`
	TotalWeightKg float64         `json:"total_weight_kg"`
	WeightByDia   map[int]float64 `json:"weight_by_dia_kg"`
}

// Input describes the member the bars are cut for.
type Input struct {
	BeamID   string
	Geometry section.Geometry
	SpanMM   float64

	// BentUpBars is the number of bottom bars of the largest size cranked
	// up near the supports; zero keeps all bottom bars straight.
	BentUpBars int
}

// Generate converts the detailed bar groups into cut-length entries.
func Generate(det *detailing.Result, in Input) (*Schedule, diagnostics.List) {
	var diags diagnostics.List
	if in.SpanMM <= 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputMissing,
			"span is required for the bar-bending schedule",
			diagnostics.WithField("span_mm")))
	}
	if det == nil || len(det.Bottom.Groups) == 0 {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeBBSNoBars,
			"no detailed bars to schedule",
			diagnostics.WithHint("the detailing stage found no bar arrangement")))
	}
	if in.BentUpBars < 0 || (det != nil && len(det.Bottom.Groups) > 0 && in.BentUpBars > det.Bottom.Groups[0].Count-detailing.MinBars) {
		diags = append(diags, diagnostics.NewError(diagnostics.CodeInputInvalid,
			fmt.Sprintf("%d bent-up bars leave fewer than %d straight corner bars", in.BentUpBars, detailing.MinBars),
			diagnostics.WithField("bent_up_bars")))
	}
	if len(diags) > 0 {
		return nil, diags
	}

	g := in.Geometry
	s := &Schedule{BeamID: in.BeamID, WeightByDia: map[int]float64{}}

	for i, grp := range det.Bottom.Groups {
		count := grp.Count
		if i == 0 && in.BentUpBars > 0 {
			count -= in.BentUpBars
			s.add("BU1", "bottom, bent-up", ShapeBentUp, grp.DiaMM, in.BentUpBars,
				BentUpLength(in.SpanMM, det.DevelopmentLengthMM, g.DepthMM, g.CoverMM))
		}
		s.add(fmt.Sprintf("B%d", i+1), "bottom", ShapeStraight, grp.DiaMM, count,
			StraightLength(in.SpanMM, det.DevelopmentLengthMM))
	}
	for i, grp := range det.Top.Groups {
		s.add(fmt.Sprintf("T%d", i+1), "top", ShapeStraight, grp.DiaMM, grp.Count,
			StraightLength(in.SpanMM, det.TopDevelopmentLengthMM))
	}
	if st := det.Stirrups; st.DiaMM > 0 && st.SpacingMM > 0 {
		s.add("S1", "stirrups", ShapeStirrup, st.DiaMM, StirrupCount(in.SpanMM, st.SpacingMM),
			StirrupLength(g.WidthMM, g.DepthMM, g.CoverMM, st.DiaMM))
	}

	sort.SliceStable(s.Entries, func(i, j int) bool { return markOrder(s.Entries[i].Mark) < markOrder(s.Entries[j].Mark) })
	for dia, w := range s.WeightByDia {
		s.WeightByDia[dia] = RoundWeight(w)
	}
	s.TotalWeightKg = RoundWeight(s.TotalWeightKg)
	return s, nil
}

func (s *Schedule) add(mark, location string, shape ShapeCode, dia, count int, length float64) {
	cut := RoundLength(length)
	unit := RoundWeight(UnitWeight(dia, cut))
	total := RoundWeight(unit * float64(count))
	s.Entries = append(s.Entries, Entry{
		Mark:          mark,
		Location:      location,
		Shape:         shape,
		DiaMM:         dia,
		Count:         count,
		CutLengthMM:   cut,
		UnitWeightKg:  unit,
		TotalWeightKg: total,
	})
	s.WeightByDia[dia] += total
	s.TotalWeightKg += total
}

// markOrder keeps bottom, bent-up, top and stirrup marks together.
func markOrder(mark string) int {
	switch mark[0] {
	case 'B':
		if len(mark) > 1 && mark[1] == 'U' {
			return 1
		}
		return 0
	case 'T':
		return 2
	default:
		return 3
	}
}

// StraightLength returns segment + 2 × anchorage extension (mm).
func StraightLength(segment, extension float64) float64 {
	return segment + 2*extension
}

// BentUpLength adds two 45° cranks over the lever height D - 2c to a
// straight bar.
func BentUpLength(segment, extension, depth, cover float64) float64 {
	return StraightLength(segment, extension) + 2*crankFactor*(depth-2*cover)
}

// StirrupLength returns the cut length of a closed two-legged link:
// 2(b - 2c) + 2(D - 2c) + 2 hooks of 10φ + 4 corners of 0.57φ.
func StirrupLength(width, depth, cover float64, dia int) float64 {
	phi := float64(dia)
	return 2*(width-2*cover) + 2*(depth-2*cover) + hooksPerLink*hookFactor*phi + cornersOfLink*cornerFactor*phi
}

// StirrupCount returns floor(span/spacing) + 1.
func StirrupCount(span, spacing float64) int {
	return int(math.Floor(span/spacing)) + 1
}

// UnitWeight returns the mass of one bar (kg) from ρ = 7850 kg/m³.
func UnitWeight(dia int, lengthMM float64) float64 {
	volume := detailing.BarArea(dia) * lengthMM * 1e-9 // m³
	return volume * is456.SteelDensity
}

// RoundLength rounds to the nearest 10 mm.
func RoundLength(mm float64) float64 {
	return math.Round(mm/lengthRoundMM) * lengthRoundMM
}

// RoundWeight rounds to 0.01 kg.
func RoundWeight(kg float64) float64 {
	return math.Round(kg*100) / 100
}
