package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blockFill = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	blockEdge = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steel     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	axisRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	yieldLine = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// ExportSectionDiagram exports a beam section diagram to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section - IS 456 Stress Block"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := data.Vertices
	if len(outline) < 3 {
		outline = []Point{{0, 0}, {data.Width, 0}, {data.Width, data.Depth}, {0, data.Depth}}
	}

	// Draw section outline
	minX, maxX := outline[0].X, outline[0].X
	beamOutline := make(plotter.XYs, len(outline)+1)
	for i, v := range outline {
		beamOutline[i] = plotter.XY{X: v.X, Y: v.Y}
		minX, maxX = min(minX, v.X), max(maxX, v.X)
	}
	beamOutline[len(outline)] = beamOutline[0]

	beamLine, err := plotter.NewLine(beamOutline)
	if err != nil {
		return err
	}
	beamLine.LineStyle.Width = vg.Points(2)
	beamLine.LineStyle.Color = color.Black
	p.Add(beamLine)

	// Compression zone above the neutral axis
	zone := clipSectionAtDepth(outline, data.Depth, data.NeutralAxisDepth)
	if len(zone) >= 3 {
		block, err := plotter.NewPolygon(zone)
		if err != nil {
			return err
		}
		block.Color = blockFill
		block.LineStyle.Color = blockEdge
		p.Add(block)
	}

	// Draw neutral axis line
	naY := data.Depth - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: naY},
		{X: maxX + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = axisRed
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// Bars sit in the web
	tensionY := data.Depth - data.EffectiveDepth
	webMinX, webMaxX := findWidthAtY(outline, tensionY, minX, maxX)
	webCenter := (webMinX + webMaxX) / 2
	webWidth := webMaxX - webMinX

	tensionSteel, err := plotter.NewScatter(plotter.XYs{
		{X: webCenter - webWidth*0.3, Y: tensionY},
		{X: webCenter, Y: tensionY},
		{X: webCenter + webWidth*0.3, Y: tensionY},
	})
	if err != nil {
		return err
	}
	tensionSteel.GlyphStyle.Color = steel
	tensionSteel.GlyphStyle.Radius = vg.Points(6)
	tensionSteel.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tensionSteel)

	if data.IsDoubly && data.Asc > 0 {
		compY := data.Depth - data.CompSteelDepth
		compSteel, err := plotter.NewScatter(plotter.XYs{
			{X: webCenter - webWidth*0.3, Y: compY},
			{X: webCenter + webWidth*0.3, Y: compY},
		})
		if err != nil {
			return err
		}
		compSteel.GlyphStyle.Color = steel
		compSteel.GlyphStyle.Radius = vg.Points(5)
		compSteel.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(compSteel)
	}

	// Add annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{maxX + 30, naY, fmt.Sprintf("N.A. xu=%.1fmm", data.NeutralAxisDepth)},
		{maxX + 30, data.Depth - data.RectangularDepth(), "3xu/7"},
		{webCenter, tensionY - 25, fmt.Sprintf("Ast=%.0fmm²", data.Ast)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot, creating the directory if needed.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	return p.Save(width, height, filename)
}

// clipSectionAtDepth clips the section polygon at a given depth from top
// Returns the vertices of the clipped (compression zone) polygon
func clipSectionAtDepth(vertices []Point, height, depth float64) plotter.XYs {
	if len(vertices) < 3 || depth <= 0 {
		return nil
	}

	clipY := height - depth
	var result plotter.XYs

	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		currAbove := curr.Y >= clipY
		nextAbove := next.Y >= clipY

		if currAbove {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}

		// Check for intersection with clip line
		if currAbove != nextAbove {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			intersectX := curr.X + t*(next.X-curr.X)
			result = append(result, plotter.XY{X: intersectX, Y: clipY})
		}
	}

	return result
}

// findWidthAtY finds the min and max X at a given Y level
func findWidthAtY(vertices []Point, y, defaultMin, defaultMax float64) (float64, float64) {
	var intersections []float64
	n := len(vertices)

	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		// Check if edge crosses this Y level
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			intersections = append(intersections, curr.X+t*(next.X-curr.X))
		}
	}

	if len(intersections) < 2 {
		return defaultMin, defaultMax
	}

	minX, maxX := intersections[0], intersections[0]
	for _, x := range intersections {
		minX, maxX = min(minX, x), max(maxX, x)
	}

	return minX, maxX
}

// ExportStrainDiagram exports a strain distribution diagram
func ExportStrainDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Depth from top (mm)"

	// Invert Y axis (depth increases downward)
	p.Y.Min = data.Depth
	p.Y.Max = 0

	// Strain distribution line, compression positive
	keys := plotter.XYs{
		{X: data.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonS, Y: data.EffectiveDepth},
	}
	strainLine, err := plotter.NewLine(keys)
	if err != nil {
		return err
	}
	strainLine.LineStyle.Width = vg.Points(2)
	strainLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(strainLine)

	// Zero strain and yield strain references
	refs := []struct {
		x      float64
		c      color.Color
		dashes []vg.Length
	}{
		{0, color.Gray{Y: 128}, []vg.Length{vg.Points(3), vg.Points(3)}},
		{data.EpsilonY, yieldLine, []vg.Length{vg.Points(2), vg.Points(2)}},
		{-data.EpsilonY, yieldLine, []vg.Length{vg.Points(2), vg.Points(2)}},
	}
	for _, ref := range refs {
		l, err := plotter.NewLine(plotter.XYs{{X: ref.x, Y: 0}, {X: ref.x, Y: data.Depth}})
		if err != nil {
			return err
		}
		l.LineStyle.Color = ref.c
		l.LineStyle.Dashes = ref.dashes
		p.Add(l)
	}

	// Mark key points
	keyPoints, err := plotter.NewScatter(keys)
	if err != nil {
		return err
	}
	keyPoints.GlyphStyle.Color = axisRed
	keyPoints.GlyphStyle.Radius = vg.Points(4)
	p.Add(keyPoints)

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}
