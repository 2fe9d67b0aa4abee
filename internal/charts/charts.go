// Package charts draws analysis results as SVG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
)

// ErrNoData is returned when a result has no rows to draw.
var ErrNoData = errors.New("no data to chart")

const (
	defaultHeight = 480
	minWidth      = 720
	barSlot       = 64
	barWidth      = 40
	headroom      = 1.2
)

var (
	lineColor = drawing.ColorFromHex("4cc9f0")
	textColor = drawing.ColorBlack
)

// Render writes the chart for res as SVG.
func Render(w io.Writer, res analysis.Result) error {
	if len(res.Rows) == 0 {
		return ErrNoData
	}
	var err error
	switch res.Kind {
	case analysis.KindLine:
		graph := Line(res)
		err = graph.Render(chart.SVG, w)
	default:
		graph := Bar(res)
		err = graph.Render(chart.SVG, w)
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", res.ID, err)
	}
	return nil
}

// Bar builds a bar chart with one bar per row, coloured by value.
func Bar(res analysis.Result) chart.BarChart {
	maxValue := res.Max()
	bars := make([]chart.Value, len(res.Rows))
	for i, row := range res.Rows {
		fill := plasmaAt(ratio(row.Value, maxValue))
		bars[i] = chart.Value{
			Label: row.Label,
			Value: row.Value,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	width := len(bars)*barSlot + 120
	if width < minWidth {
		width = minWidth
	}
	bottom := 64
	if res.Rotate != 0 {
		bottom = 160
	}
	top := yMax(maxValue)

	return chart.BarChart{
		Title:      res.Title,
		TitleStyle: chart.Style{FontColor: textColor},
		Width:      width,
		Height:     defaultHeight,
		BarWidth:   barWidth,
		BarSpacing: barSlot - barWidth,
		Background: chart.Style{
			FillColor: drawing.ColorTransparent,
			Padding:   chart.Box{Top: 48, Left: 16, Right: 16, Bottom: bottom},
		},
		Canvas: chart.Style{FillColor: drawing.ColorTransparent},
		XAxis: chart.Style{
			FontColor:           textColor,
			TextRotationDegrees: res.Rotate,
		},
		YAxis: chart.YAxis{
			Name:  res.YLabel,
			Style: chart.Style{FontColor: textColor},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars:     bars,
		Elements: []chart.Renderable{barAnnotations(res, top, defaultHeight)},
	}
}

// Line builds a line chart with markers. Labels must be numeric; others are skipped.
func Line(res analysis.Result) chart.Chart {
	xs := make([]float64, 0, len(res.Rows))
	ys := make([]float64, 0, len(res.Rows))
	ticks := make([]chart.Tick, 0, len(res.Rows))
	for _, row := range res.Rows {
		x, err := strconv.ParseFloat(row.Label, 64)
		if err != nil {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, row.Value)
		ticks = append(ticks, chart.Tick{Value: x, Label: row.Label})
	}

	xRange := chart.ContinuousRange{Min: 0, Max: 1}
	if len(xs) > 0 {
		minX, maxX := xs[0], xs[0]
		for _, x := range xs[1:] {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		// go-chart takes the x range from the ticks, so unlabelled edge ticks
		// pad the axis and give a single year a non-zero span.
		xRange = chart.ContinuousRange{Min: minX - 1, Max: maxX + 1}
		ticks = append(append([]chart.Tick{{Value: xRange.Min}}, ticks...), chart.Tick{Value: xRange.Max})
	}
	top := yMax(res.Max())

	return chart.Chart{
		Title:      res.Title,
		TitleStyle: chart.Style{FontColor: textColor},
		Width:      minWidth,
		Height:     defaultHeight,
		Background: chart.Style{
			FillColor: drawing.ColorTransparent,
			Padding:   chart.Box{Top: 48, Left: 16, Right: 24, Bottom: 24},
		},
		Canvas: chart.Style{FillColor: drawing.ColorTransparent},
		XAxis: chart.XAxis{
			Name:  res.XLabel,
			Style: chart.Style{FontColor: textColor},
			Range: &xRange,
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  res.YLabel,
			Style: chart.Style{FontColor: textColor},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Elements: []chart.Renderable{pointAnnotations(xs, ys, xRange, top)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    res.YLabel,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3,
					DotColor:    lineColor,
					DotWidth:    5,
				},
			},
		},
	}
}

func yMax(max float64) float64 {
	if max <= 0 {
		return 1
	}
	return max * headroom
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}
