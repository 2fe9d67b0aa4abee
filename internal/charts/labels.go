package charts

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
)

const (
	labelFontSize = 9
	labelGap      = 4
	titleFontSize = 11
)

// barAnnotations writes each bar's value above it and the x axis title below the tick labels.
// go-chart has no bar value labels and BarChart.XAxis carries no name.
func barAnnotations(res analysis.Result, top float64, height int) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		style := chart.Style{FontColor: textColor, FontSize: labelFontSize}.InheritFrom(defaults)
		width, spacing := barLayout(canvas.Width(), len(res.Rows))
		x := canvas.Left + spacing/2
		for _, row := range res.Rows {
			y := canvas.Bottom - scale(row.Value, 0, top, canvas.Height())
			drawCentered(r, valueLabel(row.Value), x+width/2, y-labelGap, style)
			x += width + spacing
		}

		title := chart.Style{FontColor: textColor, FontSize: titleFontSize}.InheritFrom(defaults)
		drawCentered(r, res.XLabel, canvas.Left+canvas.Width()/2, height-labelGap*2, title)
	}
}

// pointAnnotations writes the value above each line marker.
func pointAnnotations(xs, ys []float64, xRange chart.ContinuousRange, top float64) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		style := chart.Style{FontColor: textColor, FontSize: labelFontSize}.InheritFrom(defaults)
		for i := range xs {
			x := canvas.Left + scale(xs[i], xRange.Min, xRange.Max, canvas.Width())
			y := canvas.Bottom - scale(ys[i], 0, top, canvas.Height())
			drawCentered(r, valueLabel(ys[i]), x, y-labelGap*2, style)
		}
	}
}

// barLayout mirrors how go-chart shrinks spacing, then bar width, when bars overflow the canvas.
func barLayout(canvasWidth, n int) (width, spacing int) {
	if n == 0 {
		return barWidth, barSlot - barWidth
	}
	spacing = barSlot - barWidth
	if n*(barWidth+spacing) > canvasWidth {
		spacing = 0
		if rest := canvasWidth - n*barWidth; rest > 0 {
			spacing = int(math.Ceil(float64(rest) / float64(n)))
		}
	}
	width = barWidth
	if n*(barWidth+spacing) > canvasWidth {
		width = 0
		if rest := canvasWidth - n*spacing; rest > 0 {
			width = int(math.Ceil(float64(rest) / float64(n)))
		}
	}
	return width, spacing
}

// scale maps v in [min, max] onto [0, domain] pixels.
func scale(v, min, max float64, domain int) int {
	if max <= min {
		return 0
	}
	return int((v - min) / (max - min) * float64(domain))
}

func drawCentered(r chart.Renderer, text string, x, y int, style chart.Style) {
	if text == "" {
		return
	}
	box := chart.Draw.MeasureText(r, text, style)
	chart.Draw.Text(r, text, x-box.Width()/2, y, style)
}

// valueLabel prints whole numbers without decimals.
func valueLabel(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
