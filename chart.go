package qber

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pointStyle 返回只画点不连线的样式
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    2,
		DotColor:    col,
	}
}

// padSeries 单点序列无法建立 X 轴范围，复制一个点保证可渲染
func padSeries(xs, ys []float64) ([]float64, []float64) {
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// RenderHistogramChart 将直方图渲染为 PNG，选中的分析窗口用单独的序列高亮
// 只绘制非零 bin，避免几万个零值点把图面拖成一条底线
func RenderHistogramChart(h *Histogram, start, width int, filename string) error {
	var bgX, bgY, winX, winY []float64
	for i, c := range h.Bins {
		if c == 0 {
			continue
		}
		if i >= start && i < start+width {
			winX = append(winX, float64(i))
			winY = append(winY, float64(c))
		} else {
			bgX = append(bgX, float64(i))
			bgY = append(bgY, float64(c))
		}
	}

	series := []chart.Series{}
	if len(bgX) > 0 {
		bgX, bgY = padSeries(bgX, bgY)
		series = append(series, chart.ContinuousSeries{
			Name:    "Background",
			XValues: bgX,
			YValues: bgY,
			Style:   pointStyle(chart.ColorAlternateGray),
		})
	}
	if len(winX) > 0 {
		winX, winY = padSeries(winX, winY)
		series = append(series, chart.ContinuousSeries{
			Name:    "Window",
			XValues: winX,
			YValues: winY,
			Style:   pointStyle(chart.ColorBlue),
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("histogram is empty, nothing to render")
	}

	ch := chart.Chart{
		Title:      "Arrival-time histogram",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis: chart.XAxis{
			Name:  "Phase (ps)",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(h.WindowSize)},
		},
		YAxis:  chart.YAxis{Name: "Counts"},
		Series: series,
		Width:  1200,
		Height: 400,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %v", err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %v", err)
	}
	return nil
}
