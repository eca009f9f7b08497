package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/acedash/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ErrUnknownPlotType reports a plot kind outside the closed set. The UI
// selects can't produce one, so seeing it means a programming error.
var ErrUnknownPlotType = errors.New("unknown plot type")

// errEmptyView means the filtered view has no plottable rows. Surfaced
// to the user as a notice, never as a failure.
var errEmptyView = errors.New("no rows to plot")

// chartGrid is the pivoted view the chart generators consume:
// timeframes ascending on x, races in first-seen order, one optional
// value per (timeframe, race) cell.
type chartGrid struct {
	TimeFrames []string
	Races      []string
	cells      map[string]map[string]float64
}

func (g chartGrid) value(timeFrame, race string) (float64, bool) {
	v, ok := g.cells[timeFrame][race]
	return v, ok
}

// pivotRows drops rows without a numeric value and arranges the rest
// into a grid. The drop is a second defensive pass; the cleaner already
// marks these rows, and they must never reach a chart.
func pivotRows(rows []models.Record) chartGrid {
	grid := chartGrid{cells: make(map[string]map[string]float64)}

	seenRace := make(map[string]bool)
	for _, r := range rows {
		if !r.HasValue {
			continue
		}
		if grid.cells[r.TimeFrame] == nil {
			grid.cells[r.TimeFrame] = make(map[string]float64)
			grid.TimeFrames = append(grid.TimeFrames, r.TimeFrame)
		}
		grid.cells[r.TimeFrame][r.Race] = r.Value
		if !seenRace[r.Race] {
			seenRace[r.Race] = true
			grid.Races = append(grid.Races, r.Race)
		}
	}

	sort.Strings(grid.TimeFrames)
	return grid
}

// renderChart builds the chart for the current filtered view and
// returns its HTML. An empty view yields errEmptyView; an unrecognized
// plot kind yields ErrUnknownPlotType.
func renderChart(rows []models.Record, sel models.Selection) (template.HTML, error) {
	grid := pivotRows(rows)
	if len(grid.TimeFrames) == 0 {
		return "", errEmptyView
	}

	var chart interface{ Render(w io.Writer) error }
	switch sel.Plot {
	case models.PlotLine:
		chart = generateLineChart(grid, sel)
	case models.PlotBar:
		chart = generateBarChart(grid, sel)
	case models.PlotHeatmap:
		chart = generateHeatmap(grid, sel)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlotType, sel.Plot)
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func chartTitle(sel models.Selection) string {
	if sel.Race == "" {
		return sel.Location
	}
	return fmt.Sprintf("%s — %s", sel.Race, sel.Location)
}

func generateLineChart(grid chartGrid, sel models.Selection) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle(sel),
			Subtitle: sel.Dataset.Label() + " over time",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	line.SetXAxis(grid.TimeFrames)

	for _, race := range grid.Races {
		items := make([]opts.LineData, len(grid.TimeFrames))
		for i, tf := range grid.TimeFrames {
			if v, ok := grid.value(tf, race); ok {
				items[i] = opts.LineData{Value: v}
			} else {
				items[i] = opts.LineData{Value: nil}
			}
		}
		line.AddSeries(race, items)
	}

	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
		ShowSymbol: opts.Bool(true),
	}))

	return line
}

func generateBarChart(grid chartGrid, sel models.Selection) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle(sel),
			Subtitle: sel.Dataset.Label() + " by year",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
	)

	bar.SetXAxis(grid.TimeFrames)

	// One bar per race inside each timeframe group; echarts dodges
	// sibling series automatically.
	for _, race := range grid.Races {
		items := make([]opts.BarData, len(grid.TimeFrames))
		for i, tf := range grid.TimeFrames {
			if v, ok := grid.value(tf, race); ok {
				items[i] = opts.BarData{Value: v}
			} else {
				items[i] = opts.BarData{Value: nil}
			}
		}
		bar.AddSeries(race, items)
	}

	return bar
}

func generateHeatmap(grid chartGrid, sel models.Selection) *charts.HeatMap {
	hm := charts.NewHeatMap()

	min, max := grid.valueRange()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			// Race is an axis here, so the title carries the location only.
			Title:    sel.Location,
			Subtitle: sel.Dataset.Label() + " by year and race",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      grid.Races,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	hm.SetXAxis(grid.TimeFrames)

	var items []opts.HeatMapData
	for x, tf := range grid.TimeFrames {
		for y, race := range grid.Races {
			if v, ok := grid.value(tf, race); ok {
				items = append(items, opts.HeatMapData{Value: [3]interface{}{x, y, v}})
			}
		}
	}
	hm.AddSeries("value", items)

	return hm
}

func (g chartGrid) valueRange() (min, max float64) {
	firstSeen := false
	for _, byRace := range g.cells {
		for _, v := range byRace {
			if !firstSeen {
				min, max = v, v
				firstSeen = true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
