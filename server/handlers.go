package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/acedash/models"
)

// parseSelection reads the selection off the query string. Values are
// taken as-is; normalization against the dataset happens afterwards so
// stale choices reset to their first available option.
func parseSelection(r *http.Request) models.Selection {
	q := r.URL.Query()

	sel := models.Selection{
		Dataset:      models.FormatNumber,
		LocationType: q.Get("loctype"),
		Location:     q.Get("location"),
		Race:         q.Get("race"),
		Plot:         models.PlotLine,
	}
	if q.Get("dataset") == string(models.FormatPercent) {
		sel.Dataset = models.FormatPercent
	}
	if p := q.Get("plot"); p != "" {
		sel.Plot = models.PlotKind(p)
	}
	return sel
}

// dashboardHandler recomputes every dependent output for the current
// selection — option lists, filtered view, chart, notice — in one pass
// before the response is written.
func dashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sel := parseSelection(r)
	ds := models.Store.Dataset(sel.Dataset)
	sel.Normalize(ds)

	data := pageData{
		Selection:     sel,
		Formats:       []models.DataFormat{models.FormatNumber, models.FormatPercent},
		LocationTypes: models.LocationTypes(ds),
		Locations:     models.Locations(ds, sel.LocationType),
		Races:         models.Races(ds),
		Plots:         []models.PlotKind{models.PlotLine, models.PlotBar, models.PlotHeatmap},
	}

	rows := models.Filter(ds, sel)
	chart, err := renderChart(rows, sel)
	switch {
	case err == nil:
		data.Chart = chart
	case errors.Is(err, errEmptyView):
		data.Notice = "No data for the current selection."
	default:
		log.Printf("Chart render failed: %v", err)
		http.Error(w, "Failed to render chart: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := page.Execute(w, data); err != nil {
		log.Printf("Page render failed: %v", err)
	}
}

// chartHandler serves the chart fragment alone for the same query
// parameters the dashboard takes.
func chartHandler(w http.ResponseWriter, r *http.Request) {
	sel := parseSelection(r)
	ds := models.Store.Dataset(sel.Dataset)
	sel.Normalize(ds)

	rows := models.Filter(ds, sel)
	chart, err := renderChart(rows, sel)
	if err != nil {
		if errors.Is(err, errEmptyView) {
			http.Error(w, "No data for the current selection", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(chart)); err != nil {
		log.Printf("Chart write failed: %v", err)
	}
}
