package server

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/acedash/models"
)

func populateStore(t *testing.T) {
	t.Helper()
	rows := []models.RawRecord{
		{Location: "CA", LocationType: "State", Race: "White", TimeFrame: "2019", Data: "5", DataFormat: "Number"},
		{Location: "CA", LocationType: "State", Race: "Black", TimeFrame: "2019", Data: "7", DataFormat: "Number"},
		{Location: "WY", LocationType: "State", Race: "White", TimeFrame: "2019", Data: "2", DataFormat: "Number"},
		{Location: "CA", LocationType: "State", Race: "White", TimeFrame: "2019", Data: "12.3%", DataFormat: "Percent"},
	}
	models.PopulateDataStore("fixture", rows)
}

func TestDashboardDefaults(t *testing.T) {
	populateStore(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	dashboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"CA", "WY", "White", "Black", "Line", "Heatmap"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardBarChartEndToEnd(t *testing.T) {
	populateStore(t)

	req := httptest.NewRequest(http.MethodGet, "/?loctype=State&location=CA&race=White&plot=bar", nil)
	w := httptest.NewRecorder()
	dashboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "2019") {
		t.Error("bar chart should plot the 2019 timeframe")
	}
	if strings.Contains(w.Body.String(), "No data for the current selection") {
		t.Error("unexpected empty notice for a populated view")
	}
}

func TestDashboardEmptySelectionNotice(t *testing.T) {
	populateStore(t)

	// WY has no Black rows, so the filtered view is empty
	req := httptest.NewRequest(http.MethodGet, "/?loctype=State&location=WY&race=Black&plot=line", nil)
	w := httptest.NewRecorder()
	dashboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No data for the current selection") {
		t.Error("expected the empty-view notice")
	}
	if strings.Contains(body, "echarts.init") {
		t.Error("no chart should render for an empty view")
	}
}

func TestDashboardStaleSelectionResets(t *testing.T) {
	populateStore(t)

	// An unknown location resets to the first available option
	req := httptest.NewRequest(http.MethodGet, "/?loctype=State&location=Atlantis&race=White", nil)
	w := httptest.NewRecorder()
	dashboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="CA" selected`) {
		t.Error("stale location should reset to CA")
	}
}

func TestChartEndpointUnknownPlot(t *testing.T) {
	populateStore(t)

	req := httptest.NewRequest(http.MethodGet, "/chart?location=CA&race=White&plot=pie", nil)
	w := httptest.NewRecorder()
	chartHandler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown plot type should 400, got %d", w.Code)
	}
}

func TestPlotSwitchLeavesViewUnchanged(t *testing.T) {
	populateStore(t)
	ds := models.Store.Dataset(models.FormatNumber)

	line := models.Selection{LocationType: "State", Location: "CA", Race: "White", Plot: models.PlotLine}
	heat := line
	heat.Plot = models.PlotHeatmap

	if !reflect.DeepEqual(models.Filter(ds, line), models.Filter(ds, heat)) {
		t.Error("plot kind must not influence the filtered view")
	}
}
