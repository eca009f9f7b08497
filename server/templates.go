package server

import (
	"html/template"

	"github.com/acedash/models"
)

type pageData struct {
	Selection     models.Selection
	Formats       []models.DataFormat
	LocationTypes []string
	Locations     []string
	Races         []string
	Plots         []models.PlotKind
	Chart         template.HTML
	Notice        string
}

const pageTpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Childhood Adversity Dashboard</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; max-width: 1100px; margin: 0 auto; padding: 1rem; color: #1a1a2e; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: #6c757d; font-size: .875rem; margin-top: 0; }
.filters { display: flex; flex-wrap: wrap; gap: .75rem; margin: 1rem 0; align-items: end; }
.filters label { display: block; font-size: .75rem; color: #6c757d; text-transform: uppercase; margin-bottom: .25rem; }
.filters select { padding: .375rem .5rem; border: 1px solid #dee2e6; border-radius: 4px; font-size: .875rem; min-width: 140px; }
.notice { background: #fff3cd; border: 1px solid #ffc107; border-radius: 4px; padding: .75rem 1rem; margin: 1rem 0; }
.chart { margin-top: 1rem; }
</style>
</head>
<body>
<header>
<h1>Childhood Adversity Dashboard</h1>
<p>Filter the dataset by geography and demographic group, then pick a chart.</p>
</header>
<form method="get" action="/">
<div class="filters">
<div>
<label for="dataset">Dataset</label>
<select id="dataset" name="dataset" onchange="this.form.submit()">
{{range .Formats}}<option value="{{.}}"{{if eq . $.Selection.Dataset}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
</div>
<div>
<label for="loctype">Location type</label>
<select id="loctype" name="loctype" onchange="this.form.submit()">
{{range .LocationTypes}}<option value="{{.}}"{{if eq . $.Selection.LocationType}} selected{{end}}>{{.}}</option>
{{end}}</select>
</div>
<div>
<label for="location">Location</label>
<select id="location" name="location" onchange="this.form.submit()">
{{range .Locations}}<option value="{{.}}"{{if eq . $.Selection.Location}} selected{{end}}>{{.}}</option>
{{end}}</select>
</div>
<div>
<label for="race">Race</label>
<select id="race" name="race" onchange="this.form.submit()">
{{range .Races}}<option value="{{.}}"{{if eq . $.Selection.Race}} selected{{end}}>{{.}}</option>
{{end}}</select>
</div>
<div>
<label for="plot">Chart</label>
<select id="plot" name="plot" onchange="this.form.submit()">
{{range .Plots}}<option value="{{.}}"{{if eq . $.Selection.Plot}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
</div>
</div>
</form>
{{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
<div class="chart">{{.Chart}}</div>
</body>
</html>`

var page = template.Must(template.New("page").Parse(pageTpl))
