package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PlotKind selects which chart the renderer draws. The set is closed;
// anything else is a programming error, never silently defaulted.
type PlotKind string

const (
	PlotLine    PlotKind = "line"
	PlotBar     PlotKind = "bar"
	PlotHeatmap PlotKind = "heatmap"
)

func (p PlotKind) Label() string {
	return cases.Title(language.English).String(string(p))
}

// Selection holds the user's current filter and display choices. One
// Selection belongs to one request/response cycle; the shared Dataset
// is never mutated through it.
type Selection struct {
	Dataset      DataFormat
	LocationType string
	Location     string
	Race         string
	Plot         PlotKind
}

const defaultLocationType = "State"

// Normalize clamps every filter field to the option lists derived from
// ds, resetting stale values to the first available option. Changing
// the dataset or location type therefore cascades into fresh location
// and race defaults, while a valid location/race pair passes through
// untouched. Plot is left alone; the renderer rejects unknown kinds.
func (s *Selection) Normalize(ds Dataset) {
	types := LocationTypes(ds)
	if !contains(types, s.LocationType) {
		s.LocationType = pick(types, defaultLocationType)
	}

	locations := Locations(ds, s.LocationType)
	if !contains(locations, s.Location) {
		s.Location = first(locations)
	}

	races := Races(ds)
	if !contains(races, s.Race) {
		s.Race = first(races)
	}
}

// pick prefers want when available, otherwise falls back to the first
// option.
func pick(options []string, want string) string {
	if contains(options, want) {
		return want
	}
	return first(options)
}

func first(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
