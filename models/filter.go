package models

// Filter returns the rows of ds matching the selection's location type,
// location, and race. An empty Location returns every row, so the page
// never shows a hard empty state before the user's first choice. Pure:
// identical inputs yield identical rows in source order.
func Filter(ds Dataset, sel Selection) []Record {
	if sel.Location == "" {
		return ds.Records
	}

	var out []Record
	for _, r := range ds.Records {
		if r.LocationType == sel.LocationType && r.Location == sel.Location && r.Race == sel.Race {
			out = append(out, r)
		}
	}
	return out
}

// Locations lists the distinct Location values among rows of the given
// LocationType, in first-seen order. The first element doubles as the
// location control's default.
func Locations(ds Dataset, locationType string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range ds.Records {
		if r.LocationType != locationType || seen[r.Location] {
			continue
		}
		seen[r.Location] = true
		out = append(out, r.Location)
	}
	return out
}

// Races lists the distinct Race values across the dataset, first-seen
// order.
func Races(ds Dataset) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range ds.Records {
		if seen[r.Race] {
			continue
		}
		seen[r.Race] = true
		out = append(out, r.Race)
	}
	return out
}

// LocationTypes lists the distinct LocationType values across the
// dataset, first-seen order.
func LocationTypes(ds Dataset) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range ds.Records {
		if seen[r.LocationType] {
			continue
		}
		seen[r.LocationType] = true
		out = append(out, r.LocationType)
	}
	return out
}
