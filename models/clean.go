package models

import (
	"math"
	"strconv"
	"strings"
)

// CleanValue coerces a free-text numeric field to a float. Everything
// that is not a digit, '.', or '-' is stripped first, so "12.3%" cleans
// to 12.3 and "1,234" to 1234. If nothing parseable remains ("N/A",
// "-", "") the second return is false and the value is undefined.
func CleanValue(raw string) (float64, bool) {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	if stripped == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// BuildDataset keeps the rows whose DataFormat matches format and
// cleans their Data field. Unparsable rows are retained with HasValue
// false and recorded for inspection via Rejected.
func BuildDataset(rows []RawRecord, format DataFormat) Dataset {
	ds := Dataset{Format: format}

	for _, raw := range rows {
		if raw.DataFormat != string(format) {
			continue
		}
		v, ok := CleanValue(raw.Data)
		if !ok {
			ds.rejected = append(ds.rejected, raw)
		}
		ds.Records = append(ds.Records, Record{
			Location:     raw.Location,
			LocationType: raw.LocationType,
			Race:         raw.Race,
			TimeFrame:    raw.TimeFrame,
			Value:        v,
			HasValue:     ok,
		})
	}

	return ds
}
