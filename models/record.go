package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DataFormat classifies how a row's value is expressed: an absolute
// count ("Number") or a proportion ("Percent").
type DataFormat string

const (
	FormatNumber  DataFormat = "Number"
	FormatPercent DataFormat = "Percent"
)

func (f DataFormat) Label() string {
	switch f {
	case FormatNumber:
		return "Counts"
	case FormatPercent:
		return "Percentages"
	}
	return cases.Title(language.English).String(string(f))
}

// RawRecord is one row of the source table, values as read from disk.
type RawRecord struct {
	Location     string
	LocationType string
	Race         string
	TimeFrame    string
	Data         string
	DataFormat   string
}

// Record is a cleaned row. HasValue is false when the raw Data field
// could not be coerced to a number; such rows stay in the table but are
// never plotted.
type Record struct {
	Location     string
	LocationType string
	Race         string
	TimeFrame    string
	Value        float64
	HasValue     bool
}

// Dataset holds the cleaned rows for a single DataFormat. It is built
// once at startup and read-only afterwards.
type Dataset struct {
	Format   DataFormat
	Records  []Record
	rejected []RawRecord
}

// Rejected reports the rows whose Data field could not be cleaned to a
// number. Diagnostic only; the rows are still present in Records with
// HasValue false.
func (d Dataset) Rejected() []RawRecord {
	return d.rejected
}
