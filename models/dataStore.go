package models

import "log"

// DataStore holds both cleaned dataset partitions. Populated once at
// startup, read-only for the rest of the process.
type DataStore struct {
	Numbers  Dataset
	Percents Dataset
	Path     string
}

var Store = DataStore{}

// PopulateDataStore cleans the raw rows into both partitions and logs
// the rows whose values could not be parsed. Logging is diagnostic
// only; rejected rows never change what the filter returns.
func PopulateDataStore(path string, rows []RawRecord) {
	Store.Path = path
	Store.Numbers = BuildDataset(rows, FormatNumber)
	Store.Percents = BuildDataset(rows, FormatPercent)

	for _, ds := range []Dataset{Store.Numbers, Store.Percents} {
		for _, r := range ds.Rejected() {
			log.Printf("Unparsable %s value %q (%s, %s, %s)", ds.Format, r.Data, r.Location, r.Race, r.TimeFrame)
		}
	}
}

// Dataset returns the partition for the given format. Unknown formats
// fall back to the Numbers partition, matching the dataset control's
// default.
func (s *DataStore) Dataset(f DataFormat) Dataset {
	if f == FormatPercent {
		return s.Percents
	}
	return s.Numbers
}
