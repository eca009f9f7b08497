package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/acedash/models"
)

var requiredColumns = []string{"Location", "LocationType", "Race", "TimeFrame", "Data", "DataFormat"}

// Load reads the source CSV into raw records. The header row must
// contain every required column (any order, case-insensitive); extra
// columns are ignored.
func Load(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header from %s: %w", path, err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rows []models.RawRecord
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		if len(rec) < len(header) {
			continue
		}
		rows = append(rows, models.RawRecord{
			Location:     rec[cols["Location"]],
			LocationType: rec[cols["LocationType"]],
			Race:         rec[cols["Race"]],
			TimeFrame:    rec[cols["TimeFrame"]],
			Data:         rec[cols["Data"]],
			DataFormat:   rec[cols["DataFormat"]],
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int)
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	cols := make(map[string]int)
	for _, want := range requiredColumns {
		found := false
		for name, i := range idx {
			if strings.EqualFold(name, want) {
				cols[want] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("missing required column %q", want)
		}
	}
	return cols, nil
}
