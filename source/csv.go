package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSVSource reads a comma-separated export of a measurement sheet.
type CSVSource struct{ path string }

func NewCSV(path string) *CSVSource { return &CSVSource{path: path} }

func (s *CSVSource) Name() string { return s.path }

func (s *CSVSource) Rows() ([]Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // sheets exported by hand have ragged rows
	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(grid) > 0 && len(grid[0]) > 0 {
		// spreadsheet exports often carry a UTF-8 BOM on the first header
		grid[0][0] = strings.TrimPrefix(grid[0][0], "\ufeff")
	}
	return fromGrid(grid), nil
}
