// Package source holds the external tabular collaborators of the pipeline:
// readers that turn a measurement file into rows of named fields. The rest
// of the system only sees the Source interface.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Row is one record of a tabular source, keyed by column header.
type Row map[string]string

// Source yields the rows of one external tabular input.
type Source interface {
	Name() string
	Rows() ([]Row, error)
}

// Open picks a reader implementation by file extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return NewXLSX(path), nil
	case ".csv":
		return NewCSV(path), nil
	default:
		return nil, fmt.Errorf("unsupported source format: %s", path)
	}
}

// fromGrid turns a header row plus data rows into keyed rows. Every header
// is present in every row; a short data row contributes empty cells.
func fromGrid(grid [][]string) []Row {
	if len(grid) == 0 {
		return nil
	}
	header := grid[0]
	out := make([]Row, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		r := Row{}
		for i, h := range header {
			if strings.TrimSpace(h) == "" {
				continue
			}
			cell := ""
			if i < len(raw) {
				cell = strings.TrimSpace(raw[i])
			}
			r[h] = cell
		}
		out = append(out, r)
	}
	return out
}
