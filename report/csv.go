package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV saves the table under path, UTF-8 BOM prefixed so spreadsheet
// tools pick up the Cyrillic headers.
func (t Table) WriteCSV(path string) error {
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, t.header())
	for _, r := range t.Rows {
		rows = append(rows, t.cells(r))
	}
	return writeCSV(path, rows)
}

// WriteCSV saves the pivot under path.
func (p PivotTable) WriteCSV(path string) error {
	rows := make([][]string, 0, len(p.Rows)+1)
	rows = append(rows, p.header())
	for _, r := range p.Rows {
		rows = append(rows, p.cells(r))
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\ufeff"); err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
