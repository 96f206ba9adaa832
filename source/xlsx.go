package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the first sheet of an Excel workbook. The measurement
// sheets keep their data on a single sheet with the headers in row one.
type XLSXSource struct{ path string }

func NewXLSX(path string) *XLSXSource { return &XLSXSource{path: path} }

func (s *XLSXSource) Name() string { return s.path }

func (s *XLSXSource) Rows() ([]Row, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", s.path)
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return fromGrid(grid), nil
}
