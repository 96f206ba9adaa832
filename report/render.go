package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Column captions match the article tables.
const (
	headEmotion = "Эмоция"
	headVariant = "Вариант"
	headZone    = "Зона"
	headMeanPct = "Средний_%_длительности"
	headSDPct   = "SD_%"
	headMeanDur = "Средняя_длительность_с"
	headSDDur   = "SD_длительности_с"
)

func (t Table) header() []string {
	cols := []string{headEmotion, headVariant}
	if t.ByZone {
		cols = append(cols, headZone)
	}
	cols = append(cols, headMeanPct, headSDPct)
	if t.HasDuration {
		cols = append(cols, headMeanDur, headSDDur)
	}
	return cols
}

func (t Table) cells(r Row) []string {
	cells := []string{r.Emotion, r.Variant}
	if t.ByZone {
		cells = append(cells, r.Zone)
	}
	cells = append(cells, fmtPct(r.MeanPct), fmtPct(r.SDPct))
	if t.HasDuration {
		cells = append(cells, fmtDur(r.MeanDur), fmtDur(r.SDDur))
	}
	return cells
}

// Render writes the table to w as an aligned text table.
func (t Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.header(), "\t"))
	for _, r := range t.Rows {
		fmt.Fprintln(tw, strings.Join(t.cells(r), "\t"))
	}
	return tw.Flush()
}

func (p PivotTable) header() []string {
	return append([]string{headEmotion, headZone}, p.Variants...)
}

func (p PivotTable) cells(r PivotRow) []string {
	cells := []string{r.Emotion, r.Zone}
	for _, c := range r.Cells {
		cells = append(cells, fmtPct(c))
	}
	return cells
}

// Render writes the pivot to w as an aligned text table.
func (p PivotTable) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(p.header(), "\t"))
	for _, r := range p.Rows {
		fmt.Fprintln(tw, strings.Join(p.cells(r), "\t"))
	}
	return tw.Flush()
}

// Undefined statistics (empty group, SD of a single vowel, absent pivot
// combination) render as empty cells.
func fmtPct(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtDur(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
