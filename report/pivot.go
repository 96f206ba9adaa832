package report

import (
	"math"
	"sort"
)

// PivotTable reshapes the zone table for the article: one row per emotion
// and zone, one column per variant, cells holding mean percent duration.
type PivotTable struct {
	Variants []string
	Rows     []PivotRow
}

// PivotRow is one (emotion, zone) line. Cells align with
// PivotTable.Variants; a combination absent from the data stays NaN.
type PivotRow struct {
	Emotion string
	Zone    string
	Cells   []float64
}

// Pivot builds the pivot summary from a zone table.
func Pivot(t Table) PivotTable {
	variantSet := map[string]bool{}
	for _, r := range t.Rows {
		variantSet[r.Variant] = true
	}
	variants := make([]string, 0, len(variantSet))
	for v := range variantSet {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	col := map[string]int{}
	for i, v := range variants {
		col[v] = i
	}

	type rowKey struct{ emotion, zone string }
	cells := map[rowKey][]float64{}
	keys := make([]rowKey, 0)
	for _, r := range t.Rows {
		k := rowKey{r.Emotion, r.Zone}
		if _, ok := cells[k]; !ok {
			keys = append(keys, k)
			row := make([]float64, len(variants))
			for i := range row {
				row[i] = math.NaN()
			}
			cells[k] = row
		}
		cells[k][col[r.Variant]] = r.MeanPct
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.emotion != b.emotion {
			return a.emotion < b.emotion
		}
		return a.zone < b.zone
	})

	p := PivotTable{Variants: variants}
	p.Rows = make([]PivotRow, 0, len(keys))
	for _, k := range keys {
		p.Rows = append(p.Rows, PivotRow{Emotion: k.emotion, Zone: k.zone, Cells: cells[k]})
	}
	return p
}
