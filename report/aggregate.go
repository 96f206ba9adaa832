// Package report computes and renders the summary tables: grouped
// mean/SD statistics over the vowel dataset, plus the pivot used in the
// article.
package report

import (
	"math"
	"sort"

	"github.com/kbsu-phonlab/tempo-pipeline/dataset"
	"github.com/kbsu-phonlab/tempo-pipeline/stats"
)

// Table is one aggregated summary, a row per group present in the data.
// Absent combinations produce no row.
type Table struct {
	HasDuration bool
	ByZone      bool
	Rows        []Row
}

// Row carries the statistics of one (emotion, variant[, zone]) group.
// Duration fields are NaN when the dataset has no absolute durations.
type Row struct {
	Emotion string
	Variant string
	Zone    string // empty in the overall table
	MeanPct float64
	SDPct   float64
	MeanDur float64
	SDDur   float64
}

// Overall summarizes percent duration (and absolute duration when the
// dataset carries one) for every emotion/variant pair present.
func Overall(ds *dataset.Dataset) Table { return aggregate(ds, false) }

// ByZone produces the same statistics per emotion, variant and zone.
// It expects the zone-assigned dataset.
func ByZone(ds *dataset.Dataset) Table { return aggregate(ds, true) }

type tableKey struct{ emotion, variant, zone string }

func aggregate(ds *dataset.Dataset, byZone bool) Table {
	pct := map[tableKey][]float64{}
	dur := map[tableKey][]float64{}
	keys := make([]tableKey, 0)
	for _, r := range ds.Records {
		k := tableKey{emotion: r.Emotion, variant: r.Variant}
		if byZone {
			k.zone = r.Zone
		}
		if _, ok := pct[k]; !ok {
			keys = append(keys, k)
		}
		pct[k] = append(pct[k], r.PercentDur)
		dur[k] = append(dur[k], r.DurS)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.emotion != b.emotion {
			return a.emotion < b.emotion
		}
		if a.variant != b.variant {
			return a.variant < b.variant
		}
		return a.zone < b.zone
	})

	t := Table{HasDuration: ds.HasDuration, ByZone: byZone}
	t.Rows = make([]Row, 0, len(keys))
	for _, k := range keys {
		row := Row{
			Emotion: k.emotion,
			Variant: k.variant,
			Zone:    k.zone,
			MeanPct: stats.Mean(pct[k]),
			SDPct:   stats.Std(pct[k]),
			MeanDur: math.NaN(),
			SDDur:   math.NaN(),
		}
		if ds.HasDuration {
			row.MeanDur = stats.Mean(dur[k])
			row.SDDur = stats.Std(dur[k])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
