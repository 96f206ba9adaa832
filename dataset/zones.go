package dataset

import "sort"

// Positional zones within an utterance.
const (
	ZoneStart  = "начало"
	ZoneMiddle = "середина"
	ZoneEnd    = "конец"
)

// groupKey identifies one utterance within one variant and emotion.
type groupKey struct{ variant, emotion, file string }

// AssignZones orders the vowels of every utterance and labels each as
// start, middle or end: the first three vowels open the utterance, the
// last three close it. The start check wins when a short utterance lets
// the two conditions overlap. Returns a new dataset, the input is left
// untouched.
func AssignZones(ds *Dataset) (*Dataset, error) {
	if !ds.HasFileName {
		return nil, &SchemaError{Column: "file_name"}
	}

	out := &Dataset{
		Records:     make([]Record, len(ds.Records)),
		HasFileName: ds.HasFileName,
		HasDuration: ds.HasDuration,
	}
	copy(out.Records, ds.Records)

	// Stable sort: within an utterance the assembler's row order is the
	// only ordering the measurements carry, so it must survive.
	sort.SliceStable(out.Records, func(i, j int) bool {
		a, b := out.Records[i], out.Records[j]
		if a.Variant != b.Variant {
			return a.Variant < b.Variant
		}
		if a.Emotion != b.Emotion {
			return a.Emotion < b.Emotion
		}
		return a.FileName < b.FileName
	})

	counts := map[groupKey]int{}
	for i := range out.Records {
		r := &out.Records[i]
		k := groupKey{r.Variant, r.Emotion, r.FileName}
		counts[k]++
		r.VIndex = counts[k]
	}
	for i := range out.Records {
		r := &out.Records[i]
		n := counts[groupKey{r.Variant, r.Emotion, r.FileName}]
		r.Zone = zoneFor(r.VIndex, n)
	}
	return out, nil
}

// zoneFor labels position index within an utterance of n vowels.
func zoneFor(index, n int) string {
	if index <= 3 {
		return ZoneStart
	}
	if index > n-3 {
		return ZoneEnd
	}
	return ZoneMiddle
}
