// Package dataset builds the unified vowel table out of the loaded
// measurement sheets: column normalization, emotion labelling, duration
// reconstruction and positional zoning.
package dataset

// Record is one measured vowel occurrence.
type Record struct {
	FileName   string
	Variant    string
	Phonemes   string
	Emotion    string
	PercentDur float64 // share of utterance duration, NaN when the cell is unusable
	DurS       float64 // absolute duration in seconds, NaN when unavailable
	VIndex     int     // 1-based position within the utterance, 0 before zoning
	Zone       string  // positional zone, empty before zoning
}

// Dataset is the merged vowel table. HasFileName and HasDuration record
// column-level presence in the merged input: they decide whether zoning is
// possible and whether the summary tables carry absolute-duration columns.
type Dataset struct {
	Records     []Record
	HasFileName bool
	HasDuration bool
}
