package dataset

import (
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Assemble merges the loaded frames into the unified vowel dataset:
// consonant rows are dropped, the emotion label is taken from the data or
// derived from the file name, and absolute duration is reconstructed when
// a duration column is available. Frame order and row order are preserved.
func Assemble(frames ...*Frame) (*Dataset, error) {
	cols := map[string]bool{}
	total := 0
	for _, f := range frames {
		total += len(f.Rows)
		for c := range f.Columns {
			cols[c] = true
		}
	}

	if !cols["transcription_phonemes"] {
		return nil, &SchemaError{Column: "transcription_phonemes"}
	}
	if !cols["emotion"] && !cols["file_name"] {
		return nil, &SchemaError{Column: "emotion/file_name"}
	}
	if !cols["percent_duration"] {
		return nil, &SchemaError{Column: "percent_duration"}
	}

	ds := &Dataset{
		Records:     make([]Record, 0, total),
		HasFileName: cols["file_name"],
		HasDuration: cols["total_duration"] || cols["duration"],
	}

	dropped := 0
	for _, f := range frames {
		for _, row := range f.Rows {
			if strings.EqualFold(strings.TrimSpace(row["transcription_phonemes"]), "consonant") {
				dropped++
				continue
			}
			rec := Record{
				FileName:   row["file_name"],
				Variant:    f.Variant,
				Phonemes:   row["transcription_phonemes"],
				PercentDur: parseFloat(row["percent_duration"]),
				DurS:       math.NaN(),
			}
			if cols["emotion"] {
				rec.Emotion = row["emotion"]
			} else {
				rec.Emotion = DetectEmotion(rec.FileName)
			}
			switch {
			case cols["total_duration"]:
				rec.DurS = rec.PercentDur / 100 * parseFloat(row["total_duration"])
			case cols["duration"]:
				rec.DurS = parseFloat(row["duration"])
			}
			ds.Records = append(ds.Records, rec)
		}
	}

	log.WithFields(log.Fields{
		"frames":   len(frames),
		"records":  len(ds.Records),
		"dropped":  dropped,
		"duration": ds.HasDuration,
	}).Info("dataset assembled")

	return ds, nil
}

// parseFloat reads a numeric cell, tolerating the decimal comma the
// Russian sheets use. Empty or unparseable cells become NaN, not errors.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
