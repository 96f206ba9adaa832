package dataset

import (
	"fmt"
	"strings"

	"github.com/kbsu-phonlab/tempo-pipeline/source"
)

// Frame is one loaded tabular source after column normalization. Columns
// tracks header-level presence because the schema checks in Assemble are
// decided per column, not per cell.
type Frame struct {
	Columns map[string]bool
	Rows    []source.Row
	Variant string
}

// aliasRule rewrites a legacy column spelling to its canonical name.
type aliasRule struct{ alias, canonical string }

// The sheets were typed up over several field seasons and the spellings
// drifted. Each rule applies only when the canonical column is absent, so
// a sheet carrying both keeps the canonical one untouched.
var aliasRules = []aliasRule{
	{"persent_duration", "percent_duration"},
	{"totaldur", "total_duration"},
	{"transcription", "transcription_phonemes"},
	{"filename", "file_name"},
}

// Load reads one source and normalizes it: column names are trimmed,
// lower-cased and de-spaced, legacy spellings are rewritten, and the frame
// is stamped with its variant label. Cell values are not validated here.
func Load(src source.Source, variant string) (*Frame, error) {
	rows, err := src.Rows()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	f := &Frame{Columns: map[string]bool{}, Variant: variant}
	f.Rows = make([]source.Row, 0, len(rows))
	for _, raw := range rows {
		r := source.Row{}
		for k, v := range raw {
			r[normalizeColumn(k)] = v
		}
		f.Rows = append(f.Rows, r)
	}
	for _, r := range f.Rows {
		for k := range r {
			f.Columns[k] = true
		}
	}
	f.applyAliases()
	return f, nil
}

func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func (f *Frame) applyAliases() {
	for _, rule := range aliasRules {
		if !f.Columns[rule.alias] || f.Columns[rule.canonical] {
			continue
		}
		for _, r := range f.Rows {
			if v, ok := r[rule.alias]; ok {
				r[rule.canonical] = v
				delete(r, rule.alias)
			}
		}
		delete(f.Columns, rule.alias)
		f.Columns[rule.canonical] = true
	}
}
