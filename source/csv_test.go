package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceRows(t *testing.T) {
	path := writeFile(t, "rus.csv",
		"File Name,Transcription,Persent Duration\n"+
			"гнев_01,vowel,10\n"+
			"гнев_01,consonant,5\n")

	src := NewCSV(path)
	rows, err := src.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "гнев_01", rows[0]["File Name"])
	assert.Equal(t, "vowel", rows[0]["Transcription"])
	assert.Equal(t, "10", rows[0]["Persent Duration"])
	assert.Equal(t, path, src.Name())
}

func TestCSVSourceRaggedRows(t *testing.T) {
	path := writeFile(t, "short.csv",
		"file_name,transcription_phonemes,percent_duration\n"+
			"u1,vowel\n")

	rows, err := NewCSV(path).Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["percent_duration"], "missing cell stays empty")
}

func TestCSVSourceBOM(t *testing.T) {
	path := writeFile(t, "bom.csv", "\ufefffile_name,percent_duration\nu1,10\n")

	rows, err := NewCSV(path).Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0]["file_name"])
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := NewCSV(filepath.Join(t.TempDir(), "nope.csv")).Rows()
	assert.Error(t, err)
}

func TestOpenByExtension(t *testing.T) {
	tests := []struct {
		path    string
		want    any
		wantErr bool
	}{
		{path: "rus.xlsx", want: &XLSXSource{}},
		{path: "rus.XLSX", want: &XLSXSource{}},
		{path: "rus.csv", want: &CSVSource{}},
		{path: "rus.ods", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			src, err := Open(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, src)
		})
	}
}
