package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEmotion(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "anger", file: "гнев_запись_01", want: EmotionAnger},
		{name: "joy stem", file: "радостная_фраза", want: EmotionJoy},
		{name: "neutral cyrillic", file: "нейтральная_03", want: EmotionNeutral},
		{name: "neutral latin", file: "neutral_take2", want: EmotionNeutral},
		{name: "upper case", file: "ГНЕВ_05", want: EmotionAnger},
		{name: "no marker", file: "запись_77", want: EmotionOther},
		{name: "empty", file: "", want: EmotionOther},
		// the markers are substrings, so the check order decides
		{name: "anger beats joy", file: "гнев_и_радость", want: EmotionAnger},
		{name: "joy beats neutral", file: "радость_нейтр", want: EmotionJoy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectEmotion(tt.file))
		})
	}
}
