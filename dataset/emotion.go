package dataset

import "strings"

// Emotion labels. The corpus file names embed the Russian emotion words,
// so the labels keep the original spellings.
const (
	EmotionAnger   = "гнев"
	EmotionJoy     = "радость"
	EmotionNeutral = "нейтральная"
	EmotionOther   = "другое"
)

// DetectEmotion derives the utterance emotion from its file name. Checks
// run in a fixed order (anger, joy, neutral) because the markers are
// substrings and a name may contain more than one.
func DetectEmotion(name string) string {
	s := strings.ToLower(name)
	switch {
	case strings.Contains(s, "гнев"):
		return EmotionAnger
	case strings.Contains(s, "радост"):
		return EmotionJoy
	case strings.Contains(s, "нейтр"), strings.Contains(s, "neutr"):
		return EmotionNeutral
	}
	return EmotionOther
}
