package emotion

import "strings"

// Canonical emotion labels.
const (
	Happy      = "happy"
	Sad        = "sad"
	Angry      = "angry"
	Anxious    = "anxious"
	Fearful    = "fearful"
	Confused   = "confused"
	Frustrated = "frustrated"
	Calm       = "calm"
	Lonely     = "lonely"
	Depressed  = "depressed/low mood"
	Neutral    = "neutral"
)

// Labels is the set of canonical labels the classifier can emit
// (Neutral excluded: it only appears when no signal is found).
var Labels = []string{
	Happy, Sad, Angry, Anxious, Fearful,
	Confused, Frustrated, Calm, Lonely, Depressed,
}

var labelAliases = map[string]string{
	"joy":         Happy,
	"happiness":   Happy,
	"sadness":     Sad,
	"sorrow":      Sad,
	"anger":       Angry,
	"rage":        Angry,
	"anxiety":     Anxious,
	"fear":        Fearful,
	"frightened":  Fearful,
	"confusion":   Confused,
	"frustration": Frustrated,
	"peace":       Calm,
	"peaceful":    Calm,
	"loneliness":  Lonely,
	"alone":       Lonely,
	"depressed":   Depressed,
	"depression":  Depressed,
	"low mood":    Depressed,
	"low":         Depressed,
}

var negativeLabels = map[string]bool{
	Sad:        true,
	Angry:      true,
	Anxious:    true,
	Fearful:    true,
	Confused:   true,
	Frustrated: true,
	Lonely:     true,
	Depressed:  true,
}

// NormalizeLabel maps a raw label onto the canonical set. Unknown labels
// are returned unchanged.
func NormalizeLabel(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))

	if alias, ok := labelAliases[lower]; ok {
		return alias
	}
	for _, canonical := range Labels {
		if lower == canonical {
			return canonical
		}
	}
	for _, canonical := range Labels {
		if strings.Contains(lower, canonical) || strings.Contains(canonical, lower) {
			return canonical
		}
	}

	switch {
	case strings.Contains(lower, "joy"), strings.Contains(lower, "happ"):
		return Happy
	case strings.Contains(lower, "sad"), strings.Contains(lower, "sorrow"):
		return Sad
	case strings.Contains(lower, "ang"), strings.Contains(lower, "rage"):
		return Angry
	case strings.Contains(lower, "anx"):
		return Anxious
	case strings.Contains(lower, "fear"):
		return Fearful
	case strings.Contains(lower, "confus"):
		return Confused
	case strings.Contains(lower, "frustrat"):
		return Frustrated
	case strings.Contains(lower, "calm"), strings.Contains(lower, "peace"):
		return Calm
	case strings.Contains(lower, "lone"):
		return Lonely
	case strings.Contains(lower, "depress"):
		return Depressed
	}

	return lower
}

// IsNegative reports whether a canonical label belongs to the negative
// emotion set used for mood-risk and trend analysis.
func IsNegative(label string) bool {
	return negativeLabels[label]
}

var tagDescriptors = map[string]string{
	Happy:      "positive mood",
	Sad:        "sadness",
	Angry:      "distress",
	Anxious:    "anxiety",
	Fearful:    "fear",
	Confused:   "confusion",
	Frustrated: "frustration",
	Calm:       "calmness",
	Lonely:     "loneliness",
	Depressed:  "low mood",
}

// InterpretationTag renders a human-readable tag for an emotion at a
// given intensity, e.g. "high anxiety" or "mild sadness".
func InterpretationTag(label string, intensity int) string {
	level := "mild"
	switch {
	case intensity >= 70:
		level = "high"
	case intensity >= 50:
		level = "moderate"
	}

	descriptor, ok := tagDescriptors[label]
	if !ok {
		descriptor = label
	}
	return level + " " + descriptor
}
