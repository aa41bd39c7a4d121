package emotion

import (
	"math"
	"sort"
	"strings"
)

// Score describes one detected emotion.
type Score struct {
	Emotion           string  `json:"emotion"`
	Confidence        float64 `json:"confidence"`
	Intensity         int     `json:"intensity"`
	InterpretationTag string  `json:"interpretation_tag"`
}

// Result is the full classification of one journal entry.
type Result struct {
	Primary           Score  `json:"primary_emotion"`
	Secondary         *Score `json:"secondary_emotion,omitempty"`
	InterpretationTag string `json:"interpretation_tag"`
	MoodRisk          bool   `json:"mood_risk"`
	ProcessedText     string `json:"processed_text,omitempty"`
}

// Mood-risk thresholds: primary negative intensity >= 70, or secondary
// negative intensity >= 60.
const (
	primaryRiskIntensity   = 70
	secondaryRiskIntensity = 60
)

// Secondary emotion retention rule.
const (
	secondaryMinConfidence = 0.1
	secondaryMinIntensity  = 30
)

// Analyze preprocesses the text and classifies it. Blank input yields a
// neutral result. If preprocessing strips everything, the raw text is
// classified instead.
func Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return neutralResult("")
	}

	processed := Preprocess(text)
	if processed == "" {
		processed = text
	}

	result := Classify(processed)
	result.ProcessedText = processed
	return result
}

// Classify scores already-normalized text against the lexicon. Evidence
// per emotion is a weighted keyword count; confidence combines the
// emotion's share of total evidence with a saturation term so a single
// weak keyword never saturates intensity.
func Classify(text string) Result {
	text = strings.ToLower(text)
	tokens := tokenize(text)

	raw := make(map[string]float64)

	for label, terms := range lexicon {
		for _, t := range terms {
			if strings.Contains(t.term, " ") {
				if n := strings.Count(text, t.term); n > 0 {
					raw[label] += t.weight * float64(n)
				}
			}
		}
	}

	for i, tok := range tokens {
		for label, terms := range lexicon {
			for _, t := range terms {
				if strings.Contains(t.term, " ") || tok != t.term {
					continue
				}
				weight := t.weight
				if i > 0 {
					switch prev := tokens[i-1]; {
					case negationWords[prev]:
						weight = 0
					case boosterWords[prev]:
						weight *= 1.3
					case dampenerWords[prev]:
						weight *= 0.6
					}
				}
				raw[label] += weight
			}
		}
	}

	// Exclamation marks amplify everything that matched.
	if n := strings.Count(text, "!"); n > 0 {
		factor := 1.0 + 0.1*math.Min(float64(n), 3)
		for label := range raw {
			raw[label] *= factor
		}
	}

	var total float64
	for _, v := range raw {
		total += v
	}
	if total == 0 {
		return neutralResult(text)
	}

	type candidate struct {
		label string
		raw   float64
	}
	ranked := make([]candidate, 0, len(raw))
	for label, v := range raw {
		if v > 0 {
			ranked = append(ranked, candidate{label, v})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].raw != ranked[j].raw {
			return ranked[i].raw > ranked[j].raw
		}
		return ranked[i].label < ranked[j].label
	})

	primary := scoreFor(ranked[0].label, ranked[0].raw, total)

	var secondary *Score
	if len(ranked) > 1 {
		s := scoreFor(ranked[1].label, ranked[1].raw, total)
		if s.Confidence >= secondaryMinConfidence || s.Intensity >= secondaryMinIntensity {
			secondary = &s
		}
	}

	moodRisk := IsNegative(primary.Emotion) && primary.Intensity >= primaryRiskIntensity
	if !moodRisk && secondary != nil {
		moodRisk = IsNegative(secondary.Emotion) && secondary.Intensity >= secondaryRiskIntensity
	}

	return Result{
		Primary:           primary,
		Secondary:         secondary,
		InterpretationTag: primary.InterpretationTag,
		MoodRisk:          moodRisk,
	}
}

func scoreFor(label string, rawScore, total float64) Score {
	share := rawScore / total
	saturation := rawScore / (1 + rawScore)
	confidence := share * saturation

	intensity := int(math.Round(confidence * 100))
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 100 {
		intensity = 100
	}

	return Score{
		Emotion:           label,
		Confidence:        math.Round(confidence*10000) / 10000,
		Intensity:         intensity,
		InterpretationTag: InterpretationTag(label, intensity),
	}
}

func neutralResult(processed string) Result {
	return Result{
		Primary: Score{
			Emotion:           Neutral,
			Confidence:        0,
			Intensity:         0,
			InterpretationTag: "no emotion detected",
		},
		InterpretationTag: "no emotion detected",
		MoodRisk:          false,
		ProcessedText:     processed,
	}
}

// tokenize splits text into lowercase words with surrounding punctuation
// stripped. Apostrophes are kept so negation forms like "can't" survive.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r == '\'' || r == '_' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
			('0' <= r && r <= '9'))
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
