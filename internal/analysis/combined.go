package analysis

// Risk levels, lowest to highest.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// RiskAssessment combines functional decline and emotional state into a
// single risk level.
type RiskAssessment struct {
	CombinedRiskLevel          string `json:"combined_risk_level"`
	BaseRiskLevel              string `json:"base_risk_level"`
	RiskRaised                 bool   `json:"risk_raised"`
	Reason                     string `json:"reason"`
	DeclineDetected            bool   `json:"decline_detected"`
	PersistentNegativeDetected bool   `json:"persistent_negative_detected"`
	EmotionTrend               string `json:"emotion_trend"`
	Recommendation             string `json:"recommendation"`
}

var baseRiskByState = map[string]string{
	"stable":           RiskLow,
	"mild_decline":     RiskMedium,
	"moderate_decline": RiskHigh,
	"high_risk":        RiskCritical,
}

var recommendations = map[string]string{
	RiskLow:      "Continue monitoring. Patient is functioning well.",
	RiskMedium:   "Increased monitoring recommended. Schedule check-in with caregiver.",
	RiskHigh:     "Immediate attention required. Consider medical consultation.",
	RiskCritical: "Urgent intervention needed. Contact healthcare provider immediately.",
}

// AssessCombinedRisk derives the combined risk level from the patient
// state, decline detection, negative-emotion persistence and the emotion
// trend. Both decline and persistence together raise the base level one
// step; persistence alone raises low to medium; a worsening trend raises
// low/medium one step.
func AssessCombinedRisk(patientState string, declineDetected, persistentNegative bool, emotionTrend string) RiskAssessment {
	base, ok := baseRiskByState[patientState]
	if !ok {
		base = RiskMedium
	}

	assessment := RiskAssessment{
		BaseRiskLevel:              base,
		DeclineDetected:            declineDetected,
		PersistentNegativeDetected: persistentNegative,
		EmotionTrend:               emotionTrend,
	}

	switch {
	case declineDetected && persistentNegative:
		assessment.CombinedRiskLevel = raiseRisk(base)
		assessment.RiskRaised = true
		assessment.Reason = "Both functional decline and persistent negative emotions detected"
	case declineDetected:
		assessment.CombinedRiskLevel = base
		assessment.Reason = "Functional decline detected, but emotional state is stable"
	case persistentNegative:
		assessment.CombinedRiskLevel = base
		if base == RiskLow {
			assessment.CombinedRiskLevel = RiskMedium
			assessment.RiskRaised = true
		}
		assessment.Reason = "Persistent negative emotions detected, but functional performance is stable"
	default:
		assessment.CombinedRiskLevel = base
		assessment.Reason = "No significant issues detected"
	}

	// A worsening trend escalates the level without flipping RiskRaised,
	// which only reports the decline/persistence escalation above.
	if emotionTrend == TrendWorsening &&
		(assessment.CombinedRiskLevel == RiskLow || assessment.CombinedRiskLevel == RiskMedium) {
		assessment.CombinedRiskLevel = raiseRisk(assessment.CombinedRiskLevel)
		assessment.Reason += "; Emotion trend is worsening"
	}

	assessment.Recommendation = recommendations[assessment.CombinedRiskLevel]
	return assessment
}

func raiseRisk(level string) string {
	switch level {
	case RiskLow:
		return RiskMedium
	case RiskMedium:
		return RiskHigh
	default:
		return RiskCritical
	}
}
