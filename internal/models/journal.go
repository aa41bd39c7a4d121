package models

import "time"

// JournalEntry represents an analyzed journal entry stored in the
// 'journal_entries' table. The entry text is encrypted at rest; Text is
// populated by the repository after decryption.
type JournalEntry struct {
	ID                  string    `db:"id" json:"id"`
	PatientID           string    `db:"patient_id" json:"patient_id"`
	TextEncrypted       string    `db:"text_encrypted" json:"-"`
	Text                string    `db:"-" json:"text"`
	Timestamp           time.Time `db:"timestamp" json:"timestamp"`
	PrimaryEmotion      string    `db:"primary_emotion" json:"primary_emotion"`
	PrimaryIntensity    int       `db:"primary_intensity" json:"primary_intensity"`
	PrimaryConfidence   float64   `db:"primary_confidence" json:"primary_confidence"`
	SecondaryEmotion    *string   `db:"secondary_emotion" json:"secondary_emotion,omitempty"`
	SecondaryIntensity  *int      `db:"secondary_intensity" json:"secondary_intensity,omitempty"`
	SecondaryConfidence *float64  `db:"secondary_confidence" json:"secondary_confidence,omitempty"`
	InterpretationTag   string    `db:"interpretation_tag" json:"interpretation_tag"`
	MoodRisk            bool      `db:"mood_risk" json:"mood_risk"`
	AudioURL            *string   `db:"audio_url" json:"audio_url,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}
