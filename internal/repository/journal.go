package repository

import (
	"fmt"
	"time"

	"alzmate/internal/crypto"
	"alzmate/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type JournalRepository interface {
	SaveEntry(entry *models.JournalEntry) error
	GetEntries(patientID string, start, end *time.Time, limit int) ([]models.JournalEntry, error)
}

type journalRepository struct {
	db        *sqlx.DB
	masterKey []byte
	logger    *zap.Logger
}

// NewJournalRepository creates the journal entry repository. Entry text is
// encrypted with the master key before it reaches the database.
func NewJournalRepository(db *sqlx.DB, masterKey []byte, logger *zap.Logger) JournalRepository {
	return &journalRepository{db: db, masterKey: masterKey, logger: logger}
}

func (r *journalRepository) SaveEntry(entry *models.JournalEntry) error {
	encrypted, err := crypto.Encrypt(entry.Text, r.masterKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt journal text: %w", err)
	}
	entry.TextEncrypted = encrypted

	query := `INSERT INTO journal_entries
		(id, patient_id, text_encrypted, timestamp, primary_emotion, primary_intensity, primary_confidence,
		 secondary_emotion, secondary_intensity, secondary_confidence, interpretation_tag, mood_risk, audio_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`
	return r.db.QueryRowx(query,
		entry.ID, entry.PatientID, entry.TextEncrypted, entry.Timestamp,
		entry.PrimaryEmotion, entry.PrimaryIntensity, entry.PrimaryConfidence,
		entry.SecondaryEmotion, entry.SecondaryIntensity, entry.SecondaryConfidence,
		entry.InterpretationTag, entry.MoodRisk, entry.AudioURL,
	).Scan(&entry.CreatedAt)
}

// GetEntries returns entries newest first, optionally bounded by start/end
// and limited to limit rows (0 = no limit). Entry text is decrypted before
// returning; an undecryptable row is returned without text rather than
// failing the whole query.
func (r *journalRepository) GetEntries(patientID string, start, end *time.Time, limit int) ([]models.JournalEntry, error) {
	query := `SELECT id, patient_id, text_encrypted, timestamp, primary_emotion, primary_intensity, primary_confidence,
		secondary_emotion, secondary_intensity, secondary_confidence, interpretation_tag, mood_risk, audio_url, created_at
		FROM journal_entries WHERE patient_id = $1`
	args := []interface{}{patientID}

	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND timestamp <= $%d", len(args))
	}
	query += " ORDER BY timestamp DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var entries []models.JournalEntry
	if err := r.db.Select(&entries, query, args...); err != nil {
		return nil, err
	}

	for i := range entries {
		text, err := crypto.Decrypt(entries[i].TextEncrypted, r.masterKey)
		if err != nil {
			r.logger.Warn("Failed to decrypt journal entry text",
				zap.String("entry_id", entries[i].ID), zap.Error(err))
			continue
		}
		entries[i].Text = text
	}

	return entries, nil
}
