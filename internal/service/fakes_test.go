package service

import (
	"database/sql"
	"time"

	"alzmate/internal/models"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users map[string]*models.User
	links map[string][]string // patient -> caregivers
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*models.User),
		links: make(map[string][]string),
	}
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) ListPatients() ([]*models.User, error) {
	var patients []*models.User
	for _, u := range f.users {
		if u.Role == models.RolePatient {
			patients = append(patients, u)
		}
	}
	return patients, nil
}

func (f *fakeUserRepo) SetTelegramChatID(username string, chatID int64) error {
	u, ok := f.users[username]
	if !ok {
		return sql.ErrNoRows
	}
	u.TelegramChatID = &chatID
	return nil
}

func (f *fakeUserRepo) LinkCaregiver(patientID, caregiverID string) error {
	for _, existing := range f.links[patientID] {
		if existing == caregiverID {
			return nil
		}
	}
	f.links[patientID] = append(f.links[patientID], caregiverID)
	return nil
}

func (f *fakeUserRepo) GetCaregiversForPatient(patientID string) ([]*models.User, error) {
	var caregivers []*models.User
	for _, username := range f.links[patientID] {
		if u, ok := f.users[username]; ok {
			caregivers = append(caregivers, u)
		}
	}
	return caregivers, nil
}

type fakeJournalRepo struct {
	entries []models.JournalEntry
	saveErr error
}

func (f *fakeJournalRepo) SaveEntry(entry *models.JournalEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJournalRepo) GetEntries(patientID string, start, end *time.Time, limit int) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, e := range f.entries {
		if e.PatientID != patientID {
			continue
		}
		if start != nil && e.Timestamp.Before(*start) {
			continue
		}
		if end != nil && e.Timestamp.After(*end) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeTaskRepo struct {
	reminders map[int64]*models.Reminder
	scores    []models.GameScore
	nextID    int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{reminders: make(map[int64]*models.Reminder)}
}

func (f *fakeTaskRepo) CreateReminder(reminder *models.Reminder) error {
	f.nextID++
	reminder.ID = f.nextID
	reminder.CreatedAt = time.Now()
	clone := *reminder
	f.reminders[reminder.ID] = &clone
	return nil
}

func (f *fakeTaskRepo) GetReminderByID(id int64) (*models.Reminder, error) {
	r, ok := f.reminders[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeTaskRepo) MarkReminderCompleted(id int64, completedAt time.Time) error {
	r := f.reminders[id]
	r.IsCompleted = true
	r.IsMissed = false
	r.CompletedAt = &completedAt
	return nil
}

func (f *fakeTaskRepo) MarkReminderMissed(id int64) error {
	r := f.reminders[id]
	r.IsMissed = true
	r.IsCompleted = false
	r.CompletedAt = nil
	return nil
}

func (f *fakeTaskRepo) GetRemindersForPeriod(patientID string, start, end time.Time) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if r.PatientID == patientID && !r.ScheduledAt.Before(start) && !r.ScheduledAt.After(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) CreateGameScore(score *models.GameScore) error {
	score.ID = int64(len(f.scores) + 1)
	score.CreatedAt = time.Now()
	f.scores = append(f.scores, *score)
	return nil
}

func (f *fakeTaskRepo) GetGameScoresForPeriod(patientID string, start, end time.Time) ([]models.GameScore, error) {
	var out []models.GameScore
	for _, s := range f.scores {
		if s.PatientID == patientID && !s.PlayedAt.Before(start) && !s.PlayedAt.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (f *fakeNotificationRepo) Create(notification *models.Notification) error {
	notification.ID = int64(len(f.notifications) + 1)
	notification.CreatedAt = time.Now()
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) ListForRecipient(recipientID string, unreadOnly bool) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id int64, recipientID string) error {
	for i, n := range f.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			f.notifications[i].Read = true
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeProgressRepo struct {
	weeklyScores []models.WeeklyScore
	baseline     *models.Baseline
}

func (f *fakeProgressRepo) SaveWeeklyScore(score *models.WeeklyScore) error {
	score.ID = int64(len(f.weeklyScores) + 1)
	score.CreatedAt = time.Now()
	f.weeklyScores = append(f.weeklyScores, *score)
	return nil
}

func (f *fakeProgressRepo) GetOldestScores(patientID string, limit int) ([]models.WeeklyScore, error) {
	return f.scoresFor(patientID, limit, false), nil
}

func (f *fakeProgressRepo) GetRecentScores(patientID string, limit int) ([]models.WeeklyScore, error) {
	return f.scoresFor(patientID, limit, true), nil
}

func (f *fakeProgressRepo) scoresFor(patientID string, limit int, newestFirst bool) []models.WeeklyScore {
	var out []models.WeeklyScore
	for _, s := range f.weeklyScores {
		if s.PatientID == patientID {
			out = append(out, s)
		}
	}
	// Stored in insertion order, oldest first.
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeProgressRepo) GetPreviousScore(patientID string, before time.Time) (*models.WeeklyScore, error) {
	var best *models.WeeklyScore
	for i := range f.weeklyScores {
		s := &f.weeklyScores[i]
		if s.PatientID != patientID || !s.WeekStart.Before(before) {
			continue
		}
		if best == nil || s.WeekStart.After(best.WeekStart) {
			best = s
		}
	}
	if best == nil {
		return nil, nil
	}
	clone := *best
	return &clone, nil
}

func (f *fakeProgressRepo) SaveBaseline(baseline *models.Baseline) error {
	baseline.ID = 1
	clone := *baseline
	f.baseline = &clone
	return nil
}

func (f *fakeProgressRepo) GetBaseline(patientID string) (*models.Baseline, error) {
	if f.baseline == nil || f.baseline.PatientID != patientID {
		return nil, nil
	}
	clone := *f.baseline
	return &clone, nil
}

type fakeSender struct {
	alerts []string
}

func (f *fakeSender) SendAlert(chatID int64, title, message string) error {
	f.alerts = append(f.alerts, title)
	return nil
}
