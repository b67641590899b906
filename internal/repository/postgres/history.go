package postgres

import (
	"database/sql"
	"time"

	"nepalidate/internal/repository"
)

// HistoryRepo implements repository.HistoryRepository
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// SaveResolution stores the token resolved for a Gregorian day
func (r *HistoryRepo) SaveResolution(date time.Time, token string) error {
	query := `
		INSERT INTO resolutions (gregorian_date, token)
		VALUES ($1, $2)
		ON CONFLICT (gregorian_date)
		DO UPDATE SET token = EXCLUDED.token, resolved_at = NOW()
	`
	_, err := r.db.Exec(query, repository.DayKey(date), token)
	return err
}

// GetResolution returns the stored token for a Gregorian day.
// An empty string means nothing is stored.
func (r *HistoryRepo) GetResolution(date time.Time) (string, error) {
	var token string
	query := `SELECT token FROM resolutions WHERE gregorian_date = $1`
	err := r.db.QueryRow(query, repository.DayKey(date)).Scan(&token)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

// CleanOldResolutions deletes resolutions older than specified days
func (r *HistoryRepo) CleanOldResolutions(days int) error {
	query := `
		DELETE FROM resolutions
		WHERE resolved_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
