package memory

import (
	"sync"
	"time"

	"nepalidate/internal/repository"
)

type entry struct {
	token      string
	resolvedAt time.Time
}

// HistoryRepo keeps resolutions in process memory
type HistoryRepo struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewHistoryRepo creates an empty in-memory history
func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SaveResolution stores the token resolved for a Gregorian day
func (r *HistoryRepo) SaveResolution(date time.Time, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[repository.DayKey(date)] = entry{token: token, resolvedAt: r.now()}
	return nil
}

// GetResolution returns the stored token for a Gregorian day
func (r *HistoryRepo) GetResolution(date time.Time) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[repository.DayKey(date)].token, nil
}

// CleanOldResolutions deletes resolutions older than specified days
func (r *HistoryRepo) CleanOldResolutions(days int) error {
	cutoff := r.now().AddDate(0, 0, -days)

	r.mu.Lock()
	defer r.mu.Unlock()
	for key, e := range r.entries {
		if e.resolvedAt.Before(cutoff) {
			delete(r.entries, key)
		}
	}
	return nil
}
