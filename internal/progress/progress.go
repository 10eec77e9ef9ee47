package progress

import (
	"slices"
	"time"

	constants "wordhero/internal/constants"
	models "wordhero/internal/models"
	storage "wordhero/internal/storage"
	util "wordhero/internal/util"
)

// Store is the unlock/completion state machine. Every mutation is a scoped
// read-modify-write against the persisted progress record; there is no
// in-memory copy holding authority.
type Store struct {
	game *storage.GameStore
}

func NewStore(game *storage.GameStore) *Store {
	return &Store{game: game}
}

func (s *Store) Load() models.Progress {
	return s.game.LoadProgress()
}

// Unlock adds the level to the unlocked set. Idempotent; out-of-range ids
// are ignored.
func (s *Store) Unlock(levelID int) error {
	if levelID < 1 || levelID > constants.MaxLevel {
		return nil
	}
	p := s.game.LoadProgress()
	if slices.Contains(p.UnlockedLevels, levelID) {
		return nil
	}
	p.UnlockedLevels = append(p.UnlockedLevels, levelID)
	return s.game.SaveProgress(p)
}

// Complete records a finished level attempt. A pass marks the level
// completed, unlocks the next one and advances currentLevel; levels are
// never locked again afterwards. A failed attempt changes nothing here.
func (s *Store) Complete(levelID int, passed bool) error {
	if levelID < 1 || levelID > constants.MaxLevel {
		return nil
	}

	p := s.game.LoadProgress()
	if !slices.Contains(p.UnlockedLevels, levelID) {
		util.LogWarn("Ignoring completion of locked level %d", levelID)
		return nil
	}
	if !passed {
		return nil
	}

	if !slices.Contains(p.CompletedLevels, levelID) {
		p.CompletedLevels = append(p.CompletedLevels, levelID)
		p.TotalScore += levelID * 10
	}

	next := levelID + 1
	if next <= constants.MaxLevel && !slices.Contains(p.UnlockedLevels, next) {
		p.UnlockedLevels = append(p.UnlockedLevels, next)
	}
	if next > p.CurrentLevel && next <= constants.MaxLevel {
		p.CurrentLevel = next
	}
	p.LastPlayedDate = time.Now()

	return s.game.SaveProgress(p)
}

// AddScore accrues session points into the running total.
func (s *Store) AddScore(points int) error {
	if points <= 0 {
		return nil
	}
	p := s.game.LoadProgress()
	p.TotalScore += points
	return s.game.SaveProgress(p)
}

// Reset returns progress to its initial state: only level 1 unlocked,
// nothing completed.
func (s *Store) Reset() error {
	return s.game.SaveProgress(storage.DefaultProgress())
}
