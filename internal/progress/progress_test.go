package progress

import (
	"slices"
	"testing"

	storage "wordhero/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return NewStore(storage.NewGameStore(fs))
}

func TestCompletePassedLevel(t *testing.T) {
	s := newTestStore(t)

	if err := s.Complete(1, true); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	p := s.Load()
	if !slices.Contains(p.CompletedLevels, 1) {
		t.Errorf("Level 1 should be completed, got %v", p.CompletedLevels)
	}
	if !slices.Contains(p.UnlockedLevels, 2) {
		t.Errorf("Level 2 should be unlocked, got %v", p.UnlockedLevels)
	}
	if p.CurrentLevel != 2 {
		t.Errorf("currentLevel = %d, want 2", p.CurrentLevel)
	}
	if p.TotalScore != 10 {
		t.Errorf("totalScore = %d, want level reward of 10", p.TotalScore)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Complete(1, true); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
	}

	p := s.Load()
	if count := len(p.CompletedLevels); count != 1 {
		t.Errorf("Level 1 recorded %d times, want once", count)
	}
	if p.TotalScore != 10 {
		t.Errorf("Reward granted more than once, totalScore = %d", p.TotalScore)
	}
}

func TestCompleteFailedLevel(t *testing.T) {
	s := newTestStore(t)

	if err := s.Complete(1, false); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	p := s.Load()
	if len(p.CompletedLevels) != 0 {
		t.Errorf("Failed attempt should not complete anything, got %v", p.CompletedLevels)
	}
	if slices.Contains(p.UnlockedLevels, 2) {
		t.Error("Failed attempt should not unlock level 2")
	}
	if p.CurrentLevel != 1 {
		t.Errorf("currentLevel = %d, want 1", p.CurrentLevel)
	}
}

func TestCompleteLockedLevelIgnored(t *testing.T) {
	s := newTestStore(t)

	if err := s.Complete(5, true); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	p := s.Load()
	if len(p.CompletedLevels) != 0 {
		t.Errorf("Locked level must not be completable, got %v", p.CompletedLevels)
	}
}

func TestCompleteOutOfRange(t *testing.T) {
	s := newTestStore(t)

	if err := s.Complete(0, true); err != nil {
		t.Errorf("Out-of-range level should be a no-op, got %v", err)
	}
	if err := s.Complete(101, true); err != nil {
		t.Errorf("Out-of-range level should be a no-op, got %v", err)
	}
	if p := s.Load(); len(p.CompletedLevels) != 0 {
		t.Errorf("Nothing should be completed, got %v", p.CompletedLevels)
	}
}

func TestCompleteFinalLevel(t *testing.T) {
	s := newTestStore(t)

	for level := 1; level <= 100; level++ {
		if err := s.Complete(level, true); err != nil {
			t.Fatalf("Complete(%d) failed: %v", level, err)
		}
	}

	p := s.Load()
	if len(p.CompletedLevels) != 100 {
		t.Errorf("Completed %d levels, want 100", len(p.CompletedLevels))
	}
	if p.CurrentLevel != 100 {
		t.Errorf("currentLevel = %d, should stay at the cap", p.CurrentLevel)
	}
	if slices.Contains(p.UnlockedLevels, 101) {
		t.Error("There is no level 101 to unlock")
	}
}

func TestUnlockIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Unlock(2); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if err := s.Unlock(2); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	count := 0
	for _, id := range s.Load().UnlockedLevels {
		if id == 2 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Level 2 unlocked %d times, want once", count)
	}
}

func TestAddScore(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddScore(550); err != nil {
		t.Fatalf("AddScore failed: %v", err)
	}
	if err := s.AddScore(0); err != nil {
		t.Fatalf("AddScore failed: %v", err)
	}
	if got := s.Load().TotalScore; got != 550 {
		t.Errorf("totalScore = %d, want 550", got)
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)

	if err := s.Complete(1, true); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	p := s.Load()
	if p.CurrentLevel != 1 || p.TotalScore != 0 || len(p.CompletedLevels) != 0 {
		t.Errorf("Reset did not restore defaults: %+v", p)
	}
	if len(p.UnlockedLevels) != 1 || p.UnlockedLevels[0] != 1 {
		t.Errorf("Only level 1 should be unlocked after reset, got %v", p.UnlockedLevels)
	}
}
