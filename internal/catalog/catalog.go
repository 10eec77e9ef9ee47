package catalog

import (
	"fmt"
	"slices"

	constants "wordhero/internal/constants"
	models "wordhero/internal/models"
)

// LevelAt builds the level definition for n. Pure and deterministic: the
// same n always yields the same word assignment.
//
// Levels 1..10 take disjoint contiguous 30-word blocks. Levels above 10
// wrap around the 300-word base pool modulo its size, so later levels
// deliberately repeat earlier words instead of running out.
func LevelAt(n int) (models.Level, bool) {
	if n < 1 || n > constants.MaxLevel {
		return models.Level{}, false
	}

	wordIDs := make([]int, 0, constants.WordsPerLevel)
	if n <= 10 {
		start := (n - 1) * constants.WordsPerLevel
		for i := 0; i < constants.WordsPerLevel; i++ {
			wordIDs = append(wordIDs, start+i+1)
		}
	} else {
		start := ((n - 1) * constants.WordsPerLevel) % constants.BaseWordPool
		for i := 0; i < constants.WordsPerLevel; i++ {
			wordIDs = append(wordIDs, (start+i)%constants.BaseWordPool+1)
		}
	}

	return models.Level{
		ID:         n,
		Name:       fmt.Sprintf("Level %d", n),
		Difficulty: (n + 9) / 10,
		WordIDs:    wordIDs,
		Requirements: models.LevelRequirements{
			QuestionsCount: constants.QuestionsPerLevel,
			PassingScore:   constants.PassingScore,
			MaxLives:       constants.MaxLives,
		},
		Rewards: models.LevelRewards{
			Exp:        n * 10,
			UnlockNext: n < constants.MaxLevel,
		},
		IsUnlocked: n == 1,
	}, true
}

// LevelView returns the level with unlock/completion flags computed from
// progress. Flags are never stored on the level itself.
func LevelView(n int, p models.Progress) (models.Level, bool) {
	level, ok := LevelAt(n)
	if !ok {
		return models.Level{}, false
	}
	level.IsUnlocked = slices.Contains(p.UnlockedLevels, n)
	level.IsCompleted = slices.Contains(p.CompletedLevels, n)
	return level, true
}

// AllLevels returns the full 100-level grid with flags from progress, for
// menu rendering.
func AllLevels(p models.Progress) []models.Level {
	levels := make([]models.Level, 0, constants.MaxLevel)
	for n := 1; n <= constants.MaxLevel; n++ {
		level, _ := LevelView(n, p)
		levels = append(levels, level)
	}
	return levels
}

// LevelWords resolves a level's word ids through the provider. Ids missing
// from the pool are skipped; callers decide whether the remainder is enough
// to start a session.
func LevelWords(level models.Level, provider models.VocabularyProvider) []models.Word {
	words := make([]models.Word, 0, len(level.WordIDs))
	for _, id := range level.WordIDs {
		if w, ok := provider.WordByID(id); ok {
			words = append(words, w)
		}
	}
	return words
}
