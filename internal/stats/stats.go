package stats

import (
	"slices"
	"time"

	constants "wordhero/internal/constants"
	models "wordhero/internal/models"
	storage "wordhero/internal/storage"
)

const dayFormat = "2006-01-02"

// Engine accumulates learning statistics from discrete gameplay events.
// All operations are append/merge over the persisted record; nothing is
// read destructively. The clock is injectable for streak tests.
type Engine struct {
	game *storage.GameStore
	now  func() time.Time
}

func NewEngine(game *storage.GameStore) *Engine {
	return &Engine{game: game, now: time.Now}
}

// NewEngineWithClock is for tests that need to steer calendar days.
func NewEngineWithClock(game *storage.GameStore, now func() time.Time) *Engine {
	return &Engine{game: game, now: now}
}

func (e *Engine) Load() models.Statistics {
	return e.game.LoadStatistics()
}

// RecordAnswer counts one answered question and updates the per-word
// history. A correct answer adds the word to the learned set once.
func (e *Engine) RecordAnswer(correct bool, wordID int) error {
	s := e.game.LoadStatistics()

	s.TotalQuestionsAnswered++
	if correct {
		s.CorrectAnswers++
		if wordID > 0 && !slices.Contains(s.WordsLearned, wordID) {
			s.WordsLearned = append(s.WordsLearned, wordID)
		}
	} else {
		s.WrongAnswers++
	}

	if wordID > 0 {
		h := s.PerWordHistory[wordID]
		h.Attempts++
		if correct {
			h.Correct++
		}
		s.PerWordHistory[wordID] = h
	}

	s.AverageAccuracy = roundPercent(s.CorrectAnswers, s.TotalQuestionsAnswered)
	return e.game.SaveStatistics(s)
}

// RecordSession counts one finished game session and maintains the daily
// streak: a play on the day after the last one extends the streak, a play
// on the same day leaves it alone, anything else restarts it at 1.
func (e *Engine) RecordSession(playTime time.Duration, bestCombo, level int, success bool) error {
	s := e.game.LoadStatistics()

	s.GamesPlayed++
	s.TotalPlayTime += playTime.Milliseconds()
	if bestCombo > s.BestCombo {
		s.BestCombo = bestCombo
	}

	now := e.now()
	today := now.Format(dayFormat)
	last := ""
	if s.LastPlayDate != nil {
		last = s.LastPlayDate.Format(dayFormat)
	}
	if last != today {
		if last == now.AddDate(0, 0, -1).Format(dayFormat) {
			s.DailyStreak++
		} else {
			s.DailyStreak = 1
		}
		s.LastPlayDate = &now
	}

	return e.game.SaveStatistics(s)
}

// RecordDailyActivity accumulates into today's activity bucket, creating
// it with zeros when absent.
func (e *Engine) RecordDailyActivity(questionsAnswered, correctAnswers, minutesSpent int) error {
	s := e.game.LoadStatistics()

	today := e.now().Format(dayFormat)
	day := s.DailyData[today]
	day.QuestionsAnswered += questionsAnswered
	day.CorrectAnswers += correctAnswers
	day.GamesPlayed++
	day.TimeSpent += minutesSpent
	s.DailyData[today] = day

	return e.game.SaveStatistics(s)
}

// LearningCurve returns the last seven calendar days including today, each
// with its rounded accuracy. Days without activity report zero.
func (e *Engine) LearningCurve() []models.LearningCurvePoint {
	s := e.game.LoadStatistics()

	points := make([]models.LearningCurvePoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		date := e.now().AddDate(0, 0, -offset).Format(dayFormat)
		day := s.DailyData[date]
		points = append(points, models.LearningCurvePoint{
			Date:              date,
			QuestionsAnswered: day.QuestionsAnswered,
			CorrectAnswers:    day.CorrectAnswers,
			Accuracy:          roundPercent(day.CorrectAnswers, day.QuestionsAnswered),
		})
	}
	return points
}

// Classify labels a word by its historical accuracy. The cut points are
// fixed policy: at least 80% is easy, at least 50% medium, anything below
// hard; a word with no attempts is unknown.
func (e *Engine) Classify(wordID int) models.WordDifficulty {
	s := e.game.LoadStatistics()
	h := s.PerWordHistory[wordID]

	result := models.WordDifficulty{
		WordID:          wordID,
		TotalAttempts:   h.Attempts,
		CorrectAttempts: h.Correct,
	}
	if h.Attempts == 0 {
		result.Difficulty = models.DifficultyUnknown
		return result
	}

	accuracy := float64(h.Correct) / float64(h.Attempts)
	switch {
	case accuracy >= constants.EasyAccuracyThreshold:
		result.Difficulty = models.DifficultyEasy
	case accuracy >= constants.MediumAccuracyThreshold:
		result.Difficulty = models.DifficultyMedium
	default:
		result.Difficulty = models.DifficultyHard
	}
	return result
}

// LearningStats builds the dashboard snapshot from statistics and progress.
func (e *Engine) LearningStats(p models.Progress) models.LearningStats {
	s := e.game.LoadStatistics()

	return models.LearningStats{
		TotalPlayTimeMinutes:   int(s.TotalPlayTime / 1000 / 60),
		StudyDays:              len(s.DailyData),
		Accuracy:               roundPercent(s.CorrectAnswers, s.TotalQuestionsAnswered),
		TotalQuestionsAnswered: s.TotalQuestionsAnswered,
		CorrectAnswers:         s.CorrectAnswers,
		BestCombo:              s.BestCombo,
		WordsLearned:           len(s.WordsLearned),
		CompletedLevels:        len(p.CompletedLevels),
		GamesPlayed:            s.GamesPlayed,
		DailyStreak:            s.DailyStreak,
		ReviewPending:          len(s.WordsNeedReview),
	}
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(float64(part)/float64(whole)*100 + 0.5)
}
