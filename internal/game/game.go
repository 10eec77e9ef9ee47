package game

import (
	"errors"
	"slices"
	"time"

	catalog "wordhero/internal/catalog"
	constants "wordhero/internal/constants"
	models "wordhero/internal/models"
	progress "wordhero/internal/progress"
	quiz "wordhero/internal/quiz"
	stats "wordhero/internal/stats"
	util "wordhero/internal/util"
)

var (
	ErrInvalidLevel    = errors.New(constants.ErrorCodeInvalidLevel)
	ErrLevelLocked     = errors.New(constants.ErrorCodeLevelLocked)
	ErrEmptyLevelData  = errors.New(constants.ErrorCodeEmptyLevelData)
	ErrSessionFinished = errors.New(constants.ErrorCodeSessionFinished)
	ErrInvalidOption   = errors.New(constants.ErrorCodeInvalidOption)
	ErrNothingToReview = errors.New(constants.ErrorCodeNothingToReview)
)

// Engine drives one learner's gameplay: it starts sessions, scores
// answers and feeds the outcome into progress and statistics. All state
// lives in the GameSession the caller holds; the engine itself is
// stateless between calls.
type Engine struct {
	vocab    models.VocabularyProvider
	gen      *quiz.Generator
	progress *progress.Store
	stats    *stats.Engine
}

func NewEngine(vocab models.VocabularyProvider, gen *quiz.Generator, p *progress.Store, s *stats.Engine) *Engine {
	return &Engine{vocab: vocab, gen: gen, progress: p, stats: s}
}

// AnswerResult reports the outcome of a single submitted answer.
type AnswerResult struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
	Combo        int    `json:"combo"`
	Lives        int    `json:"lives"`
	Score        int    `json:"score"`
	Finished     bool   `json:"finished"`
	Word         string `json:"word"`
}

// LevelResult summarizes a finished session for the result screen.
type LevelResult struct {
	LevelID      int                  `json:"levelId"`
	IsReview     bool                 `json:"isReview"`
	Passed       bool                 `json:"passed"`
	Score        int                  `json:"score"`
	CorrectCount int                  `json:"correctCount"`
	Questions    int                  `json:"questions"`
	BestCombo    int                  `json:"bestCombo"`
	PlayTime     int64                `json:"playTime"`
	WrongAnswers []models.WrongAnswer `json:"wrongAnswers"`
	NextLevel    int                  `json:"nextLevel,omitempty"`
}

// StartLevel generates a fresh session for an unlocked level. A level that
// resolves to zero questions aborts the start; the caller must surface the
// failure instead of playing a shorter session.
func (e *Engine) StartLevel(levelID int) (*models.GameSession, error) {
	level, ok := catalog.LevelView(levelID, e.progress.Load())
	if !ok {
		return nil, ErrInvalidLevel
	}
	if !level.IsUnlocked {
		return nil, ErrLevelLocked
	}

	words := catalog.LevelWords(level, e.vocab)
	questions := e.gen.Generate(words, level.Requirements.QuestionsCount)
	if len(questions) == 0 {
		util.LogWarn("Level %d produced no questions (%d words resolved)", levelID, len(words))
		return nil, ErrEmptyLevelData
	}

	util.LogInfo("Starting level %d with %d questions", levelID, len(questions))
	return newSession(levelID, false, questions), nil
}

// StartReview builds a session from the flagged-word queue, capped at ten
// questions.
func (e *Engine) StartReview() (*models.GameSession, error) {
	pending := e.stats.PendingReview()
	if len(pending) == 0 {
		return nil, ErrNothingToReview
	}

	count := min(constants.MaxReviewQuestions, len(pending))
	questions := e.gen.GenerateReview(pending, count)
	if len(questions) == 0 {
		return nil, ErrEmptyLevelData
	}

	util.LogInfo("Starting review session with %d of %d pending words", len(questions), len(pending))
	return newSession(0, true, questions), nil
}

// Answer scores the current question, records the per-answer statistics
// and advances the session. The session becomes terminal when the lives
// run out or the last question was answered.
func (e *Engine) Answer(s *models.GameSession, optionIndex int) (*AnswerResult, error) {
	if s.Finished {
		return nil, ErrSessionFinished
	}

	q := s.Questions[s.CurrentIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return nil, ErrInvalidOption
	}

	correct := q.Options[optionIndex] == q.CorrectAnswer
	if err := e.stats.RecordAnswer(correct, q.WordID); err != nil {
		util.LogWarn("Failed to persist answer for word %d: %v", q.WordID, err)
	}

	if correct {
		s.Combo++
		s.Score += 10 * s.Combo
		s.CorrectCount++
		if s.Combo > s.BestCombo {
			s.BestCombo = s.Combo
		}
	} else {
		s.Lives--
		s.Combo = 0
		s.WrongAnswers = append(s.WrongAnswers, models.WrongAnswer{
			WordID:        q.WordID,
			Word:          q.Word,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.Options[optionIndex],
		})
	}
	s.LastAccessTime = time.Now()

	switch {
	case s.Lives <= 0:
		s.Finished = true
		s.Passed = false
	case s.CurrentIndex >= len(s.Questions)-1:
		s.Finished = true
		s.Passed = s.CorrectCount >= constants.PassingScore || (s.IsReview && s.Lives > 0)
	default:
		s.CurrentIndex++
	}

	return &AnswerResult{
		Correct:      correct,
		CorrectIndex: q.CorrectIndex,
		Combo:        s.Combo,
		Lives:        s.Lives,
		Score:        s.Score,
		Finished:     s.Finished,
		Word:         q.Word,
	}, nil
}

// Finish records the session outcome. A passed level completes in the
// progress store (unlocking the next one) and accrues the session score;
// a passed review session clears the correctly answered words from the
// queue. Failed attempts only leave statistics behind.
func (e *Engine) Finish(s *models.GameSession) (*LevelResult, error) {
	if !s.Finished {
		s.Finished = true
		s.Passed = false
	}

	playTime := time.Since(s.StartTime)
	answered := s.CorrectCount + len(s.WrongAnswers)
	minutes := int(playTime.Minutes())

	if err := e.stats.RecordSession(playTime, s.BestCombo, s.LevelID, s.Passed); err != nil {
		util.LogWarn("Failed to persist session record: %v", err)
	}
	if err := e.stats.RecordDailyActivity(answered, s.CorrectCount, minutes); err != nil {
		util.LogWarn("Failed to persist daily activity: %v", err)
	}

	result := &LevelResult{
		LevelID:      s.LevelID,
		IsReview:     s.IsReview,
		Passed:       s.Passed,
		Score:        s.Score,
		CorrectCount: s.CorrectCount,
		Questions:    len(s.Questions),
		BestCombo:    s.BestCombo,
		PlayTime:     playTime.Milliseconds(),
		WrongAnswers: s.WrongAnswers,
	}

	if s.IsReview {
		if cleared := e.correctWordIDs(s); len(cleared) > 0 {
			if err := e.stats.ClearReview(cleared); err != nil {
				util.LogWarn("Failed to clear reviewed words: %v", err)
			}
		}
		return result, nil
	}

	if s.Passed {
		if err := e.progress.Complete(s.LevelID, true); err != nil {
			util.LogWarn("Failed to persist level completion: %v", err)
		}
		if err := e.progress.AddScore(s.Score); err != nil {
			util.LogWarn("Failed to persist session score: %v", err)
		}
		if s.LevelID < constants.MaxLevel {
			result.NextLevel = s.LevelID + 1
		}
	}
	return result, nil
}

// ResolveWrongAnswers applies the learner's choices on the result screen:
// words marked as needing review join the queue, remembered ones do not.
func (e *Engine) ResolveWrongAnswers(s *models.GameSession, needsReview []int) error {
	wrongIDs := make([]int, 0, len(s.WrongAnswers))
	for _, w := range s.WrongAnswers {
		wrongIDs = append(wrongIDs, w.WordID)
	}

	for _, id := range needsReview {
		if !slices.Contains(wrongIDs, id) {
			continue
		}
		if err := e.stats.FlagForReview(id); err != nil {
			return err
		}
	}
	return nil
}

// correctWordIDs collects the words answered correctly. Only questions the
// learner actually reached count; a session that ends early leaves its
// remaining questions unanswered, not correct.
func (e *Engine) correctWordIDs(s *models.GameSession) []int {
	wrong := make(map[int]struct{}, len(s.WrongAnswers))
	for _, w := range s.WrongAnswers {
		wrong[w.WordID] = struct{}{}
	}
	answered := s.CorrectCount + len(s.WrongAnswers)
	if answered > len(s.Questions) {
		answered = len(s.Questions)
	}
	ids := make([]int, 0, answered)
	for _, q := range s.Questions[:answered] {
		if _, missed := wrong[q.WordID]; !missed {
			ids = append(ids, q.WordID)
		}
	}
	return ids
}

func newSession(levelID int, isReview bool, questions []models.Question) *models.GameSession {
	return &models.GameSession{
		LevelID:        levelID,
		IsReview:       isReview,
		Questions:      questions,
		Lives:          constants.MaxLives,
		WrongAnswers:   []models.WrongAnswer{},
		StartTime:      time.Now(),
		LastAccessTime: time.Now(),
	}
}
