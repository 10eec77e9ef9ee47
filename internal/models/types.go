package models

import "time"

// Word is immutable reference vocabulary. Meaning is the learner-language
// gloss shown in reading questions.
type Word struct {
	ID            int      `json:"id"`
	Text          string   `json:"word"`
	Meaning       string   `json:"meaning"`
	Pronunciation string   `json:"pronunciation"`
	Examples      []string `json:"examples"`
}

type WordList struct {
	Words []Word `json:"words"`
}

// VocabularyProvider supplies reference vocabulary to the engine. The
// provider owns its randomness so callers stay deterministic under test.
type VocabularyProvider interface {
	WordByID(id int) (Word, bool)
	RandomWords(n int) []Word
	RandomWrongMeanings(word Word, n int) []string
}

type LevelRequirements struct {
	QuestionsCount int `json:"questionsCount"`
	PassingScore   int `json:"passingScore"`
	MaxLives       int `json:"maxLives"`
}

type LevelRewards struct {
	Exp        int  `json:"exp"`
	UnlockNext bool `json:"unlockNext"`
}

// Level is generated by the catalog. IsUnlocked and IsCompleted are
// read-only views computed from Progress, never set independently.
type Level struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Difficulty   int               `json:"difficulty"`
	WordIDs      []int             `json:"wordIds"`
	Requirements LevelRequirements `json:"requirements"`
	Rewards      LevelRewards      `json:"rewards"`
	IsUnlocked   bool              `json:"isUnlocked"`
	IsCompleted  bool              `json:"isCompleted"`
}

type QuestionType string

const (
	QuestionReading   QuestionType = "reading"
	QuestionListening QuestionType = "listening"
)

// Question is a generated multiple-choice item. Options always holds four
// unique strings and Options[CorrectIndex] == CorrectAnswer.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	WordID        int          `json:"wordId"`
	Word          string       `json:"word"`
	Pronunciation string       `json:"pronunciation"`
	Meaning       string       `json:"meaning"`
	CorrectAnswer string       `json:"correctAnswer"`
	Options       []string     `json:"options"`
	CorrectIndex  int          `json:"correctIndex"`
}

type Progress struct {
	CurrentLevel    int       `json:"currentLevel"`
	UnlockedLevels  []int     `json:"unlockedLevels"`
	CompletedLevels []int     `json:"completedLevels"`
	TotalScore      int       `json:"totalScore"`
	LastPlayedDate  time.Time `json:"lastPlayedDate"`
}

type WordStat struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

type DailyActivity struct {
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	GamesPlayed       int `json:"gamesPlayed"`
	TimeSpent         int `json:"timeSpent"`
}

type Statistics struct {
	TotalQuestionsAnswered int                      `json:"totalQuestionsAnswered"`
	CorrectAnswers         int                      `json:"correctAnswers"`
	WrongAnswers           int                      `json:"wrongAnswers"`
	TotalPlayTime          int64                    `json:"totalPlayTime"`
	GamesPlayed            int                      `json:"gamesPlayed"`
	AverageAccuracy        int                      `json:"averageAccuracy"`
	BestCombo              int                      `json:"bestCombo"`
	WordsLearned           []int                    `json:"wordsLearned"`
	DailyStreak            int                      `json:"dailyStreak"`
	LastPlayDate           *time.Time               `json:"lastPlayDate"`
	WordsNeedReview        []int                    `json:"wordsNeedReview"`
	PerWordHistory         map[int]WordStat         `json:"perWordHistory"`
	DailyData              map[string]DailyActivity `json:"dailyData"`
	Achievements           []Achievement            `json:"achievements"`
}

type Settings struct {
	SoundEnabled   bool   `json:"soundEnabled"`
	EffectsEnabled bool   `json:"effectsEnabled"`
	Difficulty     string `json:"difficulty"`
	Theme          string `json:"theme"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedDate  time.Time `json:"earnedDate"`
}

type DifficultyLabel string

const (
	DifficultyUnknown DifficultyLabel = "unknown"
	DifficultyEasy    DifficultyLabel = "easy"
	DifficultyMedium  DifficultyLabel = "medium"
	DifficultyHard    DifficultyLabel = "hard"
)

type WordDifficulty struct {
	WordID          int             `json:"wordId"`
	Difficulty      DifficultyLabel `json:"difficulty"`
	TotalAttempts   int             `json:"totalAttempts"`
	CorrectAttempts int             `json:"correctAttempts"`
}

// LearningStats is the dashboard snapshot combining Statistics and Progress.
type LearningStats struct {
	TotalPlayTimeMinutes   int `json:"totalPlayTimeMinutes"`
	StudyDays              int `json:"studyDays"`
	Accuracy               int `json:"accuracy"`
	TotalQuestionsAnswered int `json:"totalQuestionsAnswered"`
	CorrectAnswers         int `json:"correctAnswers"`
	BestCombo              int `json:"bestCombo"`
	WordsLearned           int `json:"wordsLearned"`
	CompletedLevels        int `json:"completedLevels"`
	GamesPlayed            int `json:"gamesPlayed"`
	DailyStreak            int `json:"dailyStreak"`
	ReviewPending          int `json:"reviewPending"`
}

type LearningCurvePoint struct {
	Date              string `json:"date"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
	Accuracy          int    `json:"accuracy"`
}

type ExportDocument struct {
	Progress   *Progress   `json:"progress,omitempty"`
	Settings   *Settings   `json:"settings,omitempty"`
	Statistics *Statistics `json:"statistics,omitempty"`
	ExportDate time.Time   `json:"exportDate"`
}

type WrongAnswer struct {
	WordID        int    `json:"wordId"`
	Word          string `json:"word"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
}

// GameSession is the explicit per-session state owned by the caller. It is
// created at level start and discarded after the result screen.
type GameSession struct {
	LevelID        int           `json:"levelId"`
	IsReview       bool          `json:"isReview"`
	Questions      []Question    `json:"questions"`
	CurrentIndex   int           `json:"currentIndex"`
	Lives          int           `json:"lives"`
	Combo          int           `json:"combo"`
	BestCombo      int           `json:"bestCombo"`
	Score          int           `json:"score"`
	CorrectCount   int           `json:"correctCount"`
	WrongAnswers   []WrongAnswer `json:"wrongAnswers"`
	StartTime      time.Time     `json:"startTime"`
	Finished       bool          `json:"finished"`
	Passed         bool          `json:"passed"`
	LastAccessTime time.Time     `json:"lastAccessTime"`
}
