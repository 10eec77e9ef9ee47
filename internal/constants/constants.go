package constants

type ContextKey string

const (
	MaxLevel      = 100
	WordsPerLevel = 30
	BaseWordPool  = 300
)

const (
	QuestionsPerLevel  = 10
	PassingScore       = 7
	MaxLives           = 3
	MaxReviewQuestions = 10
)

// Accuracy cut points for the per-word difficulty classifier.
const (
	EasyAccuracyThreshold   = 0.80
	MediumAccuracyThreshold = 0.50
)

// Storage document keys, kept byte-compatible with exported browser saves.
const (
	KeyGameProgress = "wordHero_gameProgress"
	KeyGameSettings = "wordHero_gameSettings"
	KeyStatistics   = "wordHero_statistics"
)

const (
	SessionCookieName = "session_id"
)

const (
	ErrorCodeSessionFinished = "session_finished"
	ErrorCodeNoSession       = "no_active_session"
	ErrorCodeLevelLocked     = "level_locked"
	ErrorCodeInvalidLevel    = "invalid_level"
	ErrorCodeEmptyLevelData  = "empty_level_data"
	ErrorCodeInvalidOption   = "invalid_option"
	ErrorCodeNothingToReview = "nothing_to_review"
	ErrorCodeImportParse     = "import_parse_failed"
)

const (
	RequestIDKey ContextKey = "request_id"
)
