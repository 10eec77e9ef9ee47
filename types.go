package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	game "wordhero/internal/game"
	models "wordhero/internal/models"
	progress "wordhero/internal/progress"
	quiz "wordhero/internal/quiz"
	stats "wordhero/internal/stats"
	storage "wordhero/internal/storage"
)

type RateLimiterWithTime struct {
	Limiter    *rate.Limiter
	LastAccess time.Time
}

// App wires the engine components to the HTTP layer. Gameplay sessions are
// held in memory per cookie; the three game documents live in the durable
// store.
type App struct {
	Vocab    models.VocabularyProvider
	Store    *storage.GameStore
	Progress *progress.Store
	Stats    *stats.Engine
	Gen      *quiz.Generator
	Engine   *game.Engine

	GameSessions map[string]*models.GameSession
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*RateLimiterWithTime
	LimiterMutex sync.RWMutex

	IsProduction   bool
	StartTime      time.Time
	CookieMaxAge   time.Duration
	SessionTTL     time.Duration
	RateLimiterTTL time.Duration
	RateLimitRPS   int
	RateLimitBurst int
}
