package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	ginGzip "github.com/gin-contrib/gzip"

	"github.com/gin-gonic/gin"

	game "wordhero/internal/game"
	models "wordhero/internal/models"
	progress "wordhero/internal/progress"
	quiz "wordhero/internal/quiz"
	stats "wordhero/internal/stats"
	storage "wordhero/internal/storage"
	util "wordhero/internal/util"
	vocab "wordhero/internal/vocab"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	util.LogInfo("Starting Word Hero in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	provider, err := vocab.NewFileProvider(util.GetEnvString("WORDS_FILE", "data/words.json"), nil)
	if err != nil {
		util.LogFatal("Failed to load vocabulary: %v", err)
	}
	util.LogInfo("Vocabulary ready with %d words", provider.Len())

	store, err := storage.NewByEngine(
		util.GetEnvString("STORE_ENGINE", storage.EngineFile),
		util.GetEnvString("STORE_PATH", "data/save"),
	)
	if err != nil {
		util.LogFatal("Failed to open durable store: %v", err)
	}

	gameStore := storage.NewGameStore(store)
	progressStore := progress.NewStore(gameStore)
	statsEngine := stats.NewEngine(gameStore)
	generator := quiz.NewGenerator(provider, nil)
	engine := game.NewEngine(provider, generator, progressStore, statsEngine)

	app := &App{
		Vocab:          provider,
		Store:          gameStore,
		Progress:       progressStore,
		Stats:          statsEngine,
		Gen:            generator,
		Engine:         engine,
		GameSessions:   make(map[string]*models.GameSession),
		LimiterMap:     make(map[string]*RateLimiterWithTime),
		IsProduction:   isProduction,
		StartTime:      time.Now(),
		CookieMaxAge:   util.GetEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		SessionTTL:     util.GetEnvDuration("SESSION_TTL", 3*time.Hour),
		RateLimiterTTL: util.GetEnvDuration("RATE_LIMITER_TTL", 1*time.Hour),
		RateLimitRPS:   util.GetEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: util.GetEnvInt("RATE_LIMIT_BURST", 10),
	}

	router := app.newRouter()

	app.startCleanupRoutines()
	app.startServer(router)
}

func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(requestIDMiddleware())
	router.Use(securityHeadersMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		util.LogWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/levels", app.levelsHandler)
		api.POST("/levels/:id/start", app.rateLimitMiddleware(), app.startLevelHandler)
		api.GET("/session", app.sessionHandler)
		api.POST("/session/answer", app.rateLimitMiddleware(), app.answerHandler)
		api.POST("/session/finish", app.rateLimitMiddleware(), app.finishHandler)
		api.POST("/session/review-marks", app.rateLimitMiddleware(), app.reviewMarksHandler)
		api.POST("/review/start", app.rateLimitMiddleware(), app.startReviewHandler)
		api.GET("/review/pending", app.reviewPendingHandler)
		api.GET("/stats", app.statsHandler)
		api.GET("/stats/curve", app.learningCurveHandler)
		api.GET("/words/:id/difficulty", app.wordDifficultyHandler)
		api.GET("/achievements", app.achievementsHandler)
		api.GET("/settings", app.settingsGetHandler)
		api.PUT("/settings", app.settingsPutHandler)
		api.GET("/export", app.exportHandler)
		api.POST("/import", app.rateLimitMiddleware(), app.importHandler)
		api.POST("/reset", app.rateLimitMiddleware(), app.resetProgressHandler)
		api.POST("/wipe", app.rateLimitMiddleware(), app.wipeHandler)
	}
	router.GET("/healthz", app.healthzHandler)

	return router
}

func (app *App) startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		util.LogInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			util.LogWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	util.LogInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		util.LogFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	util.LogInfo("Server shutdown complete")
}
