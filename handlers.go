package main

import (
	"errors"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	catalog "wordhero/internal/catalog"
	constants "wordhero/internal/constants"
	game "wordhero/internal/game"
	util "wordhero/internal/util"
)

func (app *App) levelsHandler(c *gin.Context) {
	progress := app.Progress.Load()
	c.JSON(http.StatusOK, gin.H{
		"levels":       catalog.AllLevels(progress),
		"currentLevel": progress.CurrentLevel,
		"totalScore":   progress.TotalScore,
	})
}

func (app *App) startLevelHandler(c *gin.Context) {
	levelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrorCodeInvalidLevel})
		return
	}

	session, err := app.Engine.StartLevel(levelID)
	if err != nil {
		c.JSON(gameErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	sessionID := app.getOrCreateSessionID(c)
	app.saveGameSession(sessionID, session)
	c.JSON(http.StatusOK, session)
}

func (app *App) startReviewHandler(c *gin.Context) {
	session, err := app.Engine.StartReview()
	if err != nil {
		c.JSON(gameErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	sessionID := app.getOrCreateSessionID(c)
	app.saveGameSession(sessionID, session)
	c.JSON(http.StatusOK, session)
}

func (app *App) sessionHandler(c *gin.Context) {
	sessionID := app.getOrCreateSessionID(c)
	session, exists := app.getGameSession(sessionID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrorCodeNoSession})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (app *App) answerHandler(c *gin.Context) {
	sessionID := app.getOrCreateSessionID(c)
	session, exists := app.getGameSession(sessionID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrorCodeNoSession})
		return
	}

	var body struct {
		OptionIndex int `json:"optionIndex"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrorCodeInvalidOption})
		return
	}

	result, err := app.Engine.Answer(session, body.OptionIndex)
	if err != nil {
		c.JSON(gameErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	app.saveGameSession(sessionID, session)
	c.JSON(http.StatusOK, result)
}

func (app *App) finishHandler(c *gin.Context) {
	sessionID := app.getOrCreateSessionID(c)
	session, exists := app.getGameSession(sessionID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrorCodeNoSession})
		return
	}

	result, err := app.Engine.Finish(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Keep the finished session around so the result screen can still mark
	// wrong answers for review; it is replaced on the next start.
	app.saveGameSession(sessionID, session)
	c.JSON(http.StatusOK, result)
}

func (app *App) reviewMarksHandler(c *gin.Context) {
	sessionID := app.getOrCreateSessionID(c)
	session, exists := app.getGameSession(sessionID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrorCodeNoSession})
		return
	}

	var body struct {
		NeedsReview []int `json:"needsReview"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := app.Engine.ResolveWrongAnswers(session, body.NeedsReview); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	app.clearGameSession(sessionID)
	c.JSON(http.StatusOK, gin.H{"flagged": len(body.NeedsReview)})
}

func (app *App) reviewPendingHandler(c *gin.Context) {
	pending := app.Stats.PendingReview()
	c.JSON(http.StatusOK, gin.H{
		"wordIds": pending,
		"count":   len(pending),
	})
}

func (app *App) statsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, app.Stats.LearningStats(app.Progress.Load()))
}

func (app *App) learningCurveHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": app.Stats.LearningCurve()})
}

func (app *App) wordDifficultyHandler(c *gin.Context) {
	wordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
		return
	}
	c.JSON(http.StatusOK, app.Stats.Classify(wordID))
}

func (app *App) achievementsHandler(c *gin.Context) {
	achievements, err := app.Stats.Achievements(app.Progress.Load())
	if err != nil {
		util.LogWarn("Failed to persist achievement log: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

func (app *App) settingsGetHandler(c *gin.Context) {
	c.JSON(http.StatusOK, app.Store.LoadSettings())
}

func (app *App) settingsPutHandler(c *gin.Context) {
	settings := app.Store.LoadSettings()
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings"})
		return
	}
	if err := app.Store.SaveSettings(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (app *App) exportHandler(c *gin.Context) {
	data, err := app.Store.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filename := "wordHero_backup_" + time.Now().Format("2006_01_02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", []byte(data))
}

func (app *App) importHandler(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrorCodeImportParse})
		return
	}
	if err := app.Store.Import(string(data)); err != nil {
		util.LogWarn("Import rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrorCodeImportParse})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": true})
}

func (app *App) resetProgressHandler(c *gin.Context) {
	if err := app.Progress.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.Progress.Load())
}

func (app *App) wipeHandler(c *gin.Context) {
	if err := app.Store.ClearAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	util.LogInfo("All game data cleared")
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func (app *App) healthzHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	app.SessionMutex.RLock()
	sessionCount := len(app.GameSessions)
	app.SessionMutex.RUnlock()

	app.LimiterMutex.RLock()
	limiterCount := len(app.LimiterMap)
	app.LimiterMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"active_sessions": sessionCount,
		"active_limiters": limiterCount,
		"memory_alloc_mb": m.Alloc / 1024 / 1024,
		"memory_gc_count": m.NumGC,
		"uptime":          util.FormatUptime(time.Since(app.StartTime)),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func gameErrorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidLevel), errors.Is(err, game.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrLevelLocked):
		return http.StatusForbidden
	case errors.Is(err, game.ErrEmptyLevelData), errors.Is(err, game.ErrNothingToReview):
		return http.StatusConflict
	case errors.Is(err, game.ErrSessionFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
