package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	constants "wordhero/internal/constants"
	models "wordhero/internal/models"
	util "wordhero/internal/util"
)

func (app *App) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(constants.SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(constants.SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		util.LogInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

func (app *App) getGameSession(sessionID string) (*models.GameSession, bool) {
	app.SessionMutex.RLock()
	session, exists := app.GameSessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		app.SessionMutex.Lock()
		session.LastAccessTime = time.Now()
		app.SessionMutex.Unlock()
	}
	return session, exists
}

func (app *App) saveGameSession(sessionID string, session *models.GameSession) {
	app.SessionMutex.Lock()
	session.LastAccessTime = time.Now()
	app.GameSessions[sessionID] = session
	app.SessionMutex.Unlock()
}

func (app *App) clearGameSession(sessionID string) {
	app.SessionMutex.Lock()
	delete(app.GameSessions, sessionID)
	app.SessionMutex.Unlock()
}

func (app *App) cleanupStaleSessions() {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	cutoffTime := time.Now().Add(-app.SessionTTL)
	removedCount := 0
	for sessionID, session := range app.GameSessions {
		if session.LastAccessTime.Before(cutoffTime) {
			delete(app.GameSessions, sessionID)
			removedCount++
		}
	}
	if removedCount > 0 {
		util.LogInfo("Cleaned up %d stale game sessions", removedCount)
	}
}

func (app *App) cleanupStaleRateLimiters() {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()

	cutoffTime := time.Now().Add(-app.RateLimiterTTL)
	removedCount := 0
	for key, limWithTime := range app.LimiterMap {
		if limWithTime.LastAccess.Before(cutoffTime) {
			delete(app.LimiterMap, key)
			removedCount++
		}
	}
	if removedCount > 0 {
		util.LogInfo("Cleaned up %d stale rate limiters", removedCount)
	}
}

func (app *App) startCleanupRoutines() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			app.cleanupStaleSessions()
		}
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			app.cleanupStaleRateLimiters()
		}
	}()

	util.LogInfo("Started cleanup routines for sessions and rate limiters")
}
