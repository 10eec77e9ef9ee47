package storage

import (
	"encoding/json"
	"time"

	constants "wordhero/internal/constants"
	models "wordhero/internal/models"
	util "wordhero/internal/util"
)

// GameStore wraps the raw key-value medium with whole-document accessors
// for the three persisted records. A missing or corrupt document is
// replaced by its default on read; write failures surface to the caller,
// who treats persistence as best-effort.
type GameStore struct {
	store Store
}

func NewGameStore(store Store) *GameStore {
	return &GameStore{store: store}
}

func DefaultProgress() models.Progress {
	return models.Progress{
		CurrentLevel:    1,
		UnlockedLevels:  []int{1},
		CompletedLevels: []int{},
		TotalScore:      0,
		LastPlayedDate:  time.Now(),
	}
}

func DefaultSettings() models.Settings {
	return models.Settings{
		SoundEnabled:   true,
		EffectsEnabled: true,
		Difficulty:     "normal",
		Theme:          "default",
	}
}

func DefaultStatistics() models.Statistics {
	return models.Statistics{
		WordsLearned:    []int{},
		WordsNeedReview: []int{},
		PerWordHistory:  make(map[int]models.WordStat),
		DailyData:       make(map[string]models.DailyActivity),
		Achievements:    []models.Achievement{},
	}
}

func (g *GameStore) LoadProgress() models.Progress {
	var p models.Progress
	if !g.loadDocument(constants.KeyGameProgress, &p) {
		return DefaultProgress()
	}
	return normalizeProgress(p)
}

func (g *GameStore) SaveProgress(p models.Progress) error {
	return g.saveDocument(constants.KeyGameProgress, normalizeProgress(p))
}

func (g *GameStore) LoadSettings() models.Settings {
	var s models.Settings
	if !g.loadDocument(constants.KeyGameSettings, &s) {
		return DefaultSettings()
	}
	if s.Difficulty == "" {
		s.Difficulty = "normal"
	}
	if s.Theme == "" {
		s.Theme = "default"
	}
	return s
}

func (g *GameStore) SaveSettings(s models.Settings) error {
	return g.saveDocument(constants.KeyGameSettings, s)
}

func (g *GameStore) LoadStatistics() models.Statistics {
	var s models.Statistics
	if !g.loadDocument(constants.KeyStatistics, &s) {
		return DefaultStatistics()
	}
	return normalizeStatistics(s)
}

func (g *GameStore) SaveStatistics(s models.Statistics) error {
	return g.saveDocument(constants.KeyStatistics, normalizeStatistics(s))
}

// ClearAll removes the three game records from the medium.
func (g *GameStore) ClearAll() error {
	for _, key := range []string{constants.KeyGameProgress, constants.KeyGameSettings, constants.KeyStatistics} {
		if err := g.store.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// Export serializes progress, settings and statistics into one document.
func (g *GameStore) Export() (string, error) {
	progress := g.LoadProgress()
	settings := g.LoadSettings()
	statistics := g.LoadStatistics()

	doc := models.ExportDocument{
		Progress:   &progress,
		Settings:   &settings,
		Statistics: &statistics,
		ExportDate: time.Now(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import parses the combined document fully before applying any writes, so
// a malformed payload never leaves a half-updated store. Missing top-level
// fields are simply not applied.
func (g *GameStore) Import(data string) error {
	var doc models.ExportDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return err
	}

	if doc.Progress != nil {
		if err := g.SaveProgress(*doc.Progress); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := g.SaveSettings(*doc.Settings); err != nil {
			return err
		}
	}
	if doc.Statistics != nil {
		if err := g.SaveStatistics(*doc.Statistics); err != nil {
			return err
		}
	}
	return nil
}

func (g *GameStore) loadDocument(key string, out any) bool {
	raw, ok, err := g.store.Get(key)
	if err != nil {
		util.LogWarn("Failed to read %s, using defaults: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		util.LogWarn("Corrupt document %s, using defaults: %v", key, err)
		return false
	}
	return true
}

func (g *GameStore) saveDocument(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return g.store.Set(key, string(data))
}

// normalizeProgress enforces the invariants a loaded document must hold:
// level 1 is always unlocked and currentLevel is at least 1.
func normalizeProgress(p models.Progress) models.Progress {
	if p.CurrentLevel < 1 {
		p.CurrentLevel = 1
	}
	if p.UnlockedLevels == nil {
		p.UnlockedLevels = []int{}
	}
	if p.CompletedLevels == nil {
		p.CompletedLevels = []int{}
	}
	hasFirst := false
	for _, id := range p.UnlockedLevels {
		if id == 1 {
			hasFirst = true
			break
		}
	}
	if !hasFirst {
		p.UnlockedLevels = append([]int{1}, p.UnlockedLevels...)
	}
	return p
}

func normalizeStatistics(s models.Statistics) models.Statistics {
	if s.WordsLearned == nil {
		s.WordsLearned = []int{}
	}
	if s.WordsNeedReview == nil {
		s.WordsNeedReview = []int{}
	}
	if s.PerWordHistory == nil {
		s.PerWordHistory = make(map[int]models.WordStat)
	}
	if s.DailyData == nil {
		s.DailyData = make(map[string]models.DailyActivity)
	}
	if s.Achievements == nil {
		s.Achievements = []models.Achievement{}
	}
	return s
}
