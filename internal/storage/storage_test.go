package storage

import (
	"strings"
	"testing"

	models "wordhero/internal/models"
)

func newTestGameStore(t *testing.T) *GameStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return NewGameStore(store)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get on missing key = ok %v, err %v; want false, nil", ok, err)
	}

	if err := store.Set("doc", `{"a":1}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get("doc")
	if err != nil || !ok || value != `{"a":1}` {
		t.Errorf("Get = %q, %v, %v", value, ok, err)
	}

	if err := store.Remove("doc"); err != nil {
		t.Errorf("Remove failed: %v", err)
	}
	if _, ok, _ := store.Get("doc"); ok {
		t.Error("Key should be gone after Remove")
	}
	if err := store.Remove("doc"); err != nil {
		t.Errorf("Remove on missing key should be a no-op, got %v", err)
	}
}

func TestLoadProgressDefaults(t *testing.T) {
	game := newTestGameStore(t)

	p := game.LoadProgress()
	if p.CurrentLevel != 1 {
		t.Errorf("Default currentLevel = %d, want 1", p.CurrentLevel)
	}
	if len(p.UnlockedLevels) != 1 || p.UnlockedLevels[0] != 1 {
		t.Errorf("Default unlocked levels = %v, want [1]", p.UnlockedLevels)
	}
	if len(p.CompletedLevels) != 0 {
		t.Errorf("Default completed levels = %v, want empty", p.CompletedLevels)
	}
}

func TestLoadProgressCorruptDocument(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := store.Set("wordHero_gameProgress", "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	p := NewGameStore(store).LoadProgress()
	if p.CurrentLevel != 1 || len(p.UnlockedLevels) != 1 {
		t.Errorf("Corrupt progress should load as defaults, got %+v", p)
	}
}

func TestProgressNormalization(t *testing.T) {
	game := newTestGameStore(t)

	// A document missing level 1 must come back with it.
	if err := game.SaveProgress(models.Progress{CurrentLevel: 0, UnlockedLevels: []int{3}}); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}
	p := game.LoadProgress()
	if p.CurrentLevel != 1 {
		t.Errorf("currentLevel = %d, want floor of 1", p.CurrentLevel)
	}
	if p.UnlockedLevels[0] != 1 {
		t.Errorf("Level 1 should always be unlocked, got %v", p.UnlockedLevels)
	}
	if p.CompletedLevels == nil {
		t.Error("CompletedLevels should never be nil after load")
	}
}

func TestSettingsDefaults(t *testing.T) {
	game := newTestGameStore(t)

	s := game.LoadSettings()
	if !s.SoundEnabled || !s.EffectsEnabled || s.Difficulty != "normal" || s.Theme != "default" {
		t.Errorf("Unexpected default settings: %+v", s)
	}

	s.SoundEnabled = false
	s.Theme = "dark"
	if err := game.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got := game.LoadSettings()
	if got.SoundEnabled || got.Theme != "dark" {
		t.Errorf("Settings did not round trip: %+v", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	game := newTestGameStore(t)

	p := game.LoadProgress()
	p.UnlockedLevels = append(p.UnlockedLevels, 2)
	p.CompletedLevels = append(p.CompletedLevels, 1)
	p.CurrentLevel = 2
	p.TotalScore = 560
	if err := game.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}

	stats := game.LoadStatistics()
	stats.TotalQuestionsAnswered = 10
	stats.CorrectAnswers = 7
	stats.WordsLearned = []int{1, 2, 3}
	if err := game.SaveStatistics(stats); err != nil {
		t.Fatalf("SaveStatistics failed: %v", err)
	}

	exported, err := game.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(exported, `"exportDate"`) {
		t.Error("Export document should carry an exportDate")
	}

	fresh := newTestGameStore(t)
	if err := fresh.Import(exported); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	gotProgress := fresh.LoadProgress()
	if gotProgress.CurrentLevel != 2 || gotProgress.TotalScore != 560 {
		t.Errorf("Imported progress = %+v", gotProgress)
	}
	gotStats := fresh.LoadStatistics()
	if gotStats.CorrectAnswers != 7 || len(gotStats.WordsLearned) != 3 {
		t.Errorf("Imported statistics = %+v", gotStats)
	}
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	game := newTestGameStore(t)

	p := game.LoadProgress()
	p.TotalScore = 100
	if err := game.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}

	if err := game.Import("definitely not json"); err == nil {
		t.Fatal("Import should reject a malformed payload")
	}
	if got := game.LoadProgress(); got.TotalScore != 100 {
		t.Errorf("Failed import must not touch the store, totalScore = %d", got.TotalScore)
	}
}

func TestImportAppliesPresentFieldsOnly(t *testing.T) {
	game := newTestGameStore(t)

	settings := game.LoadSettings()
	settings.Theme = "dark"
	if err := game.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	// Progress only; settings must survive untouched.
	doc := `{"progress": {"currentLevel": 5, "unlockedLevels": [1,2,3,4,5], "completedLevels": [1,2,3,4], "totalScore": 42}}`
	if err := game.Import(doc); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if got := game.LoadProgress(); got.CurrentLevel != 5 {
		t.Errorf("Imported currentLevel = %d, want 5", got.CurrentLevel)
	}
	if got := game.LoadSettings(); got.Theme != "dark" {
		t.Errorf("Settings should be untouched by a progress-only import, theme = %q", got.Theme)
	}
}

func TestClearAll(t *testing.T) {
	game := newTestGameStore(t)

	p := game.LoadProgress()
	p.TotalScore = 50
	if err := game.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}
	if err := game.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if got := game.LoadProgress(); got.TotalScore != 0 {
		t.Errorf("Progress should be back to defaults after ClearAll, got %+v", got)
	}
}

func TestNewByEngine(t *testing.T) {
	dir := t.TempDir()
	store, err := NewByEngine("", dir)
	if err != nil {
		t.Fatalf("NewByEngine default failed: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Default engine should be the file store, got %T", store)
	}
	if _, err := NewByEngine("carrier-pigeon", dir); err == nil {
		t.Error("Unknown engine should be rejected")
	}
}
