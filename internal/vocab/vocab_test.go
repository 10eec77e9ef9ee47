package vocab

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	models "wordhero/internal/models"
)

func TestNewFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	data := `{"words": [
		{"id": 1, "word": "apple", "meaning": "苹果", "pronunciation": "/ˈæp.əl/"},
		{"id": 2, "word": "book", "meaning": "书"},
		{"id": 0, "word": "broken", "meaning": "skipped"},
		{"id": 3, "word": "", "meaning": "skipped"}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	provider, err := NewFileProvider(path, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewFileProvider failed: %v", err)
	}
	if provider.Len() != 2 {
		t.Errorf("Expected 2 valid words, got %d", provider.Len())
	}
	if w, ok := provider.WordByID(1); !ok || w.Text != "apple" {
		t.Errorf("WordByID(1) = %+v, %v", w, ok)
	}
	if _, ok := provider.WordByID(99); ok {
		t.Error("WordByID(99) should not be found")
	}
}

func TestNewFileProviderMissingFile(t *testing.T) {
	if _, err := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRandomWords(t *testing.T) {
	words := []models.Word{
		{ID: 1, Text: "a", Meaning: "一"},
		{ID: 2, Text: "b", Meaning: "二"},
		{ID: 3, Text: "c", Meaning: "三"},
	}
	provider := NewStaticProvider(words, rand.New(rand.NewSource(5)))

	drawn := provider.RandomWords(2)
	if len(drawn) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(drawn))
	}
	if drawn[0].ID == drawn[1].ID {
		t.Error("RandomWords returned the same word twice")
	}

	if got := provider.RandomWords(10); len(got) != 3 {
		t.Errorf("Expected draw capped at pool size 3, got %d", len(got))
	}
}

func TestRandomWrongMeanings(t *testing.T) {
	words := []models.Word{
		{ID: 1, Text: "big", Meaning: "大的"},
		{ID: 2, Text: "large", Meaning: "大的"},
		{ID: 3, Text: "cat", Meaning: "猫"},
		{ID: 4, Text: "dog", Meaning: "狗"},
	}
	provider := NewStaticProvider(words, rand.New(rand.NewSource(5)))

	meanings := provider.RandomWrongMeanings(words[0], 3)
	if len(meanings) != 2 {
		t.Fatalf("Expected 2 wrong meanings, got %d: %v", len(meanings), meanings)
	}
	for _, m := range meanings {
		if m == "大的" {
			t.Error("Wrong meanings must never contain the target's own meaning")
		}
	}
}
