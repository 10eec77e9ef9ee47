package vocab

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/samber/lo"
	models "wordhero/internal/models"
	util "wordhero/internal/util"
)

// FileProvider serves vocabulary loaded once from a JSON word list. It
// implements models.VocabularyProvider.
type FileProvider struct {
	words []models.Word
	byID  map[int]models.Word
	rng   *rand.Rand
}

// NewFileProvider reads and indexes the word list. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func NewFileProvider(path string, rng *rand.Rand) (*FileProvider, error) {
	util.LogInfo("Loading vocabulary from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wl models.WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, err
	}

	words := lo.Filter(wl.Words, func(w models.Word, _ int) bool {
		if w.ID <= 0 || w.Text == "" || w.Meaning == "" {
			util.LogWarn("Skipping invalid word entry %d (%q)", w.ID, w.Text)
			return false
		}
		return true
	})

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	byID := lo.Associate(words, func(w models.Word) (int, models.Word) {
		return w.ID, w
	})

	util.LogInfo("Loaded %d words", len(words))
	return &FileProvider{words: words, byID: byID, rng: rng}, nil
}

// NewStaticProvider wraps an in-memory word slice. Used by tests and by the
// import tool to validate its output.
func NewStaticProvider(words []models.Word, rng *rand.Rand) *FileProvider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	byID := lo.Associate(words, func(w models.Word) (int, models.Word) {
		return w.ID, w
	})
	return &FileProvider{words: words, byID: byID, rng: rng}
}

func (p *FileProvider) Len() int {
	return len(p.words)
}

func (p *FileProvider) WordByID(id int) (models.Word, bool) {
	w, ok := p.byID[id]
	return w, ok
}

// RandomWords returns up to n distinct words drawn uniformly from the pool.
func (p *FileProvider) RandomWords(n int) []models.Word {
	shuffled := make([]models.Word, len(p.words))
	copy(shuffled, p.words)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// RandomWrongMeanings returns up to n meanings from other words, never the
// target's own meaning and never a duplicate.
func (p *FileProvider) RandomWrongMeanings(word models.Word, n int) []string {
	candidates := lo.FilterMap(p.words, func(w models.Word, _ int) (string, bool) {
		if w.ID == word.ID || w.Meaning == word.Meaning {
			return "", false
		}
		return w.Meaning, true
	})
	candidates = lo.Uniq(candidates)
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
