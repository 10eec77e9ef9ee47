package quiz

import (
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	models "wordhero/internal/models"
	util "wordhero/internal/util"
)

const optionsPerQuestion = 4

// Generator turns words into shuffled multiple-choice questions. The
// shuffle is Fisher-Yates via rand.Shuffle, so every permutation is equally
// likely and a seeded rng reproduces a session exactly.
type Generator struct {
	vocab models.VocabularyProvider
	rng   *rand.Rand
}

func NewGenerator(vocab models.VocabularyProvider, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{vocab: vocab, rng: rng}
}

// Generate selects count words without replacement and builds one question
// per word. An empty input yields an empty result; the caller must not
// start a session with zero questions.
func (g *Generator) Generate(words []models.Word, count int) []models.Question {
	if len(words) == 0 || count <= 0 {
		return nil
	}

	selected := make([]models.Word, len(words))
	copy(selected, words)
	g.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if count < len(selected) {
		selected = selected[:count]
	}

	questions := make([]models.Question, 0, len(selected))
	for _, w := range selected {
		q, ok := g.buildQuestion(w)
		if !ok {
			util.LogWarn("Not enough distractors for word %d (%q), skipping", w.ID, w.Text)
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// GenerateReview builds a session from explicit word ids, resolving each
// through the provider and shuffling the final question order so both
// question types mix freely.
func (g *Generator) GenerateReview(wordIDs []int, count int) []models.Question {
	words := make([]models.Word, 0, len(wordIDs))
	for _, id := range wordIDs {
		if w, ok := g.vocab.WordByID(id); ok {
			words = append(words, w)
		}
	}

	questions := g.Generate(words, count)
	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions
}

// buildQuestion picks the question type by a fair coin flip: listening
// plays the pronunciation and asks for the word text, reading shows the
// text and asks for the meaning.
func (g *Generator) buildQuestion(w models.Word) (models.Question, bool) {
	q := models.Question{
		ID:            uuid.NewString(),
		WordID:        w.ID,
		Word:          w.Text,
		Pronunciation: w.Pronunciation,
		Meaning:       w.Meaning,
	}

	if g.rng.Intn(2) == 0 {
		q.Type = models.QuestionListening
		q.CorrectAnswer = w.Text
	} else {
		q.Type = models.QuestionReading
		q.CorrectAnswer = w.Meaning
	}

	distractors := g.drawDistractors(w, q.Type, q.CorrectAnswer)
	if len(distractors) < optionsPerQuestion-1 {
		return models.Question{}, false
	}

	options := append(distractors, q.CorrectAnswer)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q.Options = options
	q.CorrectIndex = slices.Index(options, q.CorrectAnswer)
	return q, true
}

// drawDistractors collects three unique wrong options, excluding the target
// word and anything equal to the correct answer. Draws are retried a few
// times in case the provider hands back duplicates.
func (g *Generator) drawDistractors(w models.Word, qtype models.QuestionType, correct string) []string {
	seen := map[string]struct{}{correct: {}}
	distractors := make([]string, 0, optionsPerQuestion-1)

	for attempt := 0; attempt < 5 && len(distractors) < optionsPerQuestion-1; attempt++ {
		var drawn []string
		if qtype == models.QuestionListening {
			for _, other := range g.vocab.RandomWords(optionsPerQuestion) {
				if other.ID != w.ID {
					drawn = append(drawn, other.Text)
				}
			}
		} else {
			drawn = g.vocab.RandomWrongMeanings(w, optionsPerQuestion-1)
		}

		for _, option := range drawn {
			if len(distractors) == optionsPerQuestion-1 {
				break
			}
			if _, dup := seen[option]; dup || option == "" {
				continue
			}
			seen[option] = struct{}{}
			distractors = append(distractors, option)
		}
	}
	return distractors
}
