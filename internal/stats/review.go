package stats

import (
	"slices"

	"github.com/samber/lo"
)

// The review queue uses set semantics: flagging a word twice keeps a single
// entry, so one clear is always enough. Order of first flagging is kept for
// display.

// FlagForReview marks a word as needing review.
func (e *Engine) FlagForReview(wordID int) error {
	if wordID <= 0 {
		return nil
	}
	s := e.game.LoadStatistics()
	if slices.Contains(s.WordsNeedReview, wordID) {
		return nil
	}
	s.WordsNeedReview = append(s.WordsNeedReview, wordID)
	return e.game.SaveStatistics(s)
}

// ClearReview removes every occurrence of the given word ids.
func (e *Engine) ClearReview(wordIDs []int) error {
	if len(wordIDs) == 0 {
		return nil
	}
	s := e.game.LoadStatistics()
	s.WordsNeedReview = lo.Filter(s.WordsNeedReview, func(id int, _ int) bool {
		return !slices.Contains(wordIDs, id)
	})
	return e.game.SaveStatistics(s)
}

// PendingReview returns the flagged word ids in flag order.
func (e *Engine) PendingReview() []int {
	s := e.game.LoadStatistics()
	return slices.Clone(s.WordsNeedReview)
}
