package stats

import (
	models "wordhero/internal/models"
)

// achievementRule is a pure predicate over current statistics and
// progress. Rules are recomputed on demand; the persisted list only
// remembers which ones were already earned and when.
type achievementRule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      func(s models.Statistics, p models.Progress) bool
}

var achievementRules = []achievementRule{
	{
		ID: "first_day", Name: "First Steps", Icon: "🌱",
		Description: "Play on your first day",
		Earned: func(s models.Statistics, _ models.Progress) bool {
			return s.DailyStreak >= 1
		},
	},
	{
		ID: "streak_3", Name: "Warming Up", Icon: "🔥",
		Description: "Keep a 3-day streak",
		Earned: func(s models.Statistics, _ models.Progress) bool {
			return s.DailyStreak >= 3
		},
	},
	{
		ID: "streak_7", Name: "Full Week", Icon: "📅",
		Description: "Keep a 7-day streak",
		Earned: func(s models.Statistics, _ models.Progress) bool {
			return s.DailyStreak >= 7
		},
	},
	{
		ID: "accuracy_80", Name: "Sharp Eye", Icon: "🎯",
		Description: "Reach 80% accuracy over 50 questions",
		Earned: func(s models.Statistics, _ models.Progress) bool {
			return s.TotalQuestionsAnswered >= 50 && accuracyAtLeast(s, 80)
		},
	},
	{
		ID: "accuracy_95", Name: "Word Master", Icon: "👑",
		Description: "Reach 95% accuracy over 100 questions",
		Earned: func(s models.Statistics, _ models.Progress) bool {
			return s.TotalQuestionsAnswered >= 100 && accuracyAtLeast(s, 95)
		},
	},
	{
		ID: "combo_10", Name: "Unstoppable", Icon: "⚡",
		Description: "Chain 10 correct answers in one session",
		Earned: func(s models.Statistics, _ models.Progress) bool {
			return s.BestCombo >= 10
		},
	},
	{
		ID: "levels_10", Name: "Adventurer", Icon: "🗺️",
		Description: "Complete 10 levels",
		Earned: func(_ models.Statistics, p models.Progress) bool {
			return len(p.CompletedLevels) >= 10
		},
	},
	{
		ID: "levels_50", Name: "Conqueror", Icon: "🏰",
		Description: "Complete 50 levels",
		Earned: func(_ models.Statistics, p models.Progress) bool {
			return len(p.CompletedLevels) >= 50
		},
	},
}

func accuracyAtLeast(s models.Statistics, percent int) bool {
	return s.CorrectAnswers*100 >= s.TotalQuestionsAnswered*percent
}

// Achievements evaluates every rule against the current state and returns
// the earned list. Newly earned ones are appended to the persisted log
// with the current time; re-evaluating is idempotent and order-independent.
func (e *Engine) Achievements(p models.Progress) ([]models.Achievement, error) {
	s := e.game.LoadStatistics()

	logged := make(map[string]models.Achievement, len(s.Achievements))
	for _, a := range s.Achievements {
		logged[a.ID] = a
	}

	earned := make([]models.Achievement, 0, len(achievementRules))
	changed := false
	for _, rule := range achievementRules {
		if !rule.Earned(s, p) {
			continue
		}
		if existing, ok := logged[rule.ID]; ok {
			earned = append(earned, existing)
			continue
		}
		a := models.Achievement{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			EarnedDate:  e.now(),
		}
		earned = append(earned, a)
		s.Achievements = append(s.Achievements, a)
		changed = true
	}

	if changed {
		if err := e.game.SaveStatistics(s); err != nil {
			return earned, err
		}
	}
	return earned, nil
}
