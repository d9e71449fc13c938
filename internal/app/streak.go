package app

import (
	"time"

	"skyspotter-service/internal/domain"
)

// streakMilestones is the fixed ladder of daily-streak badges.
var streakMilestones = []int{1, 5, 10, 20, 30, 40, 50, 75, 100}

// ApplyCompletion folds one finished quiz into the stats record. It is a
// pure function of (stats, result, today): the clock is an explicit
// input so streak arithmetic can be tested without a real calendar.
//
// Streak rules, in order:
//   - never played: streak becomes 1
//   - already played today: streak unchanged (safe to invoke twice)
//   - played yesterday: streak +1, longest streak high-water updated
//   - gap of two or more days: streak resets, then the quiz just
//     completed credits today, so the streak lands on 1, not 0
func ApplyCompletion(stats domain.UserStats, result domain.SessionResult, today time.Time) domain.UserStats {
	stats.TotalScore += result.Score
	stats.QuestionsAnswered += result.QuestionsAnswered
	stats.CorrectAnswers += result.CorrectAnswers

	day := startOfDay(today)
	switch {
	case stats.LastPlayedDate == nil:
		stats.CurrentStreak = 1
	case sameDay(*stats.LastPlayedDate, day):
		// no change
	case sameDay(startOfDay(*stats.LastPlayedDate).AddDate(0, 0, 1), day):
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.LastPlayedDate = &day

	return awardBadges(stats, day)
}

// awardBadges creates a badge for every milestone the current streak
// newly qualifies for. A milestone is awarded at most once, ever.
func awardBadges(stats domain.UserStats, today time.Time) domain.UserStats {
	for _, milestone := range streakMilestones {
		if stats.CurrentStreak >= milestone && !stats.HasBadge(milestone) {
			stats.Badges = append(stats.Badges, domain.Badge{
				Milestone:  milestone,
				DateEarned: today,
			})
		}
	}
	return stats
}

// NewBadges returns the badges present in after but not in before.
func NewBadges(before, after domain.UserStats) []domain.Badge {
	var out []domain.Badge
	for _, b := range after.Badges {
		if !before.HasBadge(b.Milestone) {
			out = append(out, b)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
