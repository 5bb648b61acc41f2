package scoring

import "time"

// DefaultStreakHorizon caps how many days Streak walks backward, keeping the
// scan finite even for long-lived accounts.
const DefaultStreakHorizon = 30

// Streak counts consecutive local calendar days with at least one record,
// walking backward from now. Today is checked first: a historical run does
// not count if there is no record today. The walk stops at the first gap or
// after horizon days.
func Streak(timestamps []time.Time, now time.Time, horizon int) int {
	if horizon <= 0 {
		horizon = DefaultStreakHorizon
	}

	days := make(map[time.Time]struct{}, len(timestamps))
	for _, ts := range timestamps {
		days[midnight(ts.Local())] = struct{}{}
	}

	streak := 0
	day := midnight(now.Local())
	for i := 0; i < horizon; i++ {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Badge identifiers. Badges are recomputed from the current record set on
// every read; none of them is persisted, so shrinking the record set can
// take a badge away again.
const (
	BadgeFirstTest      = "first_test"
	BadgeFiveTests      = "five_tests"
	BadgeSevenDayStreak = "seven_day_streak"
)

const (
	firstTestThreshold   = 1
	fiveTestsThreshold   = 5
	streakBadgeThreshold = 7
)

// Badges evaluates every badge predicate independently against the current
// record count and streak. The predicates are not mutually exclusive.
func Badges(recordCount, streak int) []string {
	badges := make([]string, 0, 3)
	if recordCount >= firstTestThreshold {
		badges = append(badges, BadgeFirstTest)
	}
	if recordCount >= fiveTestsThreshold {
		badges = append(badges, BadgeFiveTests)
	}
	if streak >= streakBadgeThreshold {
		badges = append(badges, BadgeSevenDayStreak)
	}
	return badges
}
