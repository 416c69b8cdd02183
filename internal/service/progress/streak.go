package progress

import (
	"time"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// advanceStreak applies an activity on the calendar day today to p.
// Activity on the same day keeps the streak, the day after extends it,
// a gap restarts it at 1.
func advanceStreak(p *domain.Progress, today time.Time) {
	last := p.LastActiveDate

	switch {
	case last == nil:
		p.Streak = 1
	case !today.After(*last):
		// Same day, or a timezone change moved the local date backwards.
		p.Streak = max(p.Streak, 1)
	case last.AddDate(0, 0, 1).Equal(today):
		p.Streak++
	default:
		p.Streak = 1
	}

	p.LongestStreak = max(p.LongestStreak, p.Streak)
	if last == nil || today.After(*last) {
		d := today
		p.LastActiveDate = &d
	}
}

// currentStreak returns the streak as seen on today: it lapses to 0 once a
// full local day passes without activity.
func currentStreak(p *domain.Progress, today time.Time) int {
	if p.LastActiveDate == nil {
		return 0
	}
	if p.LastActiveDate.AddDate(0, 0, 1).Before(today) {
		return 0
	}
	return p.Streak
}
