// Package sm2 implements the SuperMemo-2 review scheduler.
//
// The scheduler is a pure function of its inputs: it never reads the clock
// and never touches storage.
package sm2

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	DefaultEasiness = 2.5
	MinEasiness     = 1.3

	MinQuality     = 0
	MaxQuality     = 5
	PassingQuality = 3

	FirstInterval  = 1
	SecondInterval = 6
)

// ErrQualityOutOfRange is returned when a quality grade is outside [0, 5].
var ErrQualityOutOfRange = errors.New("sm2: quality out of range")

// State is the scheduling state of a single item.
type State struct {
	Easiness    float64
	Interval    int
	Repetitions int
	NextReview  time.Time
}

// Initial returns the state of a freshly saved item.
func Initial(now time.Time) State {
	return State{
		Easiness:    DefaultEasiness,
		Interval:    FirstInterval,
		Repetitions: 0,
		NextReview:  now.AddDate(0, 0, FirstInterval),
	}
}

// IsDue reports whether the item should be shown for review at now.
func (s State) IsDue(now time.Time) bool {
	return !s.NextReview.After(now)
}

// Schedule computes the next state after a review graded with quality.
// The easiness update always uses the easiness passed in, and the new
// interval of a third or later successful review uses the new easiness.
func Schedule(quality int, easiness float64, interval, repetitions int, now time.Time) (State, error) {
	if err := ValidateQuality(quality); err != nil {
		return State{}, err
	}

	newEasiness := nextEasiness(easiness, quality)

	var newInterval, newRepetitions int
	if quality < PassingQuality {
		newRepetitions = 0
		newInterval = FirstInterval
	} else {
		newRepetitions = repetitions + 1
		switch newRepetitions {
		case 1:
			newInterval = FirstInterval
		case 2:
			newInterval = SecondInterval
		default:
			newInterval = int(math.Round(float64(interval) * newEasiness))
		}
	}

	return State{
		Easiness:    newEasiness,
		Interval:    newInterval,
		Repetitions: newRepetitions,
		NextReview:  now.AddDate(0, 0, newInterval),
	}, nil
}

// Review is Schedule applied to an existing State.
func (s State) Review(quality int, now time.Time) (State, error) {
	return Schedule(quality, s.Easiness, s.Interval, s.Repetitions, now)
}

// ValidateQuality returns ErrQualityOutOfRange for grades outside [0, 5].
func ValidateQuality(quality int) error {
	if quality < MinQuality || quality > MaxQuality {
		return fmt.Errorf("%w: %d", ErrQualityOutOfRange, quality)
	}
	return nil
}

func nextEasiness(easiness float64, quality int) float64 {
	d := float64(MaxQuality - quality)
	return math.Max(MinEasiness, easiness+(0.1-d*(0.08+d*0.02)))
}
