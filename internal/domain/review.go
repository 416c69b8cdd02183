package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quality is an SM-2 recall grade in [0, 5].
type Quality int

const (
	QualityBlackout  Quality = 0
	QualityWrong     Quality = 1
	QualityWrongEasy Quality = 2
	QualityHard      Quality = 3
	QualityGood      Quality = 4
	QualityPerfect   Quality = 5
)

func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// ReviewButton is the four-button answer shown in study UIs.
type ReviewButton string

const (
	ReviewButtonAgain ReviewButton = "AGAIN"
	ReviewButtonHard  ReviewButton = "HARD"
	ReviewButtonGood  ReviewButton = "GOOD"
	ReviewButtonEasy  ReviewButton = "EASY"
)

func (b ReviewButton) String() string { return string(b) }

func (b ReviewButton) IsValid() bool {
	switch b {
	case ReviewButtonAgain, ReviewButtonHard, ReviewButtonGood, ReviewButtonEasy:
		return true
	}
	return false
}

// Quality maps a button to its SM-2 grade.
func (b ReviewButton) Quality() (Quality, bool) {
	switch b {
	case ReviewButtonAgain:
		return QualityWrong, true
	case ReviewButtonHard:
		return QualityHard, true
	case ReviewButtonGood:
		return QualityGood, true
	case ReviewButtonEasy:
		return QualityPerfect, true
	}
	return 0, false
}

// ReviewLog records a single review event for a word.
type ReviewLog struct {
	ID         uuid.UUID
	WordID     uuid.UUID
	UserID     uuid.UUID
	Quality    Quality
	PrevState  ReviewState
	NextState  ReviewState
	DurationMs *int
	ReviewedAt time.Time
}

// Dashboard holds aggregated study statistics for the user.
type Dashboard struct {
	TotalWords    int
	DueCount      int
	ReviewedToday int
	XP            int
	Level         int
	Streak        int
	LongestStreak int
}
