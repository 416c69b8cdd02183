package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies an XP-earning learner action.
type ActivityType string

const (
	ActivityRead  ActivityType = "read"
	ActivityQuiz  ActivityType = "quiz"
	ActivityVocab ActivityType = "vocab"
	ActivityGame  ActivityType = "game"
	ActivityChat  ActivityType = "chat"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityRead, ActivityQuiz, ActivityVocab, ActivityGame, ActivityChat:
		return true
	}
	return false
}

// Activity is one entry of the append-only activity log.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      ActivityType
	XPEarned  int
	Metadata  map[string]any
	CreatedAt time.Time
}

// Progress is the gamification state of a user.
// LastActiveDate is a calendar date (midnight UTC) in the user's timezone.
type Progress struct {
	UserID         uuid.UUID
	XP             int
	Level          int
	Streak         int
	LongestStreak  int
	LastActiveDate *time.Time
	Timezone       string
	UpdatedAt      time.Time
}

// NewProgress returns the zero progress of a user who has no activity yet.
func NewProgress(userID uuid.UUID) Progress {
	return Progress{
		UserID:   userID,
		Level:    1,
		Timezone: "UTC",
	}
}

// LevelForXP returns 1 + xp/xpPerLevel.
func LevelForXP(xp, xpPerLevel int) int {
	if xpPerLevel <= 0 || xp < 0 {
		return 1
	}
	return 1 + xp/xpPerLevel
}
