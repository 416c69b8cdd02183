package domain

import (
	"time"

	"github.com/google/uuid"
)

// CEFRLevel is the learner's self-assessed reading level.
type CEFRLevel string

const (
	CEFRA1 CEFRLevel = "A1"
	CEFRA2 CEFRLevel = "A2"
	CEFRB1 CEFRLevel = "B1"
	CEFRB2 CEFRLevel = "B2"
	CEFRC1 CEFRLevel = "C1"
)

func (l CEFRLevel) String() string { return string(l) }

func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRA1, CEFRA2, CEFRB1, CEFRB2, CEFRC1:
		return true
	}
	return false
}

// Profile defaults applied to users who never saved a profile.
const (
	DefaultCEFRLevel        = CEFRA2
	DefaultDailyGoalMinutes = 15
)

// UserProfile holds learning preferences of a user.
type UserProfile struct {
	UserID           uuid.UUID
	CEFRLevel        CEFRLevel
	LearningGoals    string
	Topics           []string
	DailyGoalMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserProfile returns the default profile of a user.
func NewUserProfile(userID uuid.UUID) UserProfile {
	return UserProfile{
		UserID:           userID,
		CEFRLevel:        DefaultCEFRLevel,
		Topics:           []string{},
		DailyGoalMinutes: DefaultDailyGoalMinutes,
	}
}

// ProfileFields holds profile changes. Nil means "leave unchanged".
type ProfileFields struct {
	CEFRLevel        *CEFRLevel
	LearningGoals    *string
	Topics           []string
	DailyGoalMinutes *int
}

// IsEmpty reports whether no field is set.
func (f ProfileFields) IsEmpty() bool {
	return f.CEFRLevel == nil && f.LearningGoals == nil && f.Topics == nil && f.DailyGoalMinutes == nil
}

// Apply copies the set fields onto p.
func (f ProfileFields) Apply(p *UserProfile) {
	if f.CEFRLevel != nil {
		p.CEFRLevel = *f.CEFRLevel
	}
	if f.LearningGoals != nil {
		p.LearningGoals = *f.LearningGoals
	}
	if f.Topics != nil {
		p.Topics = f.Topics
	}
	if f.DailyGoalMinutes != nil {
		p.DailyGoalMinutes = *f.DailyGoalMinutes
	}
}
