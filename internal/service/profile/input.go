package profile

import (
	"unicode/utf8"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

const (
	maxGoalsLen      = 2000
	maxTopics        = 20
	maxTopicLen      = 50
	minDailyGoalMins = 1
	maxDailyGoalMins = 600
)

// UpdateProfileInput holds the parameters for editing the profile. Nil
// fields stay unchanged; a non-nil empty Topics clears the list.
type UpdateProfileInput struct {
	CEFRLevel        *domain.CEFRLevel
	LearningGoals    *string
	Topics           *[]string
	DailyGoalMinutes *int
}

// Fields returns the cleaned field changes. Topics are trimmed and
// de-duplicated, keeping the first occurrence.
func (i *UpdateProfileInput) Fields() domain.ProfileFields {
	f := domain.ProfileFields{
		CEFRLevel:        i.CEFRLevel,
		LearningGoals:    domain.CleanTextPtr(i.LearningGoals),
		DailyGoalMinutes: i.DailyGoalMinutes,
	}
	if i.Topics != nil {
		f.Topics = make([]string, 0, len(*i.Topics))
		seen := make(map[string]struct{}, len(*i.Topics))
		for _, t := range *i.Topics {
			t = domain.CleanText(t)
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			f.Topics = append(f.Topics, t)
		}
	}
	return f
}

// Validate checks all fields and collects all errors.
func (i *UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	f := i.Fields()
	if f.IsEmpty() {
		return domain.NewValidationError("profile", "at least one field is required")
	}
	if f.CEFRLevel != nil && !f.CEFRLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "cefr_level", Message: "must be A1, A2, B1, B2, or C1"})
	}
	if f.LearningGoals != nil && utf8.RuneCountInString(*f.LearningGoals) > maxGoalsLen {
		errs = append(errs, domain.FieldError{Field: "learning_goals", Message: "too long"})
	}
	if f.Topics != nil {
		if len(f.Topics) > maxTopics {
			errs = append(errs, domain.FieldError{Field: "topics", Message: "max 20 topics"})
		}
		for _, t := range f.Topics {
			if t == "" || utf8.RuneCountInString(t) > maxTopicLen {
				errs = append(errs, domain.FieldError{Field: "topics", Message: "each topic must be 1-50 characters"})
				break
			}
		}
	}
	if m := f.DailyGoalMinutes; m != nil && (*m < minDailyGoalMins || *m > maxDailyGoalMins) {
		errs = append(errs, domain.FieldError{Field: "daily_goal_minutes", Message: "must be between 1 and 600"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
