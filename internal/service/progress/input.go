package progress

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// RecordActivityInput holds the parameters for recording an activity.
type RecordActivityInput struct {
	Type     domain.ActivityType
	Metadata map[string]any
}

// Validate checks all fields and collects all errors.
func (i *RecordActivityInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be read, quiz, vocab, game, or chat"})
	}
	if len(i.Metadata) > 50 {
		errs = append(errs, domain.FieldError{Field: "metadata", Message: "max 50 keys"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListActivitiesInput holds the parameters for listing activities.
type ListActivitiesInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *ListActivitiesInput) Validate() error {
	if i.Limit < 0 || i.Limit > maxActivityLimit {
		return domain.NewValidationError("limit", "must be between 0 and 200")
	}
	return nil
}

// SetTimezoneInput holds the parameters for changing the user's timezone.
type SetTimezoneInput struct {
	Timezone string
}

// Validate checks all fields and collects all errors.
func (i *SetTimezoneInput) Validate() error {
	if !domain.ValidateTimezone(i.Timezone) {
		return domain.NewValidationError("timezone", "must be a valid IANA timezone")
	}
	return nil
}

const (
	maxArticleIDLen  = 255
	maxTimeSpentSecs = 24 * 60 * 60
	maxQuizQuestions = 100
	maxAnswerLen     = 500
)

func checkArticleID(errs []domain.FieldError, id string) []domain.FieldError {
	if id == "" || utf8.RuneCountInString(id) > maxArticleIDLen {
		return append(errs, domain.FieldError{Field: "article_id", Message: "must be 1-255 characters"})
	}
	return errs
}

func checkTimeSpent(errs []domain.FieldError, secs int) []domain.FieldError {
	if secs < 0 || secs > maxTimeSpentSecs {
		return append(errs, domain.FieldError{Field: "time_spent_seconds", Message: "must be between 0 and 86400"})
	}
	return errs
}

// RecordReadingInput holds the parameters for logging a reading session.
type RecordReadingInput struct {
	ArticleID        string
	Completed        bool
	TimeSpentSeconds int
}

// Validate checks all fields and collects all errors.
func (i *RecordReadingInput) Validate() error {
	var errs []domain.FieldError

	i.ArticleID = domain.CleanText(i.ArticleID)
	errs = checkArticleID(errs, i.ArticleID)
	errs = checkTimeSpent(errs, i.TimeSpentSeconds)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateReadingInput holds changes to a reading session. Nil fields stay
// unchanged. A completed session cannot be reopened.
type UpdateReadingInput struct {
	ID               uuid.UUID
	Completed        *bool
	TimeSpentSeconds *int
}

// Validate checks all fields and collects all errors.
func (i *UpdateReadingInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Completed == nil && i.TimeSpentSeconds == nil {
		errs = append(errs, domain.FieldError{Field: "reading", Message: "at least one field is required"})
	}
	if i.TimeSpentSeconds != nil {
		errs = checkTimeSpent(errs, *i.TimeSpentSeconds)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListHistoryInput holds the parameters for listing reading sessions or
// quiz results.
type ListHistoryInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *ListHistoryInput) Validate() error {
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		return domain.NewValidationError("limit", "must be between 0 and 200")
	}
	return nil
}

func (i *ListHistoryInput) limit() int {
	if i.Limit == 0 {
		return defaultHistoryLimit
	}
	return i.Limit
}

// RecordQuizInput holds a finished quiz.
type RecordQuizInput struct {
	ArticleID      string
	Score          int
	TotalQuestions int
	Answers        []string
}

// Validate checks all fields and collects all errors.
func (i *RecordQuizInput) Validate() error {
	var errs []domain.FieldError

	i.ArticleID = domain.CleanText(i.ArticleID)
	errs = checkArticleID(errs, i.ArticleID)

	if i.TotalQuestions < 1 || i.TotalQuestions > maxQuizQuestions {
		errs = append(errs, domain.FieldError{Field: "total_questions", Message: "must be between 1 and 100"})
	} else if i.Score < 0 || i.Score > i.TotalQuestions {
		errs = append(errs, domain.FieldError{Field: "score", Message: "must be between 0 and total_questions"})
	}
	if len(i.Answers) > maxQuizQuestions {
		errs = append(errs, domain.FieldError{Field: "answers", Message: "max 100 answers"})
	}
	for _, a := range i.Answers {
		if utf8.RuneCountInString(a) > maxAnswerLen {
			errs = append(errs, domain.FieldError{Field: "answers", Message: "answer too long"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
