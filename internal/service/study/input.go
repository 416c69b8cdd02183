package study

import (
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/study/sm2"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	maxDurationMs       = 600_000
)

// GetQueueInput holds the parameters for fetching the review queue.
type GetQueueInput struct {
	Limit int
}

// Validate checks the limit against the configured maximum.
func (i *GetQueueInput) Validate(maxLimit int) error {
	if i.Limit < 0 || i.Limit > maxLimit {
		return domain.NewValidationError("limit", "out of range")
	}
	return nil
}

// ReviewWordInput holds the parameters for reviewing a word. Exactly one of
// Quality and Button must be set.
type ReviewWordInput struct {
	WordID     uuid.UUID
	Quality    *int
	Button     *domain.ReviewButton
	DurationMs *int
}

// Validate checks all fields and collects all errors.
func (i *ReviewWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}

	switch {
	case i.Quality == nil && i.Button == nil:
		errs = append(errs, domain.FieldError{Field: "quality", Message: "quality or button required"})
	case i.Quality != nil && i.Button != nil:
		errs = append(errs, domain.FieldError{Field: "quality", Message: "set either quality or button, not both"})
	case i.Quality != nil:
		if err := sm2.ValidateQuality(*i.Quality); errors.Is(err, sm2.ErrQualityOutOfRange) {
			errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
		}
	case !i.Button.IsValid():
		errs = append(errs, domain.FieldError{Field: "button", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}

	if i.DurationMs != nil && (*i.DurationMs < 0 || *i.DurationMs > maxDurationMs) {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must be between 0 and 600000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UndoReviewInput holds the parameters for undoing a review.
type UndoReviewInput struct {
	WordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *UndoReviewInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}
	return nil
}

// GetWordHistoryInput holds the parameters for paging a word's reviews.
type GetWordHistoryInput struct {
	WordID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *GetWordHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
