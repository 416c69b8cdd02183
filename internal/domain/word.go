package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary entry saved by a learner. Each word owns exactly one
// ReviewState.
type Word struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Lemma           string
	LemmaNormalized string
	PartOfSpeech    string
	IPA             string
	Definition      string
	Translation     string
	Example         string
	SourceArticleID string
	Review          ReviewState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReviewState is the SM-2 scheduling state of a word.
type ReviewState struct {
	Easiness    float64   `json:"easiness"`
	Interval    int       `json:"interval"`
	Repetitions int       `json:"repetitions"`
	NextReview  time.Time `json:"next_review"`
}

// IsDue returns true when NextReview <= now.
func (s ReviewState) IsDue(now time.Time) bool {
	return !s.NextReview.After(now)
}

// WordSort selects the ordering of a word listing.
type WordSort string

const (
	WordSortCreatedDesc   WordSort = "created_desc"
	WordSortNextReviewAsc WordSort = "next_review_asc"
	WordSortLemmaAsc      WordSort = "lemma_asc"
)

func (s WordSort) String() string { return string(s) }

func (s WordSort) IsValid() bool {
	switch s {
	case WordSortCreatedDesc, WordSortNextReviewAsc, WordSortLemmaAsc:
		return true
	}
	return false
}

// WordFilter contains filtering/pagination parameters for word listings.
// DueAt, when set, keeps only words with next_review <= *DueAt.
type WordFilter struct {
	Search          *string
	DueAt           *time.Time
	SourceArticleID *string
	Sort            WordSort
	Limit           int
	Offset          int
}

// WordFields holds the mutable descriptive fields of a word. Nil means
// "leave unchanged".
type WordFields struct {
	PartOfSpeech *string
	IPA          *string
	Definition   *string
	Translation  *string
	Example      *string
}

// IsEmpty reports whether no field is set.
func (f WordFields) IsEmpty() bool {
	return f.PartOfSpeech == nil && f.IPA == nil && f.Definition == nil &&
		f.Translation == nil && f.Example == nil
}
