package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingRecord tracks one reading session of an article. ArticleID is an
// opaque identifier owned by the content source.
type ReadingRecord struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ArticleID        string
	Completed        bool
	TimeSpentSeconds int
	ReadAt           time.Time
}

// QuizResult is a finished comprehension quiz about an article.
type QuizResult struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ArticleID      string
	Score          int
	TotalQuestions int
	Answers        []string
	CompletedAt    time.Time
}
