package study

import "github.com/heartmarshall/mylingua-backend/internal/domain"

// ReviewResult is the outcome of a review.
type ReviewResult struct {
	Word     domain.Word
	Log      domain.ReviewLog
	XPEarned int
	Progress domain.Progress
}

// WordHistory is a page of review logs of one word.
type WordHistory struct {
	Logs  []domain.ReviewLog
	Total int
}
