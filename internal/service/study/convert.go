package study

import (
	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/study/sm2"
)

func toReviewState(s sm2.State) domain.ReviewState {
	return domain.ReviewState{
		Easiness:    s.Easiness,
		Interval:    s.Interval,
		Repetitions: s.Repetitions,
		NextReview:  s.NextReview,
	}
}

// resolveQuality returns the SM-2 grade of a validated review input.
func resolveQuality(input ReviewWordInput) domain.Quality {
	if input.Quality != nil {
		return domain.Quality(*input.Quality)
	}
	q, _ := input.Button.Quality()
	return q
}
