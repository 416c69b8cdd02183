package progress

import "github.com/heartmarshall/mylingua-backend/internal/domain"

// RecordActivityResult is the stored activity and the progress after it.
type RecordActivityResult struct {
	Activity domain.Activity
	Progress domain.Progress
}

// ReadingResult is a stored reading session. XPEarned and Progress are set
// only when the call completed the session.
type ReadingResult struct {
	Reading  domain.ReadingRecord
	XPEarned int
	Progress *domain.Progress
}

// QuizResultOutcome is a stored quiz result and the progress after its XP.
type QuizResultOutcome struct {
	Result   domain.QuizResult
	XPEarned int
	Progress domain.Progress
}
