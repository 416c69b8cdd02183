package rest

import (
	"time"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
)

type reviewStateResponse struct {
	Easiness    float64   `json:"easiness"`
	Interval    int       `json:"interval"`
	Repetitions int       `json:"repetitions"`
	NextReview  time.Time `json:"next_review"`
}

type wordResponse struct {
	ID              string              `json:"id"`
	Lemma           string              `json:"lemma"`
	PartOfSpeech    string              `json:"pos,omitempty"`
	IPA             string              `json:"ipa,omitempty"`
	Definition      string              `json:"definition,omitempty"`
	Translation     string              `json:"translation,omitempty"`
	Example         string              `json:"example,omitempty"`
	SourceArticleID string              `json:"source_article_id,omitempty"`
	Review          reviewStateResponse `json:"review"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type wordListResponse struct {
	Items []wordResponse `json:"items"`
	Total int            `json:"total"`
}

type reviewLogResponse struct {
	ID         string              `json:"id"`
	WordID     string              `json:"word_id"`
	Quality    int                 `json:"quality"`
	PrevState  reviewStateResponse `json:"prev_state"`
	NextState  reviewStateResponse `json:"next_state"`
	DurationMs *int                `json:"duration_ms,omitempty"`
	ReviewedAt time.Time           `json:"reviewed_at"`
}

type historyResponse struct {
	Items []reviewLogResponse `json:"items"`
	Total int                 `json:"total"`
}

type progressResponse struct {
	XP             int     `json:"xp"`
	Level          int     `json:"level"`
	Streak         int     `json:"streak"`
	LongestStreak  int     `json:"longest_streak"`
	LastActiveDate *string `json:"last_active_date,omitempty"`
	Timezone       string  `json:"timezone"`
}

type activityResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	XPEarned  int            `json:"xp_earned"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type reviewResponse struct {
	Word     wordResponse      `json:"word"`
	Log      reviewLogResponse `json:"log"`
	XPEarned int               `json:"xp_earned"`
	Progress progressResponse  `json:"progress"`
}

type recordActivityResponse struct {
	Activity activityResponse `json:"activity"`
	Progress progressResponse `json:"progress"`
}

type profileResponse struct {
	CEFRLevel        string     `json:"cefr_level"`
	LearningGoals    string     `json:"learning_goals"`
	Topics           []string   `json:"topics"`
	DailyGoalMinutes int        `json:"daily_goal_minutes"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type readingResponse struct {
	ID               string    `json:"id"`
	ArticleID        string    `json:"article_id"`
	Completed        bool      `json:"completed"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	ReadAt           time.Time `json:"read_at"`
}

type readingResultResponse struct {
	Reading  readingResponse   `json:"reading"`
	XPEarned int               `json:"xp_earned"`
	Progress *progressResponse `json:"progress,omitempty"`
}

type quizResponse struct {
	ID             string    `json:"id"`
	ArticleID      string    `json:"article_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Answers        []string  `json:"answers"`
	CompletedAt    time.Time `json:"completed_at"`
}

type quizOutcomeResponse struct {
	Quiz     quizResponse     `json:"quiz"`
	XPEarned int              `json:"xp_earned"`
	Progress progressResponse `json:"progress"`
}

type dashboardResponse struct {
	TotalWords    int `json:"total_words"`
	DueCount      int `json:"due_count"`
	ReviewedToday int `json:"reviewed_today"`
	XP            int `json:"xp"`
	Level         int `json:"level"`
	Streak        int `json:"streak"`
	LongestStreak int `json:"longest_streak"`
}

func toReviewStateResponse(s domain.ReviewState) reviewStateResponse {
	return reviewStateResponse{
		Easiness:    s.Easiness,
		Interval:    s.Interval,
		Repetitions: s.Repetitions,
		NextReview:  s.NextReview,
	}
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:              w.ID.String(),
		Lemma:           w.Lemma,
		PartOfSpeech:    w.PartOfSpeech,
		IPA:             w.IPA,
		Definition:      w.Definition,
		Translation:     w.Translation,
		Example:         w.Example,
		SourceArticleID: w.SourceArticleID,
		Review:          toReviewStateResponse(w.Review),
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, toWordResponse(w))
	}
	return out
}

func toReviewLogResponse(l domain.ReviewLog) reviewLogResponse {
	return reviewLogResponse{
		ID:         l.ID.String(),
		WordID:     l.WordID.String(),
		Quality:    int(l.Quality),
		PrevState:  toReviewStateResponse(l.PrevState),
		NextState:  toReviewStateResponse(l.NextState),
		DurationMs: l.DurationMs,
		ReviewedAt: l.ReviewedAt,
	}
}

func toProgressResponse(p domain.Progress) progressResponse {
	resp := progressResponse{
		XP:            p.XP,
		Level:         p.Level,
		Streak:        p.Streak,
		LongestStreak: p.LongestStreak,
		Timezone:      p.Timezone,
	}
	if p.LastActiveDate != nil {
		d := p.LastActiveDate.Format(time.DateOnly)
		resp.LastActiveDate = &d
	}
	return resp
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:        a.ID.String(),
		Type:      a.Type.String(),
		XPEarned:  a.XPEarned,
		Metadata:  a.Metadata,
		CreatedAt: a.CreatedAt,
	}
}

func toProfileResponse(p domain.UserProfile) profileResponse {
	resp := profileResponse{
		CEFRLevel:        p.CEFRLevel.String(),
		LearningGoals:    p.LearningGoals,
		Topics:           p.Topics,
		DailyGoalMinutes: p.DailyGoalMinutes,
	}
	if resp.Topics == nil {
		resp.Topics = []string{}
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

func toReadingResponse(r domain.ReadingRecord) readingResponse {
	return readingResponse{
		ID:               r.ID.String(),
		ArticleID:        r.ArticleID,
		Completed:        r.Completed,
		TimeSpentSeconds: r.TimeSpentSeconds,
		ReadAt:           r.ReadAt,
	}
}

func toReadingResultResponse(res progress.ReadingResult) readingResultResponse {
	resp := readingResultResponse{
		Reading:  toReadingResponse(res.Reading),
		XPEarned: res.XPEarned,
	}
	if res.Progress != nil {
		p := toProgressResponse(*res.Progress)
		resp.Progress = &p
	}
	return resp
}

func toQuizResponse(q domain.QuizResult) quizResponse {
	answers := q.Answers
	if answers == nil {
		answers = []string{}
	}
	return quizResponse{
		ID:             q.ID.String(),
		ArticleID:      q.ArticleID,
		Score:          q.Score,
		TotalQuestions: q.TotalQuestions,
		Answers:        answers,
		CompletedAt:    q.CompletedAt,
	}
}
