package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord inserts a word with the initial review state due at nextReview.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, nextReview time.Time) domain.Word {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lemma := "word-" + uniqueSuffix()
	w := domain.Word{
		ID:              uuid.New(),
		UserID:          userID,
		Lemma:           lemma,
		LemmaNormalized: domain.NormalizeLemma(lemma),
		Definition:      "seeded definition",
		Review: domain.ReviewState{
			Easiness:   2.5,
			Interval:   1,
			NextReview: nextReview.UTC().Truncate(time.Microsecond),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, user_id, lemma, lemma_normalized, definition,
		                    easiness, interval_days, repetitions, next_review, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		w.ID, w.UserID, w.Lemma, w.LemmaNormalized, w.Definition,
		w.Review.Easiness, w.Review.Interval, w.Review.Repetitions, w.Review.NextReview,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}

// WordExists reports whether a word row with the given ID exists.
func WordExists(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM words WHERE id = $1)`, wordID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: WordExists query: %v", err)
	}
	return exists
}
