// Package word implements the Word repository using PostgreSQL.
// Fixed queries are raw SQL; filtered listings are built with squirrel.
package word

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mylingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mylingua-backend/internal/adapter/querybuild"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var (
	columns   = strings.Join(querybuild.WordColumns, ", ")
	returning = "RETURNING " + columns
)

var (
	getByIDSQL          = `SELECT ` + columns + ` FROM words WHERE id = $1 AND user_id = $2`
	getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`
)

const (
	countSQL    = `SELECT count(*) FROM words WHERE user_id = $1`
	countDueSQL = `SELECT count(*) FROM words WHERE user_id = $1 AND next_review <= $2`
	deleteSQL   = `DELETE FROM words WHERE id = $1 AND user_id = $2`
)

type row struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Lemma           string    `db:"lemma"`
	LemmaNormalized string    `db:"lemma_normalized"`
	POS             string    `db:"pos"`
	IPA             string    `db:"ipa"`
	Definition      string    `db:"definition"`
	Translation     string    `db:"translation"`
	Example         string    `db:"example"`
	SourceArticleID string    `db:"source_article_id"`
	Easiness        float64   `db:"easiness"`
	IntervalDays    int       `db:"interval_days"`
	Repetitions     int       `db:"repetitions"`
	NextReview      time.Time `db:"next_review"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Word {
	return &domain.Word{
		ID:              r.ID,
		UserID:          r.UserID,
		Lemma:           r.Lemma,
		LemmaNormalized: r.LemmaNormalized,
		PartOfSpeech:    r.POS,
		IPA:             r.IPA,
		Definition:      r.Definition,
		Translation:     r.Translation,
		Example:         r.Example,
		SourceArticleID: r.SourceArticleID,
		Review: domain.ReviewState{
			Easiness:    r.Easiness,
			Interval:    r.IntervalDays,
			Repetitions: r.Repetitions,
			NextReview:  r.NextReview,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainList(rows []row) []domain.Word {
	words := make([]domain.Word, len(rows))
	for i, r := range rows {
		words[i] = *r.toDomain()
	}
	return words
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return r.get(ctx, getByIDSQL, userID, wordID)
}

// GetByIDForUpdate is GetByID taking a row lock until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	return r.get(ctx, getByIDForUpdateSQL, userID, wordID)
}

func (r *Repo) get(ctx context.Context, query string, userID, wordID uuid.UUID) (*domain.Word, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, wordID, userID); err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}
	return dst.toDomain(), nil
}

// List returns a page of words matching filter and the total match count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	page, count := querybuild.ListWords(postgres.Builder(), userID, filter, pgTime)

	cntSQL, cntArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count words: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, cntSQL, cntArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	pageSQL, pageArgs, err := page.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list words: %w", err)
	}
	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, pageSQL, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}

	return toDomainList(rows), total, nil
}

// GetDue returns words with next_review <= now, oldest first.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Word, error) {
	page, _ := querybuild.ListWords(postgres.Builder(), userID, domain.WordFilter{
		DueAt: &now,
		Sort:  domain.WordSortNextReviewAsc,
		Limit: limit,
	}, pgTime)

	query, args, err := page.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due words: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get due words: %w", err)
	}
	return toDomainList(rows), nil
}

// CountDue returns the number of words with next_review <= now.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countDueSQL, userID, now).Scan(&n); err != nil {
		return 0, fmt.Errorf("count due words: %w", err)
	}
	return n, nil
}

// Count returns the number of saved words of a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word with its review state.
// A second word with the same normalized lemma returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	query, args, err := postgres.Builder().
		Insert("words").
		Columns(querybuild.WordColumns...).
		Values(
			w.ID, w.UserID, w.Lemma, w.LemmaNormalized, w.PartOfSpeech, w.IPA,
			w.Definition, w.Translation, w.Example, w.SourceArticleID,
			w.Review.Easiness, w.Review.Interval, w.Review.Repetitions, w.Review.NextReview,
			w.CreatedAt, w.UpdatedAt,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert word: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}
	return dst.toDomain(), nil
}

// Update changes the descriptive fields of a word. The review state is
// never touched.
func (r *Repo) Update(ctx context.Context, userID, wordID uuid.UUID, fields domain.WordFields) (*domain.Word, error) {
	if fields.IsEmpty() {
		return r.GetByID(ctx, userID, wordID)
	}

	b := postgres.Builder().Update("words").Set("updated_at", time.Now().UTC())
	query, args, err := querybuild.UpdateWordFields(b, fields).
		Where(querybuild.ByID(wordID)).
		Where(querybuild.OwnedBy(userID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}
	return dst.toDomain(), nil
}

// UpdateReviewState overwrites the SM-2 state of a word.
func (r *Repo) UpdateReviewState(ctx context.Context, userID, wordID uuid.UUID, state domain.ReviewState) (*domain.Word, error) {
	query, args, err := postgres.Builder().
		Update("words").
		Set("easiness", state.Easiness).
		Set("interval_days", state.Interval).
		Set("repetitions", state.Repetitions).
		Set("next_review", state.NextReview).
		Set("updated_at", time.Now().UTC()).
		Where(querybuild.ByID(wordID)).
		Where(querybuild.OwnedBy(userID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update review state: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}
	return dst.toDomain(), nil
}

// Delete removes a word; review logs cascade.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, wordID, userID)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

func pgTime(t time.Time) any { return t }
