// Package querybuild holds squirrel builders shared by the SQL stores.
package querybuild

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// WordColumns is the select list of the words table, in row-struct order.
var WordColumns = []string{
	"id", "user_id", "lemma", "lemma_normalized", "pos", "ipa",
	"definition", "translation", "example", "source_article_id",
	"easiness", "interval_days", "repetitions", "next_review",
	"created_at", "updated_at",
}

// OwnedBy matches rows of a user. The id is bound as-is so drivers see
// uuid.UUID rather than a squirrel-expanded array.
func OwnedBy(userID uuid.UUID) sq.Sqlizer {
	return sq.Expr("user_id = ?", userID)
}

// ByID matches a row by primary key.
func ByID(id uuid.UUID) sq.Sqlizer {
	return sq.Expr("id = ?", id)
}

// TimeValue converts a time to the column representation of a store.
type TimeValue func(time.Time) any

// ApplyWordFilter adds the WHERE clauses of f to b.
func ApplyWordFilter(b sq.SelectBuilder, userID uuid.UUID, f domain.WordFilter, tv TimeValue) sq.SelectBuilder {
	b = b.Where(OwnedBy(userID))

	if f.Search != nil {
		if s := domain.NormalizeLemma(*f.Search); s != "" {
			b = b.Where(sq.Expr(`lemma_normalized LIKE ? ESCAPE '\'`, EscapeLike(s)+"%"))
		}
	}
	if f.DueAt != nil {
		b = b.Where(sq.LtOrEq{"next_review": tv(*f.DueAt)})
	}
	if f.SourceArticleID != nil {
		b = b.Where(sq.Eq{"source_article_id": *f.SourceArticleID})
	}
	return b
}

// WordOrder returns the ORDER BY terms of a sort mode. The id tiebreaker
// keeps pagination stable.
func WordOrder(s domain.WordSort) []string {
	switch s {
	case domain.WordSortNextReviewAsc:
		return []string{"next_review ASC", "created_at ASC", "id ASC"}
	case domain.WordSortLemmaAsc:
		return []string{"lemma_normalized ASC", "id ASC"}
	default:
		return []string{"created_at DESC", "id DESC"}
	}
}

// ListWords builds the page query and the matching count query.
func ListWords(builder sq.StatementBuilderType, userID uuid.UUID, f domain.WordFilter, tv TimeValue) (page, count sq.SelectBuilder) {
	page = ApplyWordFilter(builder.Select(WordColumns...).From("words"), userID, f, tv).
		OrderBy(WordOrder(f.Sort)...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
	count = ApplyWordFilter(builder.Select("count(*)").From("words"), userID, f, tv)
	return page, count
}

// UpdateWordFields sets the non-nil descriptive fields of a word.
func UpdateWordFields(b sq.UpdateBuilder, f domain.WordFields) sq.UpdateBuilder {
	if f.PartOfSpeech != nil {
		b = b.Set("pos", *f.PartOfSpeech)
	}
	if f.IPA != nil {
		b = b.Set("ipa", *f.IPA)
	}
	if f.Definition != nil {
		b = b.Set("definition", *f.Definition)
	}
	if f.Translation != nil {
		b = b.Set("translation", *f.Translation)
	}
	if f.Example != nil {
		b = b.Set("example", *f.Example)
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards with a backslash.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
