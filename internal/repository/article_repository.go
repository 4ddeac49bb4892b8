package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ejikes/blogApi/internal/domain"
)

const articleColumns = "id, title, description, body, tags, author_id, state, reading_time, read_count, created_at, updated_at"

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create persists a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, title, description, body, tags, author_id, state, reading_time, read_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`, a.ID, a.Title, a.Description, a.Body, tags, a.AuthorID, a.State, a.ReadingTime, a.ReadCount)

	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID fetches an article by id regardless of state.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns), id)
	return scanArticleRow(row)
}

// GetPublishedByID fetches an article by id constrained to the published state.
func (r *PostgresArticleRepository) GetPublishedByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM articles WHERE id = $1 AND state = $2", articleColumns),
		id, domain.StatePublished)
	return scanArticleRow(row)
}

// UpdateByIDAndAuthor applies the non-nil patch fields to the article owned
// by authorID. The single ownership-scoped statement means a missing article
// and a foreign article both come back as no match.
func (r *PostgresArticleRepository) UpdateByIDAndAuthor(ctx context.Context, id, authorID string, patch domain.ArticlePatch) (*domain.Article, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id, authorID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Body != nil {
		addSet("body", *patch.Body)
	}
	if patch.Tags != nil {
		addSet("tags", patch.Tags)
	}
	if patch.State != nil {
		addSet("state", *patch.State)
	}
	if patch.ReadingTime != nil {
		addSet("reading_time", *patch.ReadingTime)
	}

	query := fmt.Sprintf(`
		UPDATE articles SET %s
		WHERE id = $1 AND author_id = $2
		RETURNING %s
	`, strings.Join(sets, ", "), articleColumns)

	return scanArticleRow(r.pool.QueryRow(ctx, query, args...))
}

// DeleteByIDAndAuthor deletes the article owned by authorID and returns a
// snapshot of the deleted row.
func (r *PostgresArticleRepository) DeleteByIDAndAuthor(ctx context.Context, id, authorID string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		DELETE FROM articles
		WHERE id = $1 AND author_id = $2
		RETURNING %s
	`, articleColumns), id, authorID)
	return scanArticleRow(row)
}

// List returns one page of articles matching the query.
func (r *PostgresArticleRepository) List(ctx context.Context, q ArticleQuery) ([]domain.Article, error) {
	where, args := buildArticleWhere(q)

	dir := "DESC"
	if q.SortAsc {
		dir = "ASC"
	}

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, q.Limit)
	limitArg := len(args)
	args = append(args, offset)
	offsetArg := len(args)

	// Secondary sort on id keeps pagination stable across equal keys.
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		%s
		ORDER BY %s %s, id %s
		LIMIT $%d OFFSET $%d
	`, articleColumns, where, sortColumn(q.SortField), dir, dir, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}

// Count returns the total number of articles matching the query.
func (r *PostgresArticleRepository) Count(ctx context.Context, q ArticleQuery) (int, error) {
	where, args := buildArticleWhere(q)

	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles "+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// IncrementReadCount bumps the read count of a published article in place,
// so concurrent detail reads never lose increments.
func (r *PostgresArticleRepository) IncrementReadCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET read_count = read_count + 1
		WHERE id = $1 AND state = $2
		RETURNING read_count
	`, id, domain.StatePublished).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment read count: %w", err)
	}
	return count, nil
}

// StatsByAuthor aggregates counts and total reads for one author in a single
// pass over the author's articles.
func (r *PostgresArticleRepository) StatsByAuthor(ctx context.Context, authorID string) (domain.AuthorStats, error) {
	var stats domain.AuthorStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE state = $2),
		       COUNT(*) FILTER (WHERE state = $3),
		       COALESCE(SUM(read_count), 0)
		FROM articles
		WHERE author_id = $1
	`, authorID, domain.StatePublished, domain.StateDraft).
		Scan(&stats.Total, &stats.Published, &stats.Drafts, &stats.TotalReads)
	if err != nil {
		return domain.AuthorStats{}, fmt.Errorf("author stats: %w", err)
	}
	return stats, nil
}

// buildArticleWhere renders the active predicates of q as a WHERE clause.
func buildArticleWhere(q ArticleQuery) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if q.State != "" {
		add("state = $%d", q.State)
	}
	if q.AuthorID != "" {
		add("author_id = $%d", q.AuthorID)
	}
	if q.TitleSubstring != "" {
		add("title ILIKE $%d", "%"+q.TitleSubstring+"%")
	}
	if q.Tag != "" {
		add("$%d = ANY(tags)", q.Tag)
	}
	if len(q.Tags) > 0 {
		add("tags && $%d", q.Tags)
	}
	if q.Text != "" {
		args = append(args, "%"+q.Text+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR body ILIKE $%d)", n, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// sortColumn maps a SortField onto a column name. Only allow-listed fields
// ever reach the query text; anything else sorts by creation time.
func sortColumn(f domain.SortField) string {
	switch f {
	case domain.SortByReadCount:
		return "read_count"
	case domain.SortByReadingTime:
		return "reading_time"
	default:
		return "created_at"
	}
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Body, &a.Tags, &a.AuthorID,
		&a.State, &a.ReadingTime, &a.ReadCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan article: %w", err)
	}
	return &a, nil
}

// scanArticleRow scans a single-row query, mapping no-rows to a nil article.
func scanArticleRow(row pgx.Row) (*domain.Article, error) {
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}
