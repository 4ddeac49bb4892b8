package service

import (
	"context"
	"fmt"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/metrics"
	"github.com/ejikes/blogApi/internal/repository"
)

// ArticleQueryEngine builds and executes the filtered, sorted, paginated
// queries the public read surface is made of. Every query path here applies
// its base predicate before any caller-supplied filter, so drafts can never
// leak through a published listing.
type ArticleQueryEngine struct {
	articles repository.ArticleRepository
}

// NewArticleQueryEngine creates a new ArticleQueryEngine.
func NewArticleQueryEngine(articles repository.ArticleRepository) *ArticleQueryEngine {
	return &ArticleQueryEngine{articles: articles}
}

// ListPublished returns one page of published articles. The sort field is
// constrained to the allow-list (read_count, reading_time, created_at, with
// timestamp as a created_at alias); anything else sorts by created_at.
// Any order value other than "asc" sorts descending.
func (e *ArticleQueryEngine) ListPublished(ctx context.Context, opts domain.PublishedListOptions) ([]domain.Article, domain.Pagination, error) {
	q := repository.ArticleQuery{
		State:          domain.StatePublished,
		AuthorID:       opts.Author,
		TitleSubstring: opts.Title,
		Tag:            opts.Tag,
		SortField:      domain.NormalizeSortField(opts.OrderBy),
		SortAsc:        opts.Order == "asc",
		Limit:          opts.Limit,
		Offset:         (opts.Page - 1) * opts.Limit,
	}

	metrics.ArticleQueries.WithLabelValues("list_published").Inc()
	return e.run(ctx, q, opts.Page, opts.Limit)
}

// ListOwned returns one page of the owner's articles, newest first. A state
// filter outside {draft, published} is ignored rather than rejected.
func (e *ArticleQueryEngine) ListOwned(ctx context.Context, ownerID string, opts domain.OwnedListOptions) ([]domain.Article, domain.Pagination, error) {
	q := repository.ArticleQuery{
		AuthorID:  ownerID,
		SortField: domain.SortByCreatedAt,
		Limit:     opts.Limit,
		Offset:    (opts.Page - 1) * opts.Limit,
	}
	if domain.IsValidState(opts.State) {
		q.State = domain.ArticleState(opts.State)
	}

	metrics.ArticleQueries.WithLabelValues("list_owned").Inc()
	return e.run(ctx, q, opts.Page, opts.Limit)
}

// Search returns one page of published articles matching the criteria. The
// text query matches any of title, description, or body; tags match on set
// intersection; active criteria combine with AND. Results are always newest
// first.
func (e *ArticleQueryEngine) Search(ctx context.Context, opts domain.SearchOptions) ([]domain.Article, domain.Pagination, error) {
	q := repository.ArticleQuery{
		State:     domain.StatePublished,
		AuthorID:  opts.Author,
		Text:      opts.Query,
		Tags:      opts.Tags,
		SortField: domain.SortByCreatedAt,
		Limit:     opts.Limit,
		Offset:    (opts.Page - 1) * opts.Limit,
	}

	metrics.ArticleQueries.WithLabelValues("search").Inc()
	return e.run(ctx, q, opts.Page, opts.Limit)
}

// GetPublishedDetail fetches a published article by id. When incrementRead
// is set the read count is bumped atomically in place before returning, so
// the returned article carries the new count.
func (e *ArticleQueryEngine) GetPublishedDetail(ctx context.Context, id string, incrementRead bool) (*domain.Article, error) {
	article, err := e.articles.GetPublishedByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get published article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}

	if incrementRead {
		count, err := e.articles.IncrementReadCount(ctx, id)
		if err != nil {
			return nil, err
		}
		article.ReadCount = count
		metrics.ArticleReads.Inc()
	}

	return article, nil
}

// Stats aggregates article counts and reads for an owner. An owner with no
// articles gets all zeroes, not an error.
func (e *ArticleQueryEngine) Stats(ctx context.Context, ownerID string) (domain.AuthorStats, error) {
	return e.articles.StatsByAuthor(ctx, ownerID)
}

// run executes a list query and its matching count in sequence and shapes
// the pagination result.
func (e *ArticleQueryEngine) run(ctx context.Context, q repository.ArticleQuery, page, limit int) ([]domain.Article, domain.Pagination, error) {
	articles, err := e.articles.List(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list articles: %w", err)
	}

	total, err := e.articles.Count(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("count articles: %w", err)
	}

	return articles, paginate(total, page, limit), nil
}

// paginate computes the page descriptor for a result set.
func paginate(total, page, limit int) domain.Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return domain.Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
