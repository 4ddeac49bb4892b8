package repository

import (
	"context"

	"github.com/ejikes/blogApi/internal/domain"
)

// ArticleQuery describes a filtered, sorted, paginated article query.
// Zero-valued fields are inactive. All active predicates combine with AND;
// Text alone expands to an OR across title, description, and body.
type ArticleQuery struct {
	// State restricts results to a single publication state.
	State domain.ArticleState
	// AuthorID restricts results to one author (exact match).
	AuthorID string
	// TitleSubstring matches case-insensitively anywhere in the title.
	TitleSubstring string
	// Tag matches articles whose tag set contains this tag.
	Tag string
	// Tags matches articles whose tag set intersects this set.
	Tags []string
	// Text matches case-insensitively in title, description, or body.
	Text string

	SortField domain.SortField
	SortAsc   bool
	Limit     int
	Offset    int
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// Create persists a new article.
	Create(ctx context.Context, article *domain.Article) error
	// GetByID fetches an article by id regardless of state. Returns nil
	// when no article matches.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// GetPublishedByID fetches an article by id constrained to the
	// published state. Returns nil when no article matches.
	GetPublishedByID(ctx context.Context, id string) (*domain.Article, error)
	// UpdateByIDAndAuthor applies the non-nil patch fields to the article
	// matching both id and author, returning the updated article. Returns
	// nil when no article matches the pair; a missing article and a
	// foreign article are indistinguishable.
	UpdateByIDAndAuthor(ctx context.Context, id, authorID string, patch domain.ArticlePatch) (*domain.Article, error)
	// DeleteByIDAndAuthor deletes the article matching both id and author,
	// returning a snapshot of the deleted row. Returns nil when no article
	// matches the pair.
	DeleteByIDAndAuthor(ctx context.Context, id, authorID string) (*domain.Article, error)
	// List returns one page of articles matching the query.
	List(ctx context.Context, q ArticleQuery) ([]domain.Article, error)
	// Count returns the total number of articles matching the query,
	// ignoring pagination.
	Count(ctx context.Context, q ArticleQuery) (int, error)
	// IncrementReadCount atomically increments the read count of a
	// published article, returning the new count.
	IncrementReadCount(ctx context.Context, id string) (int, error)
	// StatsByAuthor aggregates counts and total reads for one author.
	StatsByAuthor(ctx context.Context, authorID string) (domain.AuthorStats, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail fetches a user by email. Returns nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID fetches a user by id. Returns nil when no user matches.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
