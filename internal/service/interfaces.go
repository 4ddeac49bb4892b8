package service

import (
	"context"

	"github.com/ejikes/blogApi/internal/domain"
)

// ArticleServiceInterface defines the article operations exposed to handlers.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Create stores a new draft article owned by authorID.
	Create(ctx context.Context, input domain.ArticleInput, authorID string) (*domain.Article, error)
	// Publish moves the requester's article into the published state.
	Publish(ctx context.Context, id, requesterID string) (*domain.Article, error)
	// Update applies a patch to the requester's article.
	Update(ctx context.Context, id, requesterID string, patch domain.ArticlePatch) (*domain.Article, error)
	// Delete removes the requester's article and returns its last snapshot.
	Delete(ctx context.Context, id, requesterID string) (*domain.Article, error)
	// GetOwned fetches the requester's article regardless of state.
	GetOwned(ctx context.Context, id, requesterID string) (*domain.Article, error)
	// ListPublished returns one page of published articles.
	ListPublished(ctx context.Context, opts domain.PublishedListOptions) ([]domain.Article, domain.Pagination, error)
	// ListOwned returns one page of the owner's articles.
	ListOwned(ctx context.Context, ownerID string, opts domain.OwnedListOptions) ([]domain.Article, domain.Pagination, error)
	// Search returns one page of published articles matching the criteria.
	Search(ctx context.Context, opts domain.SearchOptions) ([]domain.Article, domain.Pagination, error)
	// GetPublishedDetail fetches a published article, optionally counting the read.
	GetPublishedDetail(ctx context.Context, id string, incrementRead bool) (*domain.Article, error)
	// Stats aggregates article counts and reads for an owner.
	Stats(ctx context.Context, ownerID string) (domain.AuthorStats, error)
}

// AuthServiceInterface defines authentication operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Signup registers a new user and returns a token plus the public user.
	Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error)
	// Login verifies credentials and returns a token.
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	// GetUser fetches a user by id.
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
