package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/logger"
	"github.com/ejikes/blogApi/internal/metrics"
	"github.com/ejikes/blogApi/internal/readingtime"
	"github.com/ejikes/blogApi/internal/repository"
)

// ArticleLifecycle owns article state transitions and ownership-scoped
// mutation. Publish, Update, and Delete all collapse "does not exist" and
// "not yours" into domain.ErrNotFoundOrUnauthorized so the outcome never
// discloses whether a foreign article exists.
type ArticleLifecycle struct {
	articles repository.ArticleRepository
}

// NewArticleLifecycle creates a new ArticleLifecycle.
func NewArticleLifecycle(articles repository.ArticleRepository) *ArticleLifecycle {
	return &ArticleLifecycle{articles: articles}
}

// Create stores a new draft article owned by authorID.
func (l *ArticleLifecycle) Create(ctx context.Context, input domain.ArticleInput, authorID string) (*domain.Article, error) {
	article := &domain.Article{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		Tags:        input.Tags,
		AuthorID:    authorID,
		State:       domain.StateDraft,
		ReadingTime: readingtime.Estimate(input.Body),
		ReadCount:   0,
	}

	if err := l.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.ArticlesCreated.Inc()
	logger.Debug("article created",
		slog.String("article_id", article.ID),
		slog.String("author_id", authorID))
	return article, nil
}

// Publish moves the requester's article into the published state. Publishing
// an already-published article succeeds without further effect.
func (l *ArticleLifecycle) Publish(ctx context.Context, id, requesterID string) (*domain.Article, error) {
	published := domain.StatePublished
	article, err := l.articles.UpdateByIDAndAuthor(ctx, id, requesterID, domain.ArticlePatch{State: &published})
	if err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFoundOrUnauthorized
	}

	metrics.ArticlesPublished.Inc()
	logger.Debug("article published", slog.String("article_id", id))
	return article, nil
}

// Update applies the recognized patch fields to the requester's article. A
// body change recomputes the reading time; a state change can only move the
// article to published, since published is terminal.
func (l *ArticleLifecycle) Update(ctx context.Context, id, requesterID string, patch domain.ArticlePatch) (*domain.Article, error) {
	patch.ReadingTime = nil
	if patch.Body != nil {
		rt := readingtime.Estimate(*patch.Body)
		patch.ReadingTime = &rt
	}
	if patch.State != nil && *patch.State != domain.StatePublished {
		patch.State = nil
	}

	article, err := l.articles.UpdateByIDAndAuthor(ctx, id, requesterID, patch)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	return article, nil
}

// Delete removes the requester's article and returns its last snapshot.
func (l *ArticleLifecycle) Delete(ctx context.Context, id, requesterID string) (*domain.Article, error) {
	article, err := l.articles.DeleteByIDAndAuthor(ctx, id, requesterID)
	if err != nil {
		return nil, fmt.Errorf("delete article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFoundOrUnauthorized
	}

	metrics.ArticlesDeleted.Inc()
	logger.Debug("article deleted", slog.String("article_id", id))
	return article, nil
}

// GetOwned fetches the requester's article regardless of state. Unlike the
// mutation paths, this read distinguishes a missing article (ErrNotFound)
// from someone else's article (ErrForbidden).
func (l *ArticleLifecycle) GetOwned(ctx context.Context, id, requesterID string) (*domain.Article, error) {
	article, err := l.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if article.AuthorID != requesterID {
		return nil, domain.ErrForbidden
	}
	return article, nil
}
