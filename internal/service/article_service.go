package service

import (
	"github.com/ejikes/blogApi/internal/repository"
)

// ArticleService is the facade handlers talk to. It composes the lifecycle
// (state transitions, ownership-scoped mutation) and the query engine
// (listing, search, detail reads, stats) over one article store.
type ArticleService struct {
	*ArticleLifecycle
	*ArticleQueryEngine
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository) *ArticleService {
	return &ArticleService{
		ArticleLifecycle:   NewArticleLifecycle(articles),
		ArticleQueryEngine: NewArticleQueryEngine(articles),
	}
}

var _ ArticleServiceInterface = (*ArticleService)(nil)
