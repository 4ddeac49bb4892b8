package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/middleware"
	"github.com/ejikes/blogApi/internal/service"
	"github.com/ejikes/blogApi/internal/validator"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles        service.ArticleServiceInterface
	validator       *validator.Validator
	defaultPageSize int
	maxPageSize     int
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface, v *validator.Validator, defaultPageSize, maxPageSize int) *ArticleHandler {
	return &ArticleHandler{
		articles:        articles,
		validator:       v,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags,omitempty"`
	AuthorID    string   `json:"author_id"`
	State       string   `json:"state"`
	ReadingTime int      `json:"reading_time"`
	ReadCount   int      `json:"read_count"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		Tags:        a.Tags,
		AuthorID:    a.AuthorID,
		State:       string(a.State),
		ReadingTime: a.ReadingTime,
		ReadCount:   a.ReadCount,
		CreatedAt:   a.CreatedAt.Format(TimeFormat),
		UpdatedAt:   a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, toArticleResponse(&articles[i]))
	}
	return responses
}

type createArticleRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

type updateArticleRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Body        *string  `json:"body"`
	Tags        []string `json:"tags"`
	State       *string  `json:"state"`
}

// Create handles POST /api/v1/blogs
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	input := domain.ArticleInput{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
	}
	if err := h.validator.ValidateArticleInput(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	article, err := h.articles.Create(c.Request.Context(), input, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"blog":   toArticleResponse(article),
	})
}

// ListPublished handles GET /api/v1/blogs
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	page, limit := h.pageParams(c)

	opts := domain.PublishedListOptions{
		Page:    page,
		Limit:   limit,
		Author:  c.Query("author"),
		Title:   c.Query("title"),
		Tag:     c.Query("tags"),
		OrderBy: c.Query("order_by"),
		Order:   c.Query("order"),
	}

	articles, pagination, err := h.articles.ListPublished(c.Request.Context(), opts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(articles),
		"total":   pagination.Total,
		"page":    pagination.Page,
		"pages":   pagination.Pages,
		"blogs":   toArticleResponses(articles),
	})
}

// Get handles GET /api/v1/blogs/:id - the public detail view. Each hit
// counts as one read.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.articles.GetPublishedDetail(c.Request.Context(), id, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toArticleResponse(article),
	})
}

// GetOwned handles GET /api/v1/blogs/:id/edit - fetches the requester's
// article regardless of state for the edit view.
func (h *ArticleHandler) GetOwned(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.articles.GetOwned(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toArticleResponse(article),
	})
}

// Publish handles POST /api/v1/blogs/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.articles.Publish(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toArticleResponse(article),
	})
}

// Update handles PUT /api/v1/blogs/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	patch := domain.ArticlePatch{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
	}
	if req.State != nil {
		state := domain.ArticleState(*req.State)
		patch.State = &state
	}

	if err := h.validator.ValidateArticlePatch(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	article, err := h.articles.Update(c.Request.Context(), id, middleware.GetUserID(c), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toArticleResponse(article),
	})
}

// Delete handles DELETE /api/v1/blogs/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	if _, err := h.articles.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "blog deleted successfully",
	})
}

// ListMine handles GET /api/v1/blogs/me
func (h *ArticleHandler) ListMine(c *gin.Context) {
	page, limit := h.pageParams(c)

	opts := domain.OwnedListOptions{
		Page:  page,
		Limit: limit,
		State: c.Query("state"),
	}

	articles, pagination, err := h.articles.ListOwned(c.Request.Context(), middleware.GetUserID(c), opts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(articles),
		"total":   pagination.Total,
		"page":    pagination.Page,
		"pages":   pagination.Pages,
		"data":    toArticleResponses(articles),
	})
}

// Stats handles GET /api/v1/blogs/me/stats
func (h *ArticleHandler) Stats(c *gin.Context) {
	stats, err := h.articles.Stats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  stats,
	})
}

// Search handles GET /api/v1/blogs/search
func (h *ArticleHandler) Search(c *gin.Context) {
	page, limit := h.pageParams(c)

	opts := domain.SearchOptions{
		Query:  c.Query("query"),
		Tags:   tagsParam(c),
		Author: c.Query("author"),
		Page:   page,
		Limit:  limit,
	}

	articles, pagination, err := h.articles.Search(c.Request.Context(), opts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(articles),
		"total":   pagination.Total,
		"page":    pagination.Page,
		"pages":   pagination.Pages,
		"blogs":   toArticleResponses(articles),
	})
}

// pageParams reads page and limit from the query string. The page size is
// bounded; the page number is passed through as given.
func (h *ArticleHandler) pageParams(c *gin.Context) (int, int) {
	page := intQuery(c, "page", DefaultPage)
	limit := intQuery(c, "limit", h.defaultPageSize)
	if limit < 1 {
		limit = h.defaultPageSize
	}
	if limit > h.maxPageSize {
		limit = h.maxPageSize
	}
	return page, limit
}

func intQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// tagsParam accepts both repeated tags parameters and a single
// comma-separated value.
func tagsParam(c *gin.Context) []string {
	var tags []string
	for _, raw := range c.QueryArray("tags") {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// articleID validates the :id path parameter, responding 400 on bad input.
func articleID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid id format"))
		return "", false
	}
	return id, true
}
