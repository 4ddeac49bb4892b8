package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/middleware"
	"github.com/ejikes/blogApi/internal/mocks"
	"github.com/ejikes/blogApi/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testUserID = "user-1"

// asUser stands in for the auth middleware in tests.
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
	}
}

func newArticleHandler(svc *mocks.MockArticleServiceInterface) *ArticleHandler {
	return NewArticleHandler(svc, validator.NewValidator(), 20, 100)
}

func sampleArticle(state domain.ArticleState) *domain.Article {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Article{
		ID:          uuid.New().String(),
		Title:       "Understanding pgx pools",
		Body:        "A long enough body about connection pooling in Go services.",
		Tags:        []string{"go", "postgres"},
		AuthorID:    testUserID,
		State:       state,
		ReadingTime: 1,
		ReadCount:   3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestArticleHandler_Create(t *testing.T) {
	t.Run("creates a draft", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StateDraft)
		mockService.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("domain.ArticleInput"), testUserID).
			Return(article, nil)

		router := gin.New()
		router.POST("/api/v1/blogs", asUser(testUserID), h.Create)

		payload := `{"title":"Understanding pgx pools","body":"A long enough body about connection pooling in Go services.","tags":["go","postgres"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Status string          `json:"status"`
			Blog   ArticleResponse `json:"blog"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "success", response.Status)
		assert.Equal(t, article.ID, response.Blog.ID)
		assert.Equal(t, "draft", response.Blog.State)
	})

	t.Run("rejects a short title", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		router := gin.New()
		router.POST("/api/v1/blogs", asUser(testUserID), h.Create)

		payload := `{"title":"ab","body":"A long enough body about connection pooling in Go services."}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a short body", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		router := gin.New()
		router.POST("/api/v1/blogs", asUser(testUserID), h.Create)

		payload := `{"title":"A valid title","body":"too short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_ListPublished(t *testing.T) {
	t.Run("passes filters and pagination through", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StatePublished)
		mockService.EXPECT().
			ListPublished(mock.Anything, domain.PublishedListOptions{
				Page:    2,
				Limit:   10,
				Author:  "author-9",
				Title:   "pgx",
				Tag:     "go",
				OrderBy: "read_count",
				Order:   "asc",
			}).
			Return([]domain.Article{*article}, domain.Pagination{Total: 21, Page: 2, Limit: 10, Pages: 3}, nil)

		router := gin.New()
		router.GET("/api/v1/blogs", h.ListPublished)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs?page=2&limit=10&author=author-9&title=pgx&tags=go&order_by=read_count&order=asc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Status  string            `json:"status"`
			Results int               `json:"results"`
			Total   int               `json:"total"`
			Page    int               `json:"page"`
			Pages   int               `json:"pages"`
			Blogs   []ArticleResponse `json:"blogs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Results)
		assert.Equal(t, 21, response.Total)
		assert.Equal(t, 3, response.Pages)
		require.Len(t, response.Blogs, 1)
		assert.Equal(t, "published", response.Blogs[0].State)
	})

	t.Run("applies defaults and clamps an oversized limit", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		mockService.EXPECT().
			ListPublished(mock.Anything, domain.PublishedListOptions{Page: 1, Limit: 100}).
			Return(nil, domain.Pagination{Page: 1, Limit: 100}, nil)

		router := gin.New()
		router.GET("/api/v1/blogs", h.ListPublished)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs?limit=5000", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestArticleHandler_Get(t *testing.T) {
	t.Run("returns the article and counts the read", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StatePublished)
		mockService.EXPECT().
			GetPublishedDetail(mock.Anything, article.ID, true).
			Return(article, nil)

		router := gin.New()
		router.GET("/api/v1/blogs/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/"+article.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Status string          `json:"status"`
			Data   ArticleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.Data.ReadCount)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		router := gin.New()
		router.GET("/api/v1/blogs/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/not-a-uuid", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("draft reads as not found", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		id := uuid.New().String()
		mockService.EXPECT().
			GetPublishedDetail(mock.Anything, id, true).
			Return(nil, domain.ErrNotFound)

		router := gin.New()
		router.GET("/api/v1/blogs/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/"+id, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_GetOwned(t *testing.T) {
	t.Run("foreign article is forbidden", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		id := uuid.New().String()
		mockService.EXPECT().
			GetOwned(mock.Anything, id, testUserID).
			Return(nil, domain.ErrForbidden)

		router := gin.New()
		router.GET("/api/v1/blogs/:id/edit", asUser(testUserID), h.GetOwned)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/"+id+"/edit", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner sees the draft", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StateDraft)
		mockService.EXPECT().
			GetOwned(mock.Anything, article.ID, testUserID).
			Return(article, nil)

		router := gin.New()
		router.GET("/api/v1/blogs/:id/edit", asUser(testUserID), h.GetOwned)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/"+article.ID+"/edit", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestArticleHandler_Publish(t *testing.T) {
	t.Run("publishes the article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StatePublished)
		mockService.EXPECT().
			Publish(mock.Anything, article.ID, testUserID).
			Return(article, nil)

		router := gin.New()
		router.POST("/api/v1/blogs/:id/publish", asUser(testUserID), h.Publish)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs/"+article.ID+"/publish", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign article reads as not found", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		id := uuid.New().String()
		mockService.EXPECT().
			Publish(mock.Anything, id, testUserID).
			Return(nil, domain.ErrNotFoundOrUnauthorized)

		router := gin.New()
		router.POST("/api/v1/blogs/:id/publish", asUser(testUserID), h.Publish)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs/"+id+"/publish", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_Update(t *testing.T) {
	t.Run("applies a patch", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StateDraft)
		mockService.EXPECT().
			Update(mock.Anything, article.ID, testUserID, mock.MatchedBy(func(patch domain.ArticlePatch) bool {
				return patch.Title != nil && *patch.Title == "Renamed post"
			})).
			Return(article, nil)

		router := gin.New()
		router.PUT("/api/v1/blogs/:id", asUser(testUserID), h.Update)

		payload := `{"title":"Renamed post"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/blogs/"+article.ID, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unknown state", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		router := gin.New()
		router.PUT("/api/v1/blogs/:id", asUser(testUserID), h.Update)

		payload := `{"state":"archived"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/blogs/"+uuid.New().String(), bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_Delete(t *testing.T) {
	t.Run("deletes the article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StateDraft)
		mockService.EXPECT().
			Delete(mock.Anything, article.ID, testUserID).
			Return(article, nil)

		router := gin.New()
		router.DELETE("/api/v1/blogs/:id", asUser(testUserID), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/blogs/"+article.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deleted")
	})
}

func TestArticleHandler_ListMine(t *testing.T) {
	t.Run("lists the requester's drafts", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		article := sampleArticle(domain.StateDraft)
		mockService.EXPECT().
			ListOwned(mock.Anything, testUserID, domain.OwnedListOptions{Page: 1, Limit: 20, State: "draft"}).
			Return([]domain.Article{*article}, domain.Pagination{Total: 1, Page: 1, Limit: 20, Pages: 1}, nil)

		router := gin.New()
		router.GET("/api/v1/blogs/me", asUser(testUserID), h.ListMine)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/me?state=draft", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Status string            `json:"status"`
			Data   []ArticleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "draft", response.Data[0].State)
	})
}

func TestArticleHandler_Stats(t *testing.T) {
	t.Run("returns the requester's aggregates", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		mockService.EXPECT().
			Stats(mock.Anything, testUserID).
			Return(domain.AuthorStats{Total: 4, Published: 3, Drafts: 1, TotalReads: 57}, nil)

		router := gin.New()
		router.GET("/api/v1/blogs/me/stats", asUser(testUserID), h.Stats)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/me/stats", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Status string             `json:"status"`
			Stats  domain.AuthorStats `json:"stats"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 57, response.Stats.TotalReads)
	})
}

func TestArticleHandler_Search(t *testing.T) {
	t.Run("splits comma-separated tags", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := newArticleHandler(mockService)

		mockService.EXPECT().
			Search(mock.Anything, domain.SearchOptions{
				Query: "pools",
				Tags:  []string{"go", "postgres"},
				Page:  1,
				Limit: 20,
			}).
			Return(nil, domain.Pagination{Page: 1, Limit: 20}, nil)

		router := gin.New()
		router.GET("/api/v1/blogs/search", h.Search)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/search?query=pools&tags=go,postgres", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
