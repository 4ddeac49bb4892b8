package domain

import "time"

// ArticleState represents the publication state of an article.
type ArticleState string

const (
	StateDraft     ArticleState = "draft"
	StatePublished ArticleState = "published"
)

// ValidStates contains all valid article states.
var ValidStates = []ArticleState{StateDraft, StatePublished}

// IsValidState checks if a state is valid.
func IsValidState(state string) bool {
	for _, s := range ValidStates {
		if string(s) == state {
			return true
		}
	}
	return false
}

// Article represents a blog article entity in the system.
type Article struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Body        string       `json:"body"`
	Tags        []string     `json:"tags,omitempty"`
	AuthorID    string       `json:"author_id"`
	State       ArticleState `json:"state"`
	ReadingTime int          `json:"reading_time"`
	ReadCount   int          `json:"read_count"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ArticleInput holds the caller-supplied fields for creating an article.
type ArticleInput struct {
	Title       string
	Description *string
	Body        string
	Tags        []string
}

// ArticlePatch holds the recognized updatable fields of an article.
// Nil fields are left untouched. ReadingTime is derived from Body by the
// service layer and is never taken from caller input.
type ArticlePatch struct {
	Title       *string
	Description *string
	Body        *string
	Tags        []string
	State       *ArticleState
	ReadingTime *int
}

// SortField identifies an article column results can be ordered by.
type SortField string

const (
	SortByReadCount   SortField = "read_count"
	SortByReadingTime SortField = "reading_time"
	SortByCreatedAt   SortField = "created_at"
)

// NormalizeSortField maps a requested sort field onto the allow-list.
// The legacy "timestamp" alias maps to created_at; anything unrecognized
// falls back to created_at.
func NormalizeSortField(field string) SortField {
	switch field {
	case string(SortByReadCount):
		return SortByReadCount
	case string(SortByReadingTime):
		return SortByReadingTime
	case string(SortByCreatedAt), "timestamp":
		return SortByCreatedAt
	default:
		return SortByCreatedAt
	}
}

// PublishedListOptions holds filters and pagination for listing published articles.
type PublishedListOptions struct {
	Page    int
	Limit   int
	Author  string
	Title   string
	Tag     string
	OrderBy string
	Order   string
}

// OwnedListOptions holds filters and pagination for listing an owner's articles.
type OwnedListOptions struct {
	Page  int
	Limit int
	State string
}

// SearchOptions holds the criteria for searching published articles.
// Active criteria combine with AND; the text query matches any of title,
// description, or body, and tags match on set intersection.
type SearchOptions struct {
	Query  string
	Tags   []string
	Author string
	Page   int
	Limit  int
}

// Pagination describes one page of a result set.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// AuthorStats aggregates article counts and reads for a single author.
type AuthorStats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	TotalReads int `json:"total_reads"`
}
