package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ejikes/blogApi/internal/domain"
)

func validBody() string {
	return strings.Repeat("words in the body ", 3)
}

func TestValidateArticleInput(t *testing.T) {
	v := NewValidator()

	t.Run("valid input", func(t *testing.T) {
		in := &domain.ArticleInput{
			Title: "A valid title",
			Body:  validBody(),
			Tags:  []string{"go", "testing"},
		}
		assert.NoError(t, v.ValidateArticleInput(in))
	})

	t.Run("missing title", func(t *testing.T) {
		in := &domain.ArticleInput{Body: validBody()}
		err := v.ValidateArticleInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title_required")
	})

	t.Run("title too short", func(t *testing.T) {
		in := &domain.ArticleInput{Title: "ab", Body: validBody()}
		err := v.ValidateArticleInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title_too_short")
	})

	t.Run("body too short", func(t *testing.T) {
		in := &domain.ArticleInput{Title: "A valid title", Body: "too short"}
		err := v.ValidateArticleInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "body_too_short")
	})

	t.Run("missing body", func(t *testing.T) {
		in := &domain.ArticleInput{Title: "A valid title"}
		err := v.ValidateArticleInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "body_required")
	})
}

func TestValidateArticlePatch(t *testing.T) {
	v := NewValidator()

	strPtr := func(s string) *string { return &s }
	statePtr := func(s domain.ArticleState) *domain.ArticleState { return &s }

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateArticlePatch(&domain.ArticlePatch{}))
	})

	t.Run("valid full patch", func(t *testing.T) {
		body := validBody()
		p := &domain.ArticlePatch{
			Title: strPtr("New title"),
			Body:  &body,
			State: statePtr(domain.StatePublished),
		}
		assert.NoError(t, v.ValidateArticlePatch(p))
	})

	t.Run("short title rejected", func(t *testing.T) {
		p := &domain.ArticlePatch{Title: strPtr("ab")}
		err := v.ValidateArticlePatch(p)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title_too_short")
	})

	t.Run("short body rejected", func(t *testing.T) {
		p := &domain.ArticlePatch{Body: strPtr("short")}
		err := v.ValidateArticlePatch(p)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "body_too_short")
	})

	t.Run("invalid state rejected", func(t *testing.T) {
		p := &domain.ArticlePatch{State: statePtr(domain.ArticleState("archived"))}
		err := v.ValidateArticlePatch(p)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_state")
	})
}

func TestValidateSignup(t *testing.T) {
	v := NewValidator()

	t.Run("valid signup", func(t *testing.T) {
		in := &domain.SignupInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  "correct-horse",
		}
		assert.NoError(t, v.ValidateSignup(in))
	})

	t.Run("invalid email", func(t *testing.T) {
		in := &domain.SignupInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "not-an-email",
			Password:  "correct-horse",
		}
		err := v.ValidateSignup(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_email_format")
	})

	t.Run("short password", func(t *testing.T) {
		in := &domain.SignupInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  "short",
		}
		err := v.ValidateSignup(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "password_too_short")
	})
}
