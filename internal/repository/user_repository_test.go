package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	newUser := func(email string) *domain.User {
		return &domain.User{
			ID:           uuid.New().String(),
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        email,
			PasswordHash: "$2a$10$hash",
		}
	}

	t.Run("create and fetch by email and id", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "users")
		user := newUser("ada@example.com")

		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.CreatedAt.IsZero())

		byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "ada@example.com", byID.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "users")

		require.NoError(t, repo.Create(ctx, newUser("dup@example.com")))

		err := repo.Create(ctx, newUser("dup@example.com"))

		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("unknown user is nil, not an error", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "users")

		byEmail, err := repo.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, byEmail)

		byID, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, byID)
	})
}
