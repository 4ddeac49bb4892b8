package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/logger"
	"github.com/ejikes/blogApi/internal/repository"
	"github.com/ejikes/blogApi/internal/token"
)

// AuthService registers users and issues access tokens.
type AuthService struct {
	users      repository.UserRepository
	secret     []byte
	expiry     time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, secret []byte, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		secret:     secret,
		expiry:     expiry,
		bcryptCost: bcryptCost,
	}
}

var _ AuthServiceInterface = (*AuthService)(nil)

// Signup registers a new user and returns a token plus the public user.
func (s *AuthService) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	// The unique index still guards against a concurrent signup with the
	// same email slipping past the lookup above.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	tok, err := token.Generate(user.ID, s.secret, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info("user registered", slog.String("user_id", user.ID))
	return &domain.AuthResult{Token: tok, User: user}, nil
}

// Login verifies credentials and returns a token. A missing user and a bad
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := token.Generate(user.ID, s.secret, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &domain.AuthResult{Token: tok}, nil
}

// GetUser fetches a user by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
