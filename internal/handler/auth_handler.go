package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/middleware"
	"github.com/ejikes/blogApi/internal/service"
	"github.com/ejikes/blogApi/internal/validator"
)

// AuthHandler handles signup, login and the current-user lookup.
type AuthHandler struct {
	auth      service.AuthServiceInterface
	validator *validator.Validator
}

func NewAuthHandler(auth service.AuthServiceInterface, v *validator.Validator) *AuthHandler {
	return &AuthHandler{auth: auth, validator: v}
}

// UserResponse represents a user in the API response.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(TimeFormat),
	}
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	input := domain.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := h.validator.ValidateSignup(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"token":  result.Token,
		"user":   toUserResponse(result.User),
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errorBody("email and password are required"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  result.Token,
	})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.GetUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   toUserResponse(user),
	})
}
