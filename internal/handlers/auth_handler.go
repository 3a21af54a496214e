package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/middleware"
	"finnews/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
	issuer       *middleware.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer, issuer *middleware.TokenIssuer) *AuthHandler {
	return &AuthHandler{userService: userService, auditService: auditService, issuer: issuer}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload. It is accepted as an
// OAuth2 password form or as JSON; username may also be an email address.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse represents the authentication response with token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Create an active, non-admin account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} models.User "User registered"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email/username"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(services.UserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, "REGISTER", services.AuditResourceUser, user.ID, c.ClientIP(),
		map[string]interface{}{"username": user.Username})

	c.JSON(http.StatusCreated, user)
}

// Login handles user login
// @Summary     Login user
// @Description Exchange a username (or email) and password for a bearer token
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       username formData string true "Username or email"
// @Param       password formData string true "Password"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     423 {object} ErrorResponse "Account locked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.AttemptLogin(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.issuer.TTL().Seconds()),
	})
}

// Logout handles user logout
// @Summary     Logout user
// @Description Tokens are stateless; the client discards its token
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, err := getCurrentUser(c); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Successfully logged out"})
}

// Me returns the authenticated user
// @Summary     Current user
// @Description Get the authenticated user's account
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "Current user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
