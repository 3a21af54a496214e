package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/pagination"
	"finnews/internal/services"
)

// UserHandler handles user management requests.
type UserHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer, auditService services.AuditServicer) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService}
}

// ListUsers handles listing users.
// @Summary     List users
// @Description Get a page of users (admin only)
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       skip  query int false "Rows to skip (default 0)"
// @Param       limit query int false "Page size (default 100, max 500)"
// @Success     200 {array}  models.User "Users"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	if _, err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	users, err := h.userService.ListUsers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles fetching a user by ID.
// @Summary     Get user
// @Description Get a user by ID (the user themself or an admin)
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} models.User "User"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !actor.CanManage(id) {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles creating a user.
// @Summary     Create user
// @Description Create a user with any role (admin only)
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.UserInput true "User details"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email/username"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, err := requireAdmin(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionCreate, services.AuditResourceUser, user.ID, c.ClientIP(),
		map[string]interface{}{"username": user.Username, "is_admin": user.IsAdmin})

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles partially updating a user.
// @Summary     Update user
// @Description Update a user (the user themself or an admin). Role and activation flags are admin only.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "User ID"
// @Param       request body services.UserUpdate  true "Fields to change"
// @Success     200 {object} models.User "User updated"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email/username"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !actor.CanManage(id) {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	var req services.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Privileged() && !actor.IsAdmin {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrForbidden, "Only admins may change roles or activation"))
		return
	}

	user, err := h.userService.UpdateUser(id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionUpdate, services.AuditResourceUser, user.ID, c.ClientIP(),
		map[string]interface{}{"password_changed": req.Password != nil, "privileged": req.Privileged()})

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles deleting a user.
// @Summary     Delete user
// @Description Delete a user (the user themself or an admin)
// @Tags        users
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     204 "User deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !actor.CanManage(id) {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionDelete, services.AuditResourceUser, id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
