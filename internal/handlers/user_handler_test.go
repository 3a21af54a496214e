package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
	"finnews/internal/pagination"
	"finnews/internal/services"
)

func setupUserRouter(handler *UserHandler, actor *models.User) *gin.Engine {
	r := gin.New()
	r.Use(injectUser(actor))
	r.GET("/users", handler.ListUsers)
	r.POST("/users", handler.CreateUser)
	r.GET("/users/:id", handler.GetUser)
	r.PUT("/users/:id", handler.UpdateUser)
	r.DELETE("/users/:id", handler.DeleteUser)
	return r
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("returns 403 for non-admin", func(t *testing.T) {
		called := false
		userSvc := &mockUserService{
			listUsersFn: func(pagination.PageRequest) ([]models.User, error) {
				called = true
				return nil, nil
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodGet, "/users", "")

		assertStatus(t, rec, http.StatusForbidden)
		if called {
			t.Error("service must not be called for a forbidden caller")
		}
	})

	t.Run("passes pagination to service", func(t *testing.T) {
		var got pagination.PageRequest
		userSvc := &mockUserService{
			listUsersFn: func(page pagination.PageRequest) ([]models.User, error) {
				got = page
				return []models.User{*regularUser}, nil
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc, &mockAuditService{}), adminUser)

		rec := doRequest(r, http.MethodGet, "/users?skip=2&limit=5", "")

		assertStatus(t, rec, http.StatusOK)
		if got.Offset() != 2 || got.Size() != 5 {
			t.Errorf("expected skip 2 limit 5, got %d/%d", got.Offset(), got.Size())
		}
		if len(parseJSONArray(t, rec)) != 1 {
			t.Errorf("expected one user, got %s", rec.Body.String())
		}
	})

	t.Run("returns 400 on negative skip", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), adminUser)

		rec := doRequest(r, http.MethodGet, "/users?skip=-1", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("returns own account", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodGet, "/users/1", "")

		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("returns 403 for another account before lookup", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(uint) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodGet, "/users/2", "")

		assertStatus(t, rec, http.StatusForbidden)
		assertErrorCode(t, parseJSON(t, rec), "FORBIDDEN")
	})

	t.Run("admin gets 404 for missing user", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(uint) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc, &mockAuditService{}), adminUser)

		rec := doRequest(r, http.MethodGet, "/users/42", "")

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "USER_NOT_FOUND")
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), adminUser)

		rec := doRequest(r, http.MethodGet, "/users/abc", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	body := `{"email":"dave@example.com","username":"dave","password":"password123","can_create_news":true}`

	t.Run("returns 403 for non-admin", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodPost, "/users", body)

		assertStatus(t, rec, http.StatusForbidden)
	})

	t.Run("returns 201 for admin", func(t *testing.T) {
		var got services.UserInput
		userSvc := &mockUserService{
			createUserFn: func(input services.UserInput) (*models.User, error) {
				got = input
				return &models.User{Base: models.Base{ID: 5}, Username: input.Username, CanCreateNews: input.CanCreateNews}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupUserRouter(NewUserHandler(userSvc, audit), adminUser)

		rec := doRequest(r, http.MethodPost, "/users", body)

		assertStatus(t, rec, http.StatusCreated)
		if !got.CanCreateNews {
			t.Error("expected can_create_news to be passed through")
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditActionCreate {
			t.Errorf("expected create audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 on duplicate username", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(services.UserInput) (*models.User, error) {
				return nil, apperrors.ErrDuplicateUsername
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc, &mockAuditService{}), adminUser)

		rec := doRequest(r, http.MethodPost, "/users", body)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_USERNAME")
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("user updates own email", func(t *testing.T) {
		var got services.UserUpdate
		userSvc := &mockUserService{
			updateUserFn: func(id uint, input services.UserUpdate) (*models.User, error) {
				got = input
				return &models.User{Base: models.Base{ID: id}, Email: *input.Email}, nil
			},
		}
		r := setupUserRouter(NewUserHandler(userSvc, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodPut, "/users/1", `{"email":"new@example.com"}`)

		assertStatus(t, rec, http.StatusOK)
		if got.Username != nil || got.Password != nil {
			t.Error("absent fields must stay nil")
		}
	})

	t.Run("non-admin cannot grant roles", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodPut, "/users/1", `{"is_admin":true}`)

		assertStatus(t, rec, http.StatusForbidden)
	})

	t.Run("admin may deactivate a user", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), adminUser)

		rec := doRequest(r, http.MethodPut, "/users/1", `{"is_active":false}`)

		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("returns 403 for another account", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodPut, "/users/2", `{"email":"x@example.com"}`)

		assertStatus(t, rec, http.StatusForbidden)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("returns 204 for self", func(t *testing.T) {
		var deleted uint
		userSvc := &mockUserService{
			deleteUserFn: func(id uint) error {
				deleted = id
				return nil
			},
		}
		audit := &mockAuditService{}
		r := setupUserRouter(NewUserHandler(userSvc, audit), regularUser)

		rec := doRequest(r, http.MethodDelete, "/users/1", "")

		assertStatus(t, rec, http.StatusNoContent)
		if deleted != 1 {
			t.Errorf("expected user 1 deleted, got %d", deleted)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditActionDelete {
			t.Errorf("expected delete audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 403 for another account", func(t *testing.T) {
		r := setupUserRouter(NewUserHandler(&mockUserService{}, &mockAuditService{}), regularUser)

		rec := doRequest(r, http.MethodDelete, "/users/3", "")

		assertStatus(t, rec, http.StatusForbidden)
	})
}
