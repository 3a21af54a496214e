package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/middleware"
	"finnews/internal/models"
	"finnews/internal/services"
)

func setupAuthRouter(handler *AuthHandler, user *models.User) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", injectUser(user), handler.Logout)
	r.GET("/auth/me", injectUser(user), handler.Me)
	return r
}

func newTestIssuer() *middleware.TokenIssuer {
	return middleware.NewTokenIssuer("test-secret", 30*time.Minute)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.UserInput
		userSvc := &mockUserService{
			createUserFn: func(input services.UserInput) (*models.User, error) {
				got = input
				return &models.User{Base: models.Base{ID: 3}, Email: input.Email, Username: input.Username, IsActive: true}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(userSvc, audit, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/register",
			`{"email":"bob@example.com","username":"bob","password":"password123"}`)

		assertStatus(t, rec, http.StatusCreated)
		result := parseJSON(t, rec)
		if result["username"] != "bob" {
			t.Errorf("expected username bob, got %v", result["username"])
		}
		if _, ok := result["hashed_password"]; ok {
			t.Error("password hash must not be serialized")
		}
		if got.IsAdmin || got.CanCreateNews {
			t.Error("self-registration must not grant roles")
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "REGISTER" {
			t.Errorf("expected one REGISTER audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/register",
			`{"email":"bob@example.com","username":"bob","password":"short"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(services.UserInput) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/register",
			`{"email":"bob@example.com","username":"bob","password":"password123"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	loggedIn := &models.User{Base: models.Base{ID: 4}, Username: "carol", IsActive: true}

	t.Run("returns token for form login", func(t *testing.T) {
		var gotLogin string
		userSvc := &mockUserService{
			attemptLoginFn: func(login, _ string) (*models.User, error) {
				gotLogin = login
				return loggedIn, nil
			},
		}
		issuer := newTestIssuer()
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, issuer), nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("username=carol&password=password123"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)
		if result["token_type"] != "bearer" {
			t.Errorf("expected token_type bearer, got %v", result["token_type"])
		}
		if result["expires_in"] != float64(1800) {
			t.Errorf("expected expires_in 1800, got %v", result["expires_in"])
		}
		if gotLogin != "carol" {
			t.Errorf("expected login carol, got %q", gotLogin)
		}

		claims, err := issuer.Parse(result["access_token"].(string))
		if err != nil {
			t.Fatalf("issued token does not parse: %v", err)
		}
		if claims.Subject != "carol" || claims.UserID != 4 {
			t.Errorf("unexpected claims: sub=%q user_id=%d", claims.Subject, claims.UserID)
		}
	})

	t.Run("accepts JSON body", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(string, string) (*models.User, error) { return loggedIn, nil },
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"username":"carol@example.com","password":"password123"}`)

		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("returns 401 on invalid credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(string, string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"username":"carol","password":"wrong"}`)

		assertStatus(t, rec, http.StatusUnauthorized)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 423 when account is locked", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(string, string) (*models.User, error) {
				return nil, apperrors.ErrAccountLocked
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"username":"carol","password":"password123"}`)

		assertStatus(t, rec, http.StatusLocked)
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_LOCKED")
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}, newTestIssuer()), nil)

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"username":"carol"}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	handler := NewAuthHandler(&mockUserService{}, &mockAuditService{}, newTestIssuer())

	t.Run("logout acknowledges authenticated caller", func(t *testing.T) {
		rec := doRequest(setupAuthRouter(handler, regularUser), http.MethodPost, "/auth/logout", "")

		assertStatus(t, rec, http.StatusOK)
		if parseJSON(t, rec)["message"] != "Successfully logged out" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("me returns the current user", func(t *testing.T) {
		rec := doRequest(setupAuthRouter(handler, regularUser), http.MethodGet, "/auth/me", "")

		assertStatus(t, rec, http.StatusOK)
		if parseJSON(t, rec)["username"] != "alice" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("returns 401 without a user", func(t *testing.T) {
		rec := doRequest(setupAuthRouter(handler, nil), http.MethodGet, "/auth/me", "")

		assertStatus(t, rec, http.StatusUnauthorized)
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}
