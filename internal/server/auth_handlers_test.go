package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Run("success returns token and user", func(t *testing.T) {
		app, _, _ := newTestServer(t)

		body := strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"secret1"}`)
		resp := doRequest(t, app, http.MethodPost, "/api/users", "", body)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		decodeBody(t, resp, &result)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, uint(1), result.User.ID)
	})

	t.Run("short password", func(t *testing.T) {
		app, _, _ := newTestServer(t)

		body := strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"abc"}`)
		resp := doRequest(t, app, http.MethodPost, "/api/users", "", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		app, _, deps := newTestServer(t)
		deps.users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 2, Email: email}, nil
		}

		body := strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"secret1"}`)
		resp := doRequest(t, app, http.MethodPost, "/api/users", "", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assertErrorBody(t, resp, "User already exists")
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		app, _, deps := newTestServer(t)
		deps.users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, Password: string(hashed)}, nil
		}

		body := strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`)
		resp := doRequest(t, app, http.MethodPost, "/api/auth", "", body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Token string `json:"token"`
		}
		decodeBody(t, resp, &result)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		app, _, deps := newTestServer(t)
		deps.users.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, Password: string(hashed)}, nil
		}

		body := strings.NewReader(`{"email":"alice@example.com","password":"wrongpass"}`)
		resp := doRequest(t, app, http.MethodPost, "/api/auth", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assertErrorBody(t, resp, "Invalid credentials")
	})

	t.Run("unknown email reads the same as wrong password", func(t *testing.T) {
		app, _, _ := newTestServer(t)

		body := strings.NewReader(`{"email":"nobody@example.com","password":"secret1"}`)
		resp := doRequest(t, app, http.MethodPost, "/api/auth", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assertErrorBody(t, resp, "Invalid credentials")
	})
}

func TestWhoAmI(t *testing.T) {
	t.Run("requires token", func(t *testing.T) {
		app, _, _ := newTestServer(t)

		resp := doRequest(t, app, http.MethodGet, "/api/auth", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assertErrorBody(t, resp, "No token, authorization denied")
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		app, _, _ := newTestServer(t)

		resp := doRequest(t, app, http.MethodGet, "/api/auth", "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assertErrorBody(t, resp, "Token is not valid")
	})

	t.Run("returns the caller's account", func(t *testing.T) {
		app, s, _ := newTestServer(t)

		resp := doRequest(t, app, http.MethodGet, "/api/auth", authToken(t, s, 9), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		decodeBody(t, resp, &user)
		assert.Equal(t, uint(9), user.ID)
	})

	t.Run("accepts x-auth-token header", func(t *testing.T) {
		app, s, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
		req.Header.Set("x-auth-token", authToken(t, s, 9))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
