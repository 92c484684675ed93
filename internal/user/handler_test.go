package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Richard-klement/va-squash-constantia/internal/user"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*user.User), args.String(1), args.String(2), args.Error(3)
}

func (m *mockUserService) Login(ctx context.Context, req user.LoginRequest) (*user.User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*user.User), args.String(1), args.String(2), args.Error(3)
}

func (m *mockUserService) GetByID(ctx context.Context, userID int) (*user.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserService) RefreshToken(ctx context.Context, refreshToken string) (string, *user.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func setupAuthRouter(svc user.Service, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := user.NewHandlerWithService(svc)
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.RefreshToken)
	router.GET("/me", func(c *gin.Context) {
		if userID > 0 {
			c.Set("user_id", userID)
		}
		c.Next()
	}, h.GetMe)

	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	t.Run("successful register returns tokens", func(t *testing.T) {
		svc := new(mockUserService)
		req := user.RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "password123"}
		svc.On("Register", mock.Anything, req).Return(
			&user.User{ID: 1, Name: "Alice", Email: "a@example.com", Role: "member"},
			"access", "refresh", nil,
		)

		w := postJSON(setupAuthRouter(svc, 0), "/auth/register", req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp user.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, "Alice", resp.User.Name)
		assert.NotContains(t, w.Body.String(), "password_hash")
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		svc := new(mockUserService)
		req := user.RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "password123"}
		svc.On("Register", mock.Anything, req).Return(nil, "", "", user.ErrEmailExists)

		w := postJSON(setupAuthRouter(svc, 0), "/auth/register", req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid body rejected by binding", func(t *testing.T) {
		w := postJSON(setupAuthRouter(new(mockUserService), 0), "/auth/register",
			gin.H{"name": "Alice", "email": "not-an-email", "password": "short"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		svc := new(mockUserService)
		req := user.LoginRequest{Email: "a@example.com", Password: "password123"}
		svc.On("Login", mock.Anything, req).Return(
			&user.User{ID: 1, Name: "Alice", Email: "a@example.com", Role: "member"},
			"access", "refresh", nil,
		)

		w := postJSON(setupAuthRouter(svc, 0), "/auth/login", req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		svc := new(mockUserService)
		req := user.LoginRequest{Email: "a@example.com", Password: "wrong-password"}
		svc.On("Login", mock.Anything, req).Return(nil, "", "", user.ErrInvalidCredentials)

		w := postJSON(setupAuthRouter(svc, 0), "/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetMeHandler(t *testing.T) {
	t.Run("returns profile of authenticated member", func(t *testing.T) {
		svc := new(mockUserService)
		svc.On("GetByID", mock.Anything, 7).Return(
			&user.User{ID: 7, Name: "Alice", Email: "a@example.com", Role: "member"}, nil,
		)

		router := setupAuthRouter(svc, 7)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@example.com")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := setupAuthRouter(new(mockUserService), 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRefreshTokenHandler(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		svc := new(mockUserService)
		svc.On("RefreshToken", mock.Anything, "refresh-token").Return(
			"new-access", &user.User{ID: 1, Name: "Alice"}, nil,
		)

		w := postJSON(setupAuthRouter(svc, 0), "/auth/refresh", gin.H{"refresh_token": "refresh-token"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-access")
	})

	t.Run("missing token", func(t *testing.T) {
		w := postJSON(setupAuthRouter(new(mockUserService), 0), "/auth/refresh", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
