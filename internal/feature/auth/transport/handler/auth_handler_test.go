package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error)
	LoginFunc    func(ctx context.Context, email, password string) (*entity.User, string, time.Time, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil, "", time.Time{}, errors.New("register failed") // Default: failure
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", time.Time{}, errors.New("login failed") // Default: failure
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	okUser := &entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	okRegister := func(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error) {
		return okUser, "issued-token", time.Now().Add(time.Hour), nil
	}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"name": "Alice", "email": "alice@example.com", "password": "Secret123"},
			mockRegister:   okRegister,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "alice@example.com", "password": "Secret123"},
			mockRegister:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required",
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Alice", "email": "invalid-email", "password": "Secret123"},
			mockRegister:   nil,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required",
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Alice", "email": "alice@example.com", "password": "short"},
			mockRegister:   nil,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Alice", "email": "existing@example.com", "password": "Secret123"},
			mockRegister: func(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error) {
				return nil, "", time.Time{}, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User already exists with this email",
		},
		{
			name:        "failure: unexpected usecase error",
			requestBody: gin.H{"name": "Alice", "email": "alice@example.com", "password": "Secret123"},
			mockRegister: func(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error) {
				return nil, "", time.Time{}, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegister}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/register", h.Register)

			w := postJSON(t, router, "/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}

			// 成功時はレスポンスボディとセッションクッキーの両方でトークンが返る
			assert.Equal(t, "success", body["status"])
			data := body["data"].(map[string]any)
			assert.Equal(t, "issued-token", data["token"])
			user := data["user"].(map[string]any)
			assert.Equal(t, "user-1", user["id"])
			assert.Equal(t, "alice@example.com", user["email"])

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "jwt", cookies[0].Name)
			assert.Equal(t, "issued-token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	okUser := &entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLogin      func(ctx context.Context, email, password string) (*entity.User, string, time.Time, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "alice@example.com", "password": "Secret123"},
			mockLogin: func(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
				return okUser, "issued-token", time.Now().Add(time.Hour), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "alice@example.com"},
			mockLogin:      nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email and password are required",
		},
		{
			name:        "failure: wrong credentials",
			requestBody: gin.H{"email": "alice@example.com", "password": "WrongPass1"},
			mockLogin: func(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
				return nil, "", time.Time{}, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name:        "failure: unexpected usecase error",
			requestBody: gin.H{"email": "alice@example.com", "password": "Secret123"},
			mockLogin: func(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
				return nil, "", time.Time{}, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLogin}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", h.Login)

			w := postJSON(t, router, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				assert.Empty(t, w.Result().Cookies(), "no cookie on failed login")
				return
			}

			assert.Equal(t, "success", body["status"])
			data := body["data"].(map[string]any)
			assert.Equal(t, "issued-token", data["token"])

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "jwt", cookies[0].Name)
			assert.Equal(t, "issued-token", cookies[0].Value)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&mockAuthUsecase{})
	router := gin.New()
	router.POST("/logout", h.Logout)

	w := postJSON(t, router, "/logout", gin.H{})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Logged out successfully", body["message"])

	// クッキーが空値・過去の有効期限で上書きされる
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
