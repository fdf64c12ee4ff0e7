package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registerFn             func(ctx context.Context, input services.RegisterInput) (*models.User, error)
	completeRegistrationFn func(ctx context.Context, input services.CompleteRegistrationInput) (*models.User, error)
	loginFn                func(ctx context.Context, input services.LoginInput) (*models.User, error)
	sendOTPFn              func(ctx context.Context, email string) error
	verifyOTPFn            func(ctx context.Context, email, code string) error
}

func (s *stubAuthService) Register(ctx context.Context, input services.RegisterInput) (*models.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) CompleteRegistration(ctx context.Context, input services.CompleteRegistrationInput) (*models.User, error) {
	return s.completeRegistrationFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, input services.LoginInput) (*models.User, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) SendOTP(ctx context.Context, email string) error {
	return s.sendOTPFn(ctx, email)
}

func (s *stubAuthService) VerifyOTP(ctx context.Context, email, code string) error {
	return s.verifyOTPFn(ctx, email, code)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		registerFn   func(ctx context.Context, input services.RegisterInput) (*models.User, error)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"full_name":"Aruzhan Seitova","email":"aruzhan@example.com","password":"supersecret"}`,
			registerFn: func(ctx context.Context, input services.RegisterInput) (*models.User, error) {
				return &models.User{ID: 1, Email: input.Email, Role: models.RoleCustomer}, nil
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"full_name":"Aruzhan Seitova","email":"taken@example.com","password":"supersecret"}`,
			registerFn: func(ctx context.Context, input services.RegisterInput) (*models.User, error) {
				return nil, services.ErrUserEmailConflict
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "short password",
			body: `{"full_name":"Aruzhan Seitova","email":"aruzhan@example.com","password":"short"}`,
			registerFn: func(ctx context.Context, input services.RegisterInput) (*models.User, error) {
				return nil, services.ErrPasswordTooShort
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed json",
			body:         `{"full_name":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing fields",
			body:         `{"email":"aruzhan@example.com"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown field",
			body:         `{"full_name":"A","email":"a@example.com","password":"supersecret","admin":true}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{registerFn: tt.registerFn}, "secret")

			req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode >= 400 {
				var env map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
				assert.Contains(t, env, "error")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("issues signed token", func(t *testing.T) {
		svc := &stubAuthService{
			loginFn: func(ctx context.Context, input services.LoginInput) (*models.User, error) {
				return &models.User{ID: 7, FullName: "Aruzhan Seitova", Role: models.RoleCustomer}, nil
			},
		}
		h := NewAuthHandler(svc, "test-secret")

		body := `{"email":"aruzhan@example.com","password":"supersecret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		assert.Equal(t, 7, resp.User.ID)

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, float64(7), claims["user_id"])
		assert.Equal(t, "customer", claims["role"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &stubAuthService{
			loginFn: func(ctx context.Context, input services.LoginInput) (*models.User, error) {
				return nil, services.ErrInvalidCredentials
			},
		}
		h := NewAuthHandler(svc, "test-secret")

		body := `{"email":"aruzhan@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc := &stubAuthService{
			loginFn: func(ctx context.Context, input services.LoginInput) (*models.User, error) {
				return nil, services.ErrUserInactive
			},
		}
		h := NewAuthHandler(svc, "test-secret")

		body := `{"email":"aruzhan@example.com","password":"supersecret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		verifyFn     func(ctx context.Context, email, code string) error
		expectedCode int
	}{
		{
			name: "success",
			body: `{"email":"aruzhan@example.com","code":"123456"}`,
			verifyFn: func(ctx context.Context, email, code string) error {
				return nil
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "wrong code",
			body: `{"email":"aruzhan@example.com","code":"000000"}`,
			verifyFn: func(ctx context.Context, email, code string) error {
				return services.ErrOTPInvalid
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "expired code",
			body: `{"email":"aruzhan@example.com","code":"123456"}`,
			verifyFn: func(ctx context.Context, email, code string) error {
				return services.ErrOTPExpired
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"email":"ghost@example.com","code":"123456"}`,
			verifyFn: func(ctx context.Context, email, code string) error {
				return services.ErrUserNotFound
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing code",
			body:         `{"email":"aruzhan@example.com"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{verifyOTPFn: tt.verifyFn}, "secret")

			req := httptest.NewRequest(http.MethodPost, "/users/verifyotp", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.VerifyOTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
