//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"homestay-booking/internal/domain/user"
	"homestay-booking/internal/handler/dto/request"
	"homestay-booking/internal/handler/dto/response"
	"homestay-booking/tests/common/authtest"
	"homestay-booking/tests/common/dbtest"
	"homestay-booking/tests/common/httptest"
	"homestay-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleGuest))
	dbtest.CreateTestUser(s.T(), s.DB, "host@example.com", string(user.RoleHost))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleGuest))

	ctx := context.Background()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "guest@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "guest@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "guest@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie, "access token cookie not set")
				require.NotEmpty(t, cookie.Value)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the session cookie", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Empty(t, cookie.Value, "cookie value should be cleared")
	})

	s.Run("logout without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupToken     func(t *testing.T) string
		expectedEmail  string
		expectedRole   string
		expectedStatus int
	}{
		{
			name: "guest profile",
			setupToken: func(t *testing.T) string {
				return authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.TestPassword)
			},
			expectedEmail:  "guest@example.com",
			expectedRole:   string(user.RoleGuest),
			expectedStatus: http.StatusOK,
		},
		{
			name: "host profile",
			setupToken: func(t *testing.T) string {
				return authtest.LoginUser(t, s.Router, "host@example.com", dbtest.TestPassword)
			},
			expectedEmail:  "host@example.com",
			expectedRole:   string(user.RoleHost),
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			setupToken: func(t *testing.T) string {
				return "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "no token",
			setupToken: func(t *testing.T) string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := tt.setupToken(t)
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, tt.expectedEmail)
				require.Contains(t, body, tt.expectedRole)
				require.NotContains(t, body, "password", "response must not leak credentials")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleGuest))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodPost, "/api/bookings"},
			{http.MethodGet, "/api/bookings"},
			{http.MethodGet, "/api/host/bookings"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code,
				"%s %s should require authentication", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestRoleGuard() {
	s.Run("guest cannot access host endpoints", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/host/bookings", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("admin can access host endpoints", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/host/bookings", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
