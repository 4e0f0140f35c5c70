//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/dto/request"
	"staybook/internal/handler/dto/response"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/authtest"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"
	"staybook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Login returns tokens in body and cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)
		require.NotEmpty(t, res.RefreshToken)
		require.NotNil(t, res.User)
		require.Equal(t, "guest@example.com", res.User.Email)
		require.Equal(t, "guest", res.User.Role)

		access := httptest.ExtractCookie(w, "access_token")
		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, access)
		require.NotNil(t, refresh)
		require.Equal(t, res.AccessToken, access.Value)
		require.Equal(t, res.RefreshToken, refresh.Value)
	})

	s.Run("Error case: Wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: Unknown email gets the same rejection as a wrong password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Returns the authenticated user", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleHotelManager))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var view queries.AuthorizedUserView
		err := httptest.DecodeResponseBody(t, w.Body, &view)
		require.NoError(t, err)
		require.Equal(t, "manager@example.com", view.Email)
		require.Equal(t, "hotel_manager", view.Role)
		require.NotNil(t, view.LastLogin, "login should stamp last_login")
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: Refresh issues a fresh working token pair", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var login response.LoginResponse
		err := httptest.DecodeResponseBody(t, lw.Body, &login)
		require.NoError(t, err)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: login.RefreshToken}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshed response.RefreshResponse
		err = httptest.DecodeResponseBody(t, rw.Body, &refreshed)
		require.NoError(t, err)
		require.NotEmpty(t, refreshed.AccessToken)
		require.NotEmpty(t, refreshed.RefreshToken)

		// The new access token is usable
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refreshed.AccessToken)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())
	})

	s.Run("Error case: Access token cannot be used as a refresh token", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: Missing refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears the token cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		cookies := httptest.ExtractCookies(lw)
		authtest.LogoutUser(t, s.Router, cookies)
	})
}
