package server

import (
	"net/http"
	"testing"
	"time"

	"retrospace/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"username": "tom",
				"email":    "tom@example.com",
				"password": "Password123!",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Username",
			body: map[string]string{
				"username": "tom",
				"email":    "tom2@example.com",
				"password": "Password123!",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"username": "jerry",
				"email":    "not-an-email",
				"password": "Password123!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Weak Password",
			body: map[string]string{
				"username": "jerry",
				"email":    "jerry@example.com",
				"password": "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Username",
			body: map[string]string{
				"username": "has spaces!",
				"email":    "spaces@example.com",
				"password": "Password123!",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRegister_CreatesProfile(t *testing.T) {
	_, app := newTestServer(t)
	token := registerUser(t, app, "spacegirl")

	resp := doJSON(t, app, http.MethodGet, "/api/profile/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotNil(t, body["user_id"])
	assert.Equal(t, "public", body["profile_privacy"])
}

func TestLogin(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "logintest")

	tests := []struct {
		name           string
		identifier     string
		password       string
		expectedStatus int
	}{
		{"By Username", "logintest", "Password123!", http.StatusOK},
		{"By Email", "logintest@example.com", "Password123!", http.StatusOK},
		{"Wrong Password", "logintest", "WrongPassword1!", http.StatusUnauthorized},
		{"Unknown User", "nobody", "Password123!", http.StatusUnauthorized},
		{"Missing Fields", "", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
				"identifier": tt.identifier,
				"password":   tt.password,
			})
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLogout_RequiresAuth(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_WithValidToken(t *testing.T) {
	_, app := newTestServer(t)
	token := registerUser(t, app, "leaver")

	// Without Redis the blacklist is skipped but logout still succeeds
	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoute_RejectsGarbageToken(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/profile/me", "not.a.token", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoute_RejectsForeignIssuerToken(t *testing.T) {
	_, app := newTestServer(t)

	mint := func(iss, aud string) string {
		now := time.Now()
		claims := jwt.MapClaims{
			"sub": "1",
			"iss": iss,
			"aud": aud,
			"exp": now.Add(time.Hour).Unix(),
			"iat": now.Unix(),
			"nbf": now.Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-secret-key-for-handler-tests"))
		require.NoError(t, err)
		return signed
	}

	// correctly signed but minted for a different service
	for _, token := range []string{
		mint("another-api", middleware.TokenAudience),
		mint(middleware.TokenIssuer, "another-client"),
	} {
		resp := doJSON(t, app, http.MethodGet, "/api/profile/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		_ = resp.Body.Close()
	}
}
