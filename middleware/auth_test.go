package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"notesvc/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const testSecret = "test-secret"

func mintToken(t *testing.T, secret, sub, email string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(expiresIn).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// echoPrincipal records the principal the middleware attached to the context.
func echoPrincipal(captured *Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = r.Context().Value(PrincipalKey).(Principal)
		w.WriteHeader(http.StatusOK)
	})
}

func doAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, Principal) {
	t.Helper()
	var p Principal
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	AuthMiddleware(echoPrincipal(&p)).ServeHTTP(rec, req)
	return rec, p
}

func TestAuthMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	for name, header := range map[string]string{
		"no header":     "",
		"empty bearer":  "Bearer ",
		"wrong scheme":  "Basic dXNlcjpwYXNz",
		"token no type": mintToken(t, testSecret, "u1", "", time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			rec, _ := doAuth(t, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Missing token"}`, rec.Body.String())
		})
	}
}

func TestAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	for name, token := range map[string]string{
		"garbage":         "not.a.jwt",
		"wrong secret":    mintToken(t, "other-secret", "u1", "", time.Hour),
		"expired":         mintToken(t, testSecret, "u1", "", -time.Hour),
		"missing subject": mintToken(t, testSecret, "", "", time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			rec, _ := doAuth(t, "Bearer "+token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
		})
	}
}

func TestAuthNoSecretConfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	rec, _ := doAuth(t, "Bearer "+mintToken(t, testSecret, "u1", "", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	rec, p := doAuth(t, "Bearer "+mintToken(t, testSecret, "u1", "alice@example.com", time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "alice@example.com", p.Email)
}
