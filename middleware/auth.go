package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"notesvc/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// PrincipalKey holds the authenticated Principal in the request context.
const PrincipalKey contextKey = "principal"

// Principal is the verified identity behind a request. It lives for the
// request only; nothing about it is cached or persisted locally.
type Principal struct {
	ID    string
	Email string
}

// AuthMiddleware verifies the bearer token on every request before any
// resource logic runs. There is no anonymous access path behind it.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Missing token")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			writeAuthError(w, "Missing token")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			jwtSecret := os.Getenv("JWT_SECRET")
			if jwtSecret == "" {
				logger.Sugar.Error("JWT_SECRET environment variable not set")
				return nil, fmt.Errorf("server is not configured to validate tokens")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			logger.Sugar.Infof("Rejected token: %v", err)
			writeAuthError(w, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeAuthError(w, "Invalid token")
			return
		}
		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			writeAuthError(w, "Invalid token")
			return
		}

		p := Principal{ID: sub}
		if email, ok := claims["email"].(string); ok {
			p.Email = email
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
