// internal/middleware/admin_jwt.go
package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weather-agent/internal/util"
)

const adminRole = "admin"

// AdminJWTAuth accepts HS256 bearer tokens signed with secret and carrying role=admin.
func AdminJWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				util.WriteError(w, http.StatusForbidden, util.APIError{Error: "admin jwt not configured"})
				return
			}
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				util.WriteError(w, http.StatusUnauthorized, util.APIError{Error: "missing token"})
				return
			}
			if err := verifyAdminToken(strings.TrimPrefix(auth, "Bearer "), secret); err != nil {
				util.WriteError(w, http.StatusUnauthorized, util.APIError{Error: "invalid token"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func verifyAdminToken(tokenStr, secret string) error {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenSignatureInvalid
	}
	if role, _ := claims["role"].(string); role != adminRole {
		return errors.New("not an admin token")
	}
	return nil
}

// GenerateAdminToken signs a 24h admin token for user.
func GenerateAdminToken(secret, user string, now time.Time) (string, int64, error) {
	if secret == "" {
		return "", 0, errors.New("admin jwt secret not configured")
	}
	exp := now.Add(24 * time.Hour).Unix()

	claims := jwt.MapClaims{
		"user": user,
		"exp":  exp,
		"iat":  now.Unix(),
		"role": adminRole,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	return signed, exp, err
}
