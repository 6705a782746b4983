package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const CtxUserID ctxKey = "userId"

// JWTAuth rejects requests without a valid HS256 bearer token and stores the
// token's sub claim as the user id in the request context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, CategoryAccessDenied, "authentication credentials were not provided")
				return
			}

			token, err := jwt.Parse(strings.TrimPrefix(authHeader, "Bearer "), func(token *jwt.Token) (interface{}, error) {
				return secretBytes, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, CategoryAccessDenied, "invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, CategoryAccessDenied, "invalid token claims")
				return
			}
			sub, ok := claims["sub"].(float64)
			if !ok || sub <= 0 {
				writeError(w, http.StatusUnauthorized, CategoryAccessDenied, "invalid sub in token")
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, int(sub))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(CtxUserID).(int)
	return id
}
