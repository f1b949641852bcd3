package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Проверка bearer-токена. Выпуск токенов - зона identity-коллаборатора,
// здесь только HMAC-подпись и клеймы sub/admin.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier() (*TokenVerifier, error) {
	secret := os.Getenv("KVOTE_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("env KVOTE_JWT_SECRET is not set")
	}
	return &TokenVerifier{[]byte(secret)}, nil
}

func (t *TokenVerifier) Verify(r *http.Request) (userID string, admin bool, err error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false, fmt.Errorf("no token provided")
	}
	raw := strings.TrimPrefix(authHeader, "Bearer ")

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", false, err
	}

	userID, err = claims.GetSubject()
	if err != nil || userID == "" {
		return "", false, fmt.Errorf("token has no subject")
	}
	admin, _ = claims["admin"].(bool)
	return userID, admin, nil
}

type ctxKey int

const (
	ctxUser ctxKey = iota
	ctxAdmin
)

// аутентифицированный пользователь запроса
func UserID(r *http.Request) string {
	uid, _ := r.Context().Value(ctxUser).(string)
	return uid
}

func IsAdmin(r *http.Request) bool {
	admin, _ := r.Context().Value(ctxAdmin).(bool)
	return admin
}

func MiddlewareAuth(t *TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, admin, err := t.Verify(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized: "+err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), ctxUser, uid)
			ctx = context.WithValue(ctx, ctxAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
