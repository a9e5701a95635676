// Package middleware HTTP middleware: идентификация запроса и метрики.
//
// Аутентификация выполняется внешним шлюзом, сервис доверяет заголовкам
// X-User-ID и X-User-Role.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	// HeaderUserID заголовок с ID пользователя
	HeaderUserID = "X-User-ID"
	// HeaderUserRole заголовок с ролью пользователя
	HeaderUserRole = "X-User-Role"
)

// Auth извлекает идентификатор и роль пользователя из заголовков
// и кладет их в контекст запроса. Отсутствие заголовков не ошибка:
// публичные эндпоинты работают без них, защищенные проверяют
// наличие через GetUserID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if raw := r.Header.Get(HeaderUserID); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil && userID > 0 {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
		}

		role := r.Header.Get(HeaderUserRole)
		if role != domain.RoleAdmin {
			role = domain.RoleUser
		}
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста.
// Если роль не установлена, возвращается обычный пользователь.
func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(userRoleKey).(string); ok {
		return role
	}
	return domain.RoleUser
}
