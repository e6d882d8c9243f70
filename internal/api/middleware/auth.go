package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type userIDKey struct{}

// Auth проверяет наличие валидного заголовка X-User-ID и кладет
// идентификатор пользователя в контекст запроса.
// Аутентификация выполняется внешним шлюзом, здесь только проверка
// что идентификатор проброшен и является числом
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-User-ID")
		if header == "" {
			http.Error(w, `{"error":"требуется заголовок X-User-ID"}`, http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil {
			http.Error(w, `{"error":"некорректный X-User-ID"}`, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

// GetUserID возвращает идентификатор аутентифицированного пользователя
// из контекста запроса. Проверки владения бронированием используют
// только его, а не идентификаторы из тела или query-параметров
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
