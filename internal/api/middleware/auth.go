package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SLN-CalendarService/internal/api/handlers"
	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

const (
	headerUserID      = "X-User-ID"
	headerUserRole    = "X-User-Role"
	headerFranchiseID = "X-Franchise-ID"

	msgMissingUserID      = "отсутствует заголовок X-User-ID"
	msgInvalidUserID      = "некорректный X-User-ID"
	msgInvalidRole        = "некорректная роль пользователя"
	msgInvalidFranchiseID = "некорректный X-Franchise-ID"
)

type contextKey string

const viewerContextKey contextKey = "viewer"

// Auth извлекает личность оператора из заголовков запроса и кладет её
// в контекст. Запросы без X-User-ID отклоняются.
//
// Роль по умолчанию — staff: при отсутствии заголовка доступ максимально
// ограничен, а не расширен
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		role := domain.RoleStaff
		if roleStr := r.Header.Get(headerUserRole); roleStr != "" {
			role = domain.Role(roleStr)
			if !domain.IsValidRole(role) {
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}
		}

		viewer := domain.Viewer{
			UserID: userID,
			Role:   role,
		}

		if franchiseStr := r.Header.Get(headerFranchiseID); franchiseStr != "" {
			franchiseID, err := strconv.ParseInt(franchiseStr, 10, 64)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidFranchiseID)
				return
			}
			viewer.FranchiseID = &franchiseID
		}

		ctx := context.WithValue(r.Context(), viewerContextKey, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetViewer достает личность оператора из контекста запроса
func GetViewer(ctx context.Context) (domain.Viewer, bool) {
	viewer, ok := ctx.Value(viewerContextKey).(domain.Viewer)
	return viewer, ok
}
