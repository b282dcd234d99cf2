package get_feed

import (
	"net/http"

	"github.com/m04kA/SLN-CalendarService/internal/api/handlers"
	"github.com/m04kA/SLN-CalendarService/internal/api/middleware"
)

const (
	msgMissingViewer = "отсутствует личность пользователя"
	msgForbidden     = "доступ запрещен"
	msgNotReady      = "лента записей еще не загружена"
)

type Handler struct {
	provider SnapshotProvider
	logger   Logger
}

func NewHandler(provider SnapshotProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar/feed
// Снимок собирается фоновым обновлением от имени сервисной учетной
// записи и охватывает все салоны, поэтому доступен только
// неограниченным ролям
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar/feed - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	if !viewer.Role.IsUnrestricted() {
		h.logger.Warn("GET /calendar/feed - Access denied: user_id=%d, role=%s", viewer.UserID, viewer.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	snapshot := h.provider.Current()
	if snapshot == nil {
		h.logger.Warn("GET /calendar/feed - No snapshot applied yet: user_id=%d", viewer.UserID)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgNotReady)
		return
	}

	h.logger.Info("GET /calendar/feed - Snapshot served: user_id=%d, seq=%d, count=%d",
		viewer.UserID, snapshot.Seq, len(snapshot.List.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}
