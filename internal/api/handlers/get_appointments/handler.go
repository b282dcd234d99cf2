package get_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SLN-CalendarService/internal/api/handlers"
	"github.com/m04kA/SLN-CalendarService/internal/api/middleware"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments"
)

const (
	msgMissingViewer = "отсутствует личность пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: page, limit, franchiseId, status, date (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		query.Get("page"),
		query.Get("limit"),
		query.Get("franchiseId"),
		query.Get("status"),
		query.Get("date"),
	)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), viewer, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: user_id=%d, error=%v", viewer.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments - Access denied: user_id=%d, role=%s", viewer.UserID, viewer.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v",
				viewer.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_id=%d, count=%d, total=%d",
		viewer.UserID, len(result.Appointments), result.Pagination.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
