package get_week_view

import (
	"errors"
	"net/http"

	"github.com/m04kA/SLN-CalendarService/internal/api/handlers"
	"github.com/m04kA/SLN-CalendarService/internal/api/middleware"
	buildWeekView "github.com/m04kA/SLN-CalendarService/internal/usecase/build_week_view"
)

const (
	msgMissingViewer = "отсутствует личность пользователя"
	msgMissingAnchor = "отсутствует параметр anchor, ожидается YYYY-MM-DD"
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidStatus = "недопустимый статус записи"
)

type Handler struct {
	useCase BuildWeekViewUseCase
	logger  Logger
}

func NewHandler(useCase BuildWeekViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/week
// Query params: anchor (обязательно), franchiseId, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar/week - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	query := r.URL.Query()
	anchorStr := query.Get("anchor")
	if anchorStr == "" {
		h.logger.Warn("GET /calendar/week - Missing anchor: user_id=%d", viewer.UserID)
		handlers.RespondBadRequest(w, msgMissingAnchor)
		return
	}

	useCaseReq, err := ToUseCaseRequest(viewer, anchorStr, query.Get("franchiseId"), query.Get("status"))
	if err != nil {
		h.logger.Warn("GET /calendar/week - Invalid parameters: user_id=%d, error=%v", viewer.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildWeekView.ErrInvalidStatus):
			h.logger.Warn("GET /calendar/week - Invalid status filter: user_id=%d, error=%v", viewer.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, buildWeekView.ErrInvalidInput):
			h.logger.Warn("GET /calendar/week - Invalid input: user_id=%d, error=%v", viewer.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar/week - Failed to build week view: user_id=%d, error=%v",
				viewer.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar/week - Week view built successfully: user_id=%d, anchor=%s",
		viewer.UserID, response.Anchor)
	handlers.RespondJSON(w, http.StatusOK, response)
}
