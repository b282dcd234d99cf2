package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SLN-CalendarService/internal/api/handlers"
	createAppointment "github.com/m04kA/SLN-CalendarService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени начала, ожидается HH:MM"
	msgFranchiseNotFound     = "салон не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgServiceNotAtFranchise = "услуга недоступна в выбранном салоне"
	msgCustomerNotFound      = "клиент не найден"
	msgMissingCustomer       = "укажите клиента: выберите из справочника или введите имя и телефон"
	msgInvalidPhone          = "телефон клиента должен состоять ровно из 10 цифр"
	msgDateInPast            = "дата записи не может быть в прошлом"
	msgInvalidInput          = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrFranchiseNotFound):
			h.logger.Warn("POST /appointments - Franchise not found: franchise_id=%d", req.FranchiseID)
			handlers.RespondNotFound(w, msgFranchiseNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotAtFranchise):
			h.logger.Warn("POST /appointments - Service not at franchise: franchise_id=%d, service_id=%d",
				req.FranchiseID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtFranchise)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: franchise_id=%d", req.FranchiseID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrMissingCustomer):
			h.logger.Warn("POST /appointments - Missing customer identity: franchise_id=%d", req.FranchiseID)
			handlers.RespondBadRequest(w, msgMissingCustomer)

		case errors.Is(err, createAppointment.ErrInvalidPhone):
			h.logger.Warn("POST /appointments - Invalid customer phone: franchise_id=%d", req.FranchiseID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: franchise_id=%d, date=%s",
				req.FranchiseID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: franchise_id=%d, error=%v", req.FranchiseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: franchise_id=%d, error=%v",
				req.FranchiseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, code=%s, franchise_id=%d",
		result.ID, result.AppointmentCode, req.FranchiseID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
