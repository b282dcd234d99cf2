package models

import (
	"errors"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// StatusAll сентинел UI-фильтра "все статусы": фильтр по статусу не применяется
const StatusAll = "all"

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
// FranchiseID/Status/Date — состояние UI-фильтров вызывающей стороны,
// итоговая область видимости определяется ролью пользователя (BuildQuery)
type ListAppointmentsRequest struct {
	Page        uint64     `json:"page"`
	Limit       uint64     `json:"limit"`
	FranchiseID *int64     `json:"franchiseId,omitempty"`
	Status      *string    `json:"status,omitempty"` // "all" = без фильтра
	Date        *time.Time `json:"date,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	ActorID            int64   `json:"actorId"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	AppointmentCode string `json:"appointmentCode"`
	FranchiseID     int64  `json:"franchiseId"`
	ServiceID       int64  `json:"serviceId"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	AppointmentDate string `json:"appointmentDate"` // "2026-01-15"
	AppointmentTime string `json:"appointmentTime"` // "10:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pagination метаданные пагинации списка
type Pagination struct {
	Page  uint64 `json:"page"`
	Limit uint64 `json:"limit"`
	Total int64  `json:"total"`
	Pages int64  `json:"pages"`
}

// AppointmentListResponse ответ со списком записей и пагинацией
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Pagination   Pagination            `json:"pagination"`
}

// Методы конвертации

// FromDomainAppointment конвертирует доменную модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		AppointmentCode:    a.AppointmentCode,
		FranchiseID:        a.FranchiseID,
		ServiceID:          a.ServiceID,
		CustomerName:       a.CustomerName,
		CustomerPhone:      a.CustomerPhone,
		CustomerEmail:      a.CustomerEmail,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime:    a.AppointmentTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if resp := FromDomainAppointment(a); resp != nil {
			out = append(out, *resp)
		}
	}
	return out
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
