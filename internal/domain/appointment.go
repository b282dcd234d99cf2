package domain

import (
	"time"

	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// Appointment represents a salon appointment in the system
// Customer fields are snapshotted at booking time, not live references
type Appointment struct {
	ID              int64
	AppointmentCode string // server-assigned at creation, immutable
	FranchiseID     int64
	ServiceID       int64

	// Customer snapshot
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	AppointmentDate time.Time
	AppointmentTime types.TimeString
	DurationMinutes int // informational only, not used for slot sizing
	Status          AppointmentStatus

	Notes              *string
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the appointment is in a terminal-in-practice state.
// These states are not protected against further status writes; the permissive
// transition table is intentional (operators may need to un-cancel).
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted ||
		a.Status == StatusCancelled ||
		a.Status == StatusNoShow
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// ValidStatuses перечень всех допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValidStatus returns true if s is one of the known statuses
func IsValidStatus(s AppointmentStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	FranchiseID *int64             // Фильтр по салону (опционально)
	Status      *AppointmentStatus // Фильтр по статусу (опционально)
	Date        *time.Time         // Фильтр по конкретной дате (опционально)
	Page        uint64             // Номер страницы (с 1)
	Limit       uint64             // Размер страницы
}

// Offset возвращает смещение для пагинации
func (f AppointmentsFilter) Offset() uint64 {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
