package build_week_view

import (
	"context"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByDateRange(ctx context.Context, franchiseID *int64, status *domain.AppointmentStatus, from, to time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
