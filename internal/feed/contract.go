package feed

import (
	"context"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

// Source источник списка записей
type Source interface {
	List(ctx context.Context, viewer domain.Viewer, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
