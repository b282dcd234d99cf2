package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/infra/audit"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	CountWithFilter(ctx context.Context, filter domain.AppointmentsFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, notes *string, cancellationReason *string) (*domain.Appointment, error)
}

// AuditPublisher интерфейс публикации аудит-событий переходов статусов
type AuditPublisher interface {
	Publish(ctx context.Context, event audit.StatusChangeEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
