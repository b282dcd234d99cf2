package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/integrations/franchiseservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// CatalogClient интерфейс клиента справочников
// Реализуется franchiseservice.Client и cache.CachedCatalog
type CatalogClient interface {
	GetFranchise(ctx context.Context, franchiseID int64) (*franchiseservice.Franchise, error)
	GetService(ctx context.Context, serviceID int64) (*franchiseservice.Service, error)
	GetCustomer(ctx context.Context, customerID int64) (*franchiseservice.Customer, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
