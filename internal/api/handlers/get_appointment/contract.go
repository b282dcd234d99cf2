package get_appointment

import (
	"context"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, viewer domain.Viewer, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
