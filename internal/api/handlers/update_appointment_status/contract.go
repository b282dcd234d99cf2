package update_appointment_status

import (
	"context"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, viewer domain.Viewer, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
