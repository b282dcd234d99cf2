package get_appointments

import (
	"context"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, viewer domain.Viewer, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
