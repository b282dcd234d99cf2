package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	createAppointment "github.com/m04kA/SLN-CalendarService/internal/usecase/create_appointment"
	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid appointment date format")
	errInvalidTime = errors.New("invalid appointment time format")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FranchiseID     int64   `json:"franchiseId"`
	ServiceID       int64   `json:"serviceId"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	CustomerName    string  `json:"customerName,omitempty"`
	CustomerPhone   string  `json:"customerPhone,omitempty"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-14"
	AppointmentTime string  `json:"appointmentTime"` // "10:30"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	AppointmentCode string  `json:"appointmentCode"`
	FranchiseID     int64   `json:"franchiseId"`
	ServiceID       int64   `json:"serviceId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createAppointment.Request{
		FranchiseID: r.FranchiseID,
		ServiceID:   r.ServiceID,
		CustomerID:  r.CustomerID,
		Name:        r.CustomerName,
		Phone:       r.CustomerPhone,
		Email:       r.CustomerEmail,
		Date:        appointmentDate,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		AppointmentCode: resp.AppointmentCode,
		FranchiseID:     resp.FranchiseID,
		ServiceID:       resp.ServiceID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
