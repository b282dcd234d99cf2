package get_week_view

import (
	"strconv"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	buildWeekView "github.com/m04kA/SLN-CalendarService/internal/usecase/build_week_view"
)

// PlacementResponse позиция записи в сетке для рендерера
type PlacementResponse struct {
	SlotIndex     int     `json:"slotIndex"`
	Position      int     `json:"position"`
	Total         int     `json:"total"`
	WidthFraction float64 `json:"widthFraction"`
	LeftFraction  float64 `json:"leftFraction"`
	MinWidthPx    int     `json:"minWidthPx"`
}

// PlacedAppointmentResponse запись с вычисленной позицией
type PlacedAppointmentResponse struct {
	ID              int64             `json:"id"`
	AppointmentCode string            `json:"appointmentCode"`
	FranchiseID     int64             `json:"franchiseId"`
	ServiceID       int64             `json:"serviceId"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	AppointmentTime string            `json:"appointmentTime"`
	DurationMinutes int               `json:"durationMinutes"`
	Status          string            `json:"status"`
	Placement       PlacementResponse `json:"placement"`
}

// DayViewResponse один день недельного окна
type DayViewResponse struct {
	Date         string                      `json:"date"`
	Appointments []PlacedAppointmentResponse `json:"appointments"`
}

// WeekViewResponse HTTP response model
type WeekViewResponse struct {
	Anchor     string            `json:"anchor"`
	PrevAnchor string            `json:"prevAnchor"`
	NextAnchor string            `json:"nextAnchor"`
	Days       []DayViewResponse `json:"days"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(
	viewer domain.Viewer,
	anchorStr string,
	franchiseIDStr string,
	statusStr string,
) (buildWeekView.Request, error) {
	req := buildWeekView.Request{Viewer: viewer}

	anchor, err := time.Parse(domain.DateFormat, anchorStr)
	if err != nil {
		return buildWeekView.Request{}, err
	}
	req.Anchor = anchor

	if franchiseIDStr != "" {
		franchiseID, err := strconv.ParseInt(franchiseIDStr, 10, 64)
		if err != nil {
			return buildWeekView.Request{}, err
		}
		req.FranchiseID = &franchiseID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildWeekView.Response) *WeekViewResponse {
	days := make([]DayViewResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		appointments := make([]PlacedAppointmentResponse, 0, len(day.Appointments))
		for _, placed := range day.Appointments {
			appointments = append(appointments, PlacedAppointmentResponse{
				ID:              placed.Appointment.ID,
				AppointmentCode: placed.Appointment.AppointmentCode,
				FranchiseID:     placed.Appointment.FranchiseID,
				ServiceID:       placed.Appointment.ServiceID,
				CustomerName:    placed.Appointment.CustomerName,
				CustomerPhone:   placed.Appointment.CustomerPhone,
				AppointmentTime: placed.Appointment.AppointmentTime.String(),
				DurationMinutes: placed.Appointment.DurationMinutes,
				Status:          string(placed.Appointment.Status),
				Placement: PlacementResponse{
					SlotIndex:     placed.Placement.SlotIndex,
					Position:      placed.Placement.Position,
					Total:         placed.Placement.Total,
					WidthFraction: placed.Placement.WidthFraction,
					LeftFraction:  placed.Placement.LeftFraction,
					MinWidthPx:    placed.Placement.MinWidthPx,
				},
			})
		}

		days = append(days, DayViewResponse{
			Date:         day.Date.Format(domain.DateFormat),
			Appointments: appointments,
		})
	}

	return &WeekViewResponse{
		Anchor:     resp.Anchor.Format(domain.DateFormat),
		PrevAnchor: resp.PrevAnchor.Format(domain.DateFormat),
		NextAnchor: resp.NextAnchor.Format(domain.DateFormat),
		Days:       days,
	}
}
