package build_week_view

import (
	"context"
	"fmt"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute собирает недельный вид календаря: семь дней от якорной даты
// с разложенными по сетке записями.
//
// Ограниченные роли всегда видят только свою франшизу: фильтр из запроса
// для них перезаписывается франшизой из контекста пользователя
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Anchor.IsZero() {
		return nil, fmt.Errorf("%w: anchor date is required", ErrInvalidInput)
	}

	franchiseID := req.FranchiseID
	if !req.Viewer.Role.IsUnrestricted() {
		if req.Viewer.FranchiseID == nil {
			uc.logger.Warn("BuildWeekView: restricted role without franchise, user_id=%d role=%s", req.Viewer.UserID, req.Viewer.Role)
			return nil, fmt.Errorf("%w: franchise scope is required for role %s", ErrInvalidInput, req.Viewer.Role)
		}
		franchiseID = req.Viewer.FranchiseID
	}

	status, err := resolveStatus(req.Status)
	if err != nil {
		return nil, err
	}

	days := domain.WeekWindow(req.Anchor)
	from := days[0]
	to := days[len(days)-1]

	appointments, err := uc.appointmentRepo.ListByDateRange(ctx, franchiseID, status, from, to)
	if err != nil {
		uc.logger.Error("BuildWeekView: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments", ErrInternal)
	}

	byDate := make(map[string][]*domain.Appointment)
	for _, appt := range appointments {
		key := appt.AppointmentDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], appt)
	}

	views := make([]DayView, 0, len(days))
	for _, day := range days {
		key := day.Format(domain.DateFormat)
		views = append(views, DayView{
			Date:         day,
			Appointments: layoutDay(byDate[key]),
		})
	}

	uc.logger.Info("BuildWeekView: built week view, anchor=%s appointments=%d", req.Anchor.Format(domain.DateFormat), len(appointments))

	return &Response{
		Anchor:     days[0],
		PrevAnchor: domain.NavigateWeek(req.Anchor, -1),
		NextAnchor: domain.NavigateWeek(req.Anchor, 1),
		Days:       views,
	}, nil
}

// resolveStatus преобразует строковый фильтр статуса в доменный.
// Пустое значение и "all" означают отсутствие фильтра
func resolveStatus(raw *string) (*domain.AppointmentStatus, error) {
	if raw == nil || *raw == "" || *raw == statusAll {
		return nil, nil
	}

	status := domain.AppointmentStatus(*raw)
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *raw)
	}

	return &status, nil
}

const statusAll = "all"
