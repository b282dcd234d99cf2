package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SLN-CalendarService/internal/infra/storage/appointment"
	"github.com/m04kA/SLN-CalendarService/internal/infra/audit"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

// Service сервис для работы с записями салона
type Service struct {
	appointmentRepo AppointmentRepository
	auditPublisher  AuditPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// auditPublisher может быть nil, если аудит отключен конфигурацией
func NewService(
	appointmentRepo AppointmentRepository,
	auditPublisher AuditPublisher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		auditPublisher:  auditPublisher,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List получает список записей с учетом области видимости пользователя
// и пагинацией
func (s *Service) List(ctx context.Context, viewer domain.Viewer, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d role=%s page=%d limit=%d",
		viewer.UserID, viewer.Role, req.Page, req.Limit)

	filter, err := BuildQuery(viewer, req)
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			s.logger.Warn("List: restricted user=%d has no franchise scope", viewer.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Warn("List: invalid status filter for user=%d: %v", viewer.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointmentList, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", viewer.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.appointmentRepo.CountWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error for user=%d: %v", viewer.UserID, err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}

	s.logger.Info("List: successfully fetched %d of %d appointments for user=%d",
		len(appointmentList), total, viewer.UserID)

	return &models.AppointmentListResponse{
		Appointments: models.FromDomainAppointmentList(appointmentList),
		Pagination: models.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// GetByID получает запись по ID
// Ограниченные роли видят только записи своего салона
func (s *Service) GetByID(ctx context.Context, viewer domain.Viewer, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, viewer.UserID)

	appt, err := s.getScoped(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// UpdateStatus обновляет статус записи
//
// Таблица переходов разрешающая: любой статус может быть записан из любого
// текущего (оператору может понадобиться вернуть отмененную запись).
// Компенсирующий контроль — аудит-событие на каждый переход.
//
// Ровно один вызов хранилища на обновление; вызывающая сторона заменяет свою
// копию возвращенной строкой. При ошибке хранилища локальное состояние
// вызывающей стороны не меняется
func (s *Service) UpdateStatus(ctx context.Context, viewer domain.Viewer, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		id, req.Status, viewer.UserID)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	// Текущая запись нужна для проверки области видимости и статуса "до"
	// в аудит-событии
	current, err := s.getScoped(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.StatusCancelled && req.CancellationReason == nil {
		// Причина отмены не обязательна, но ее отсутствие стоит заметить
		s.logger.Warn("UpdateStatus: appointment id=%d cancelled without reason by user=%d",
			id, viewer.UserID)
	}

	updated, err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus, req.Notes, req.CancellationReason)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.publishAudit(ctx, current, updated, viewer, req.CancellationReason)

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d %s -> %s",
		id, current.Status, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// getScoped получает запись и проверяет область видимости пользователя
func (s *Service) getScoped(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("getScoped: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("getScoped: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getScoped - repository error: %v", ErrInternal, err)
	}

	if !viewer.Role.IsUnrestricted() {
		if viewer.FranchiseID == nil || *viewer.FranchiseID != appt.FranchiseID {
			s.logger.Warn("getScoped: access denied for user=%d to appointment id=%d (franchise=%d)",
				viewer.UserID, id, appt.FranchiseID)
			return nil, ErrAccessDenied
		}
	}

	return appt, nil
}

// publishAudit отправляет аудит-событие перехода статуса
// Аудит best-effort: ошибка публикации не откатывает обновление
func (s *Service) publishAudit(ctx context.Context, before, after *domain.Appointment, viewer domain.Viewer, reason *string) {
	if s.auditPublisher == nil {
		return
	}

	event := audit.StatusChangeEvent{
		AppointmentID:   after.ID,
		AppointmentCode: after.AppointmentCode,
		FromStatus:      string(before.Status),
		ToStatus:        string(after.Status),
		ActorID:         viewer.UserID,
		Reason:          reason,
		OccurredAt:      s.timeProvider.Now(),
	}

	if err := s.auditPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publishAudit: failed to publish audit event for appointment id=%d: %v",
			after.ID, err)
	}
}
