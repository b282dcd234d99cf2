package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SLN-CalendarService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/SLN-CalendarService/internal/integrations/franchiseservice"
)

// codeAttempts количество попыток генерации уникального кода записи
const codeAttempts = 3

// UseCase use case для создания записи в салон
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         CatalogClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: franchise=%d, service=%d, date=%s, time=%s",
		req.FranchiseID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных, до любых сетевых вызовов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование салона
	if _, err := uc.catalog.GetFranchise(ctx, req.FranchiseID); err != nil {
		if errors.Is(err, catalogClient.ErrFranchiseNotFound) {
			uc.logger.Warn("CreateAppointment: franchise id=%d not found", req.FranchiseID)
			return nil, ErrFranchiseNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get franchise id=%d: %v", req.FranchiseID, err)
		return nil, fmt.Errorf("%w: failed to get franchise: %v", ErrInternal, err)
	}

	// 4. Получаем услугу и проверяем принадлежность салону
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.FranchiseID != req.FranchiseID {
		uc.logger.Warn("CreateAppointment: service id=%d belongs to franchise=%d, not %d",
			req.ServiceID, service.FranchiseID, req.FranchiseID)
		return nil, ErrServiceNotAtFranchise
	}

	// 5. Снапшот данных клиента
	name, phone, email, err := uc.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	// 6. Создаем запись, при конфликте кода пробуем новый
	appt := &domain.Appointment{
		FranchiseID:     req.FranchiseID,
		ServiceID:       req.ServiceID,
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerEmail:   email,
		AppointmentDate: req.Date,
		AppointmentTime: req.StartTime,
		DurationMinutes: service.DurationMinutes,
		Status:          domain.StatusPending,
		Notes:           req.Notes,
	}

	created, err := uc.createWithCode(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d code=%s",
		created.ID, created.AppointmentCode)

	return &Response{
		ID:              created.ID,
		AppointmentCode: created.AppointmentCode,
		FranchiseID:     created.FranchiseID,
		ServiceID:       created.ServiceID,
		CustomerName:    created.CustomerName,
		CustomerPhone:   created.CustomerPhone,
		CustomerEmail:   created.CustomerEmail,
		Date:            created.AppointmentDate,
		StartTime:       created.AppointmentTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// resolveCustomer возвращает снапшот данных клиента
// При выбранном клиенте введенные поля игнорируются: выбор побеждает
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (name, phone string, email *string, err error) {
	if req.CustomerID == nil {
		return req.Name, req.Phone, req.Email, nil
	}

	customer, err := uc.catalog.GetCustomer(ctx, *req.CustomerID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", *req.CustomerID)
			return "", "", nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", *req.CustomerID, err)
		return "", "", nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	return customer.Name, customer.Phone, customer.Email, nil
}

// createWithCode создает запись, генерируя код и повторяя попытку
// при маловероятном конфликте уникальности
func (uc *UseCase) createWithCode(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	var lastErr error

	for attempt := 0; attempt < codeAttempts; attempt++ {
		appt.AppointmentCode = generateCode()

		created, err := uc.appointmentRepo.Create(ctx, appt)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, appointmentRepo.ErrDuplicateCode) {
			return nil, err
		}

		uc.logger.Warn("CreateAppointment: code collision %s, retrying", appt.AppointmentCode)
		lastErr = err
	}

	return nil, lastErr
}

// generateCode генерирует код записи вида "APT-3F2A9C01"
func generateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "APT-" + strings.ToUpper(raw[:8])
}
