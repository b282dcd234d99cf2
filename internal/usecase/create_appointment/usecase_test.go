package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SLN-CalendarService/internal/infra/storage/appointment"
	"github.com/m04kA/SLN-CalendarService/internal/integrations/franchiseservice"
	"github.com/m04kA/SLN-CalendarService/pkg/ptr"
)

type fakeCatalog struct {
	franchises map[int64]*franchiseservice.Franchise
	services   map[int64]*franchiseservice.Service
	customers  map[int64]*franchiseservice.Customer

	calls int
}

func (f *fakeCatalog) GetFranchise(_ context.Context, id int64) (*franchiseservice.Franchise, error) {
	f.calls++
	fr, ok := f.franchises[id]
	if !ok {
		return nil, franchiseservice.ErrFranchiseNotFound
	}
	return fr, nil
}

func (f *fakeCatalog) GetService(_ context.Context, id int64) (*franchiseservice.Service, error) {
	f.calls++
	svc, ok := f.services[id]
	if !ok {
		return nil, franchiseservice.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeCatalog) GetCustomer(_ context.Context, id int64) (*franchiseservice.Customer, error) {
	f.calls++
	c, ok := f.customers[id]
	if !ok {
		return nil, franchiseservice.ErrCustomerNotFound
	}
	return c, nil
}

type fakeAppointmentRepo struct {
	duplicateFailures int
	created           []*domain.Appointment
	nextID            int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.duplicateFailures > 0 {
		f.duplicateFailures--
		return nil, appointmentRepo.ErrDuplicateCode
	}

	f.nextID++
	copied := *appt
	copied.ID = f.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.created = append(f.created, &copied)
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		franchises: map[int64]*franchiseservice.Franchise{
			1: {ID: 1, Name: "Салон на Тверской"},
		},
		services: map[int64]*franchiseservice.Service{
			10: {ID: 10, Name: "Стрижка", Price: 1500, DurationMinutes: 45, FranchiseID: 1},
			20: {ID: 20, Name: "Маникюр", Price: 2000, DurationMinutes: 60, FranchiseID: 2},
		},
		customers: map[int64]*franchiseservice.Customer{
			3: {ID: 3, Name: "Мария Иванова", Phone: "9161234567", Email: ptr.Ptr("maria@example.com")},
		},
	}
}

func futureRequest() *Request {
	req := validRequest()
	req.Date = time.Now().AddDate(0, 0, 14)
	return req
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, testCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), futureRequest())
	require.NoError(t, err)

	require.Equal(t, int64(1), resp.ID)
	require.Equal(t, "PENDING", resp.Status)
	require.Equal(t, 45, resp.DurationMinutes, "duration comes from the service catalog")
	require.Equal(t, "Alice", resp.CustomerName)
	require.Equal(t, "5551234567", resp.CustomerPhone)
	require.Regexp(t, `^APT-[0-9A-F]{8}$`, resp.AppointmentCode)
}

func TestExecute_ValidationBlocksNetworkCalls(t *testing.T) {
	catalog := testCatalog()
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, catalog, nopLogger{})

	req := futureRequest()
	req.Phone = "12345"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidPhone)
	require.Zero(t, catalog.calls, "validation failure must not reach the directory")
	require.Empty(t, repo.created)
}

func TestExecute_MissingCustomerBlocksNetworkCalls(t *testing.T) {
	catalog := testCatalog()
	uc := NewUseCase(&fakeAppointmentRepo{}, catalog, nopLogger{})

	req := futureRequest()
	req.Name = ""
	req.Phone = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrMissingCustomer)
	require.Zero(t, catalog.calls)
}

func TestExecute_DateInPast(t *testing.T) {
	catalog := testCatalog()
	uc := NewUseCase(&fakeAppointmentRepo{}, catalog, nopLogger{})

	req := validRequest()
	req.Date = time.Now().AddDate(0, 0, -2)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateInPast)
	require.Zero(t, catalog.calls)
}

func TestExecute_FranchiseNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, testCatalog(), nopLogger{})

	req := futureRequest()
	req.FranchiseID = 404
	req.ServiceID = 10

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrFranchiseNotFound)
}

func TestExecute_ServiceAtDifferentFranchise(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, testCatalog(), nopLogger{})

	req := futureRequest()
	req.ServiceID = 20 // принадлежит салону 2

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServiceNotAtFranchise)
}

func TestExecute_SelectionWinsOverManualInput(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, testCatalog(), nopLogger{})

	req := futureRequest()
	req.CustomerID = ptr.Ptr(int64(3))
	req.Name = "Введенное Имя"
	req.Phone = "0000000000"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, "Мария Иванова", resp.CustomerName)
	require.Equal(t, "9161234567", resp.CustomerPhone)
	require.NotNil(t, resp.CustomerEmail)
	require.Equal(t, "maria@example.com", *resp.CustomerEmail)
}

func TestExecute_SelectedCustomerNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, testCatalog(), nopLogger{})

	req := futureRequest()
	req.CustomerID = ptr.Ptr(int64(404))

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_RetriesOnCodeCollision(t *testing.T) {
	repo := &fakeAppointmentRepo{duplicateFailures: 2}
	uc := NewUseCase(repo, testCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), futureRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.AppointmentCode)
	require.Len(t, repo.created, 1)
}

func TestExecute_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &fakeAppointmentRepo{duplicateFailures: codeAttempts}
	uc := NewUseCase(repo, testCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), futureRequest())
	require.ErrorIs(t, err, ErrInternal)
	require.Empty(t, repo.created)
}
