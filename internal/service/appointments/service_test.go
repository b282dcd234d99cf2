package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/infra/audit"
	appointmentRepo "github.com/m04kA/SLN-CalendarService/internal/infra/storage/appointment"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
	"github.com/m04kA/SLN-CalendarService/pkg/ptr"
	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

type fakeRepository struct {
	byID map[int64]*domain.Appointment

	listResult  []*domain.Appointment
	countResult int64
	gotFilter   domain.AppointmentsFilter
	listCalls   int

	updateCalls int
}

func (f *fakeRepository) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepository) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.listCalls++
	f.gotFilter = filter
	return f.listResult, nil
}

func (f *fakeRepository) CountWithFilter(_ context.Context, _ domain.AppointmentsFilter) (int64, error) {
	return f.countResult, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus, notes *string, cancellationReason *string) (*domain.Appointment, error) {
	f.updateCalls++

	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}

	appt.Status = status
	if notes != nil {
		appt.Notes = notes
	}
	if cancellationReason != nil {
		appt.CancellationReason = cancellationReason
	}
	appt.UpdatedAt = time.Now()

	copied := *appt
	return &copied, nil
}

type fakeAuditPublisher struct {
	events []audit.StatusChangeEvent
}

func (f *fakeAuditPublisher) Publish(_ context.Context, event audit.StatusChangeEvent) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id, franchiseID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		AppointmentCode: "APT-TEST0001",
		FranchiseID:     franchiseID,
		ServiceID:       10,
		CustomerName:    "Alice",
		CustomerPhone:   "5551234567",
		AppointmentDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: types.TimeString("11:00"),
		DurationMinutes: 30,
		Status:          status,
	}
}

func superAdmin() domain.Viewer {
	return domain.Viewer{UserID: 1, Role: domain.RoleSuperAdmin}
}

func TestUpdateStatus_CancelRoundTrip(t *testing.T) {
	repo := &fakeRepository{byID: map[int64]*domain.Appointment{
		5: testAppointment(5, 42, domain.StatusConfirmed),
	}}
	publisher := &fakeAuditPublisher{}
	svc := NewService(repo, publisher, nopLogger{})

	reason := ptr.Ptr("клиент попросил перенести")
	resp, err := svc.UpdateStatus(context.Background(), superAdmin(), 5, &models.UpdateStatusRequest{
		ActorID:            1,
		Status:             "CANCELLED",
		CancellationReason: reason,
	})
	require.NoError(t, err)

	require.Equal(t, "CANCELLED", resp.Status)
	require.Equal(t, reason, resp.CancellationReason)
	require.Equal(t, 1, repo.updateCalls, "exactly one storage write per update")

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	require.Equal(t, int64(5), event.AppointmentID)
	require.Equal(t, "CONFIRMED", event.FromStatus)
	require.Equal(t, "CANCELLED", event.ToStatus)
	require.Equal(t, int64(1), event.ActorID)
	require.Equal(t, reason, event.Reason)
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	// Разрешающая таблица переходов: отмененную запись можно вернуть
	repo := &fakeRepository{byID: map[int64]*domain.Appointment{
		5: testAppointment(5, 42, domain.StatusCancelled),
	}}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), superAdmin(), 5, &models.UpdateStatusRequest{
		ActorID: 1,
		Status:  "CONFIRMED",
	})
	require.NoError(t, err)
	require.Equal(t, "CONFIRMED", resp.Status)
}

func TestUpdateStatus_InvalidStatusRejectedWithoutWrite(t *testing.T) {
	repo := &fakeRepository{byID: map[int64]*domain.Appointment{
		5: testAppointment(5, 42, domain.StatusPending),
	}}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), superAdmin(), 5, &models.UpdateStatusRequest{
		ActorID: 1,
		Status:  "BOOKED",
	})
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.Zero(t, repo.updateCalls)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeRepository{byID: map[int64]*domain.Appointment{}}, nil, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), superAdmin(), 404, &models.UpdateStatusRequest{
		ActorID: 1,
		Status:  "CONFIRMED",
	})
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_RestrictedRoleOtherFranchiseDenied(t *testing.T) {
	repo := &fakeRepository{byID: map[int64]*domain.Appointment{
		5: testAppointment(5, 42, domain.StatusPending),
	}}
	svc := NewService(repo, nil, nopLogger{})

	viewer := domain.Viewer{UserID: 7, Role: domain.RoleStaff, FranchiseID: ptr.Ptr(int64(99))}
	_, err := svc.UpdateStatus(context.Background(), viewer, 5, &models.UpdateStatusRequest{
		ActorID: 7,
		Status:  "CONFIRMED",
	})
	require.ErrorIs(t, err, ErrAccessDenied)
	require.Zero(t, repo.updateCalls)
}

func TestGetByID_ScopedToFranchise(t *testing.T) {
	repo := &fakeRepository{byID: map[int64]*domain.Appointment{
		5: testAppointment(5, 42, domain.StatusPending),
	}}
	svc := NewService(repo, nil, nopLogger{})

	owner := domain.Viewer{UserID: 7, Role: domain.RoleFranchiseManager, FranchiseID: ptr.Ptr(int64(42))}
	resp, err := svc.GetByID(context.Background(), owner, 5)
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.ID)

	stranger := domain.Viewer{UserID: 8, Role: domain.RoleFranchiseManager, FranchiseID: ptr.Ptr(int64(99))}
	_, err = svc.GetByID(context.Background(), stranger, 5)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_PaginationMetadata(t *testing.T) {
	repo := &fakeRepository{
		byID:        map[int64]*domain.Appointment{},
		listResult:  []*domain.Appointment{testAppointment(1, 42, domain.StatusPending)},
		countResult: 45,
	}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.List(context.Background(), superAdmin(), &models.ListAppointmentsRequest{
		Page:  2,
		Limit: 20,
	})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	require.Equal(t, uint64(2), resp.Pagination.Page)
	require.Equal(t, uint64(20), resp.Pagination.Limit)
	require.Equal(t, int64(45), resp.Pagination.Total)
	require.Equal(t, int64(3), resp.Pagination.Pages)
}

func TestList_RestrictedWithoutFranchiseDenied(t *testing.T) {
	repo := &fakeRepository{byID: map[int64]*domain.Appointment{}}
	svc := NewService(repo, nil, nopLogger{})

	viewer := domain.Viewer{UserID: 7, Role: domain.RoleStaff}
	_, err := svc.List(context.Background(), viewer, &models.ListAppointmentsRequest{
		Page:  1,
		Limit: 20,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
	require.Zero(t, repo.listCalls)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&fakeRepository{byID: map[int64]*domain.Appointment{}}, nil, nopLogger{})

	_, err := svc.List(context.Background(), superAdmin(), &models.ListAppointmentsRequest{
		Page:   1,
		Limit:  20,
		Status: ptr.Ptr("BOOKED"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
