package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pqUniqueViolation = "23505"

// appointmentColumns полный список колонок таблицы appointments
var appointmentColumns = []string{
	"id",
	"appointment_code",
	"franchise_id",
	"service_id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"appointment_date",
	"appointment_time",
	"duration_minutes",
	"status",
	"notes",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// appointment_code генерируется вызывающей стороной (usecase) и уникален
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"appointment_code",
			"franchise_id",
			"service_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"appointment_date",
			"appointment_time",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			appt.AppointmentCode,
			appt.FranchiseID,
			appt.ServiceID,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.CustomerEmail,
			appt.AppointmentDate,
			appt.AppointmentTime,
			appt.DurationMinutes,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListWithFilter получает записи по фильтру с пагинацией
//
// Сортировка:
// - для конкретной даты — по времени начала (ASC), порядок строк сетки
// - иначе — по дате и времени (DESC, сначала новые)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := r.applyFilter(psqlbuilder.Select(appointmentColumns...).From("appointments"), filter)

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("appointment_time ASC", "lower(customer_name) ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC", "appointment_time DESC")
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset())
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountWithFilter возвращает общее количество записей по фильтру
// Используется для расчета пагинации, разделяет условия с ListWithFilter
func (r *Repository) CountWithFilter(ctx context.Context, filter domain.AppointmentsFilter) (int64, error) {
	query, args, err := r.applyFilter(psqlbuilder.Select("COUNT(*)").From("appointments"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// ListByDateRange получает записи салонов за период дат
// Используется недельным календарем: одна выборка на все 7 дней окна
func (r *Repository) ListByDateRange(
	ctx context.Context,
	franchiseID *int64,
	status *domain.AppointmentStatus,
	from, to time.Time,
) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		OrderBy("appointment_date ASC", "appointment_time ASC")

	if franchiseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"franchise_id": *franchiseID})
	}
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи одним запросом и возвращает
// обновленную строку. Проверка версий не выполняется: последний
// записавший побеждает
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.AppointmentStatus,
	notes *string,
	cancellationReason *string,
) (*domain.Appointment, error) {
	updateBuilder := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}
	if cancellationReason != nil {
		updateBuilder = updateBuilder.Set("cancellation_reason", *cancellationReason)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + joinColumns(appointmentColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: UpdateStatus - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// applyFilter добавляет условия фильтра к запросу
// Общий код ListWithFilter и CountWithFilter: условия обязаны совпадать,
// иначе total пагинации разойдется со списком
func (r *Repository) applyFilter(selectBuilder squirrel.SelectBuilder, filter domain.AppointmentsFilter) squirrel.SelectBuilder {
	if filter.FranchiseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"franchise_id": *filter.FranchiseID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	return selectBuilder
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в доменную модель
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.AppointmentCode,
		&appt.FranchiseID,
		&appt.ServiceID,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.CustomerEmail,
		&appt.AppointmentDate,
		&appt.AppointmentTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.Notes,
		&appt.CancellationReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// joinColumns собирает список колонок для RETURNING
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
