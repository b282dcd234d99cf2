package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultMaxTries = 3
)

// Snapshot применённый результат обновления списка
type Snapshot struct {
	Seq       uint64
	FetchedAt time.Time
	List      *models.AppointmentListResponse
}

// Refresher обновляет список записей с защитой от гонки ответов.
//
// Каждому запросу на обновление выдается монотонно растущий номер.
// Применяется только ответ с номером больше последнего применённого:
// если быстрое обновление обогнало медленное, поздний ответ раннего
// запроса отбрасывается и снимок не откатывается назад.
//
// Сбои разделяются на три класса: таймаут, недоступность источника и
// отказ бизнес-логики. Первые два повторяются с экспоненциальной
// задержкой, отказ бизнес-логики возвращается сразу без повторов
type Refresher struct {
	source       Source
	timeProvider TimeProvider
	logger       Logger
	timeout      time.Duration
	maxTries     uint

	seq atomic.Uint64

	mu         sync.Mutex
	appliedSeq uint64
	snapshot   *Snapshot
}

func NewRefresher(source Source, timeProvider TimeProvider, logger Logger, timeout time.Duration, maxTries uint) *Refresher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxTries == 0 {
		maxTries = defaultMaxTries
	}

	return &Refresher{
		source:       source,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
		maxTries:     maxTries,
	}
}

// Refresh запрашивает свежий список и применяет его, если за время
// запроса не был применён более новый
func (r *Refresher) Refresh(ctx context.Context, viewer domain.Viewer, req *models.ListAppointmentsRequest) (*Snapshot, error) {
	seq := r.seq.Add(1)

	list, err := r.fetch(ctx, viewer, req)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq <= r.appliedSeq {
		r.logger.Info("Feed: discarding stale response, seq=%d applied=%d", seq, r.appliedSeq)
		return nil, fmt.Errorf("%w: seq=%d, applied=%d", ErrStaleResponse, seq, r.appliedSeq)
	}

	r.appliedSeq = seq
	r.snapshot = &Snapshot{
		Seq:       seq,
		FetchedAt: r.timeProvider.Now(),
		List:      list,
	}

	return r.snapshot, nil
}

// Current возвращает последний применённый снимок, nil до первого успеха
func (r *Refresher) Current() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}

func (r *Refresher) fetch(ctx context.Context, viewer domain.Viewer, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	operation := func() (*models.AppointmentListResponse, error) {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		list, err := r.source.List(callCtx, viewer, req)
		if err == nil {
			return list, nil
		}

		if isTransient(err) {
			r.logger.Warn("Feed: transient refresh failure, will retry: %v", err)
			return nil, err
		}

		return nil, backoff.Permanent(err)
	}

	list, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(r.maxTries),
	)
	if err != nil {
		return nil, r.classify(err)
	}

	return list, nil
}

func (r *Refresher) classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		r.logger.Error("Feed: refresh timed out: %v", err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case isTransient(err):
		r.logger.Error("Feed: source unavailable after retries: %v", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		// Отказ бизнес-логики возвращается вызывающему как есть
		return err
	}
}

func isTransient(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, appointments.ErrInternal)
}
