package franchiseservice

import "errors"

var (
	// ErrFranchiseNotFound возвращается, когда салон не найден
	ErrFranchiseNotFound = errors.New("franchiseservice client: franchise not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("franchiseservice client: service not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("franchiseservice client: customer not found")

	// ErrTimeout возвращается при превышении таймаута запроса
	// Отличается от ErrUnavailable для политики ретраев
	ErrTimeout = errors.New("franchiseservice client: request timeout")

	// ErrUnavailable возвращается при 5xx ответах сервиса (транзиентная ошибка)
	ErrUnavailable = errors.New("franchiseservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("franchiseservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("franchiseservice client: internal error")
)
