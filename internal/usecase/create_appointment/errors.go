package create_appointment

import "errors"

var (
	// ErrFranchiseNotFound возвращается, когда салон не найден
	ErrFranchiseNotFound = errors.New("create_appointment: franchise not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceNotAtFranchise возвращается, когда услуга принадлежит другому салону
	ErrServiceNotAtFranchise = errors.New("create_appointment: service does not belong to this franchise")

	// ErrCustomerNotFound возвращается, когда выбранный клиент не найден в справочнике
	ErrCustomerNotFound = errors.New("create_appointment: selected customer not found")

	// ErrMissingCustomer возвращается, когда не выбран клиент и не введены имя с телефоном
	ErrMissingCustomer = errors.New("create_appointment: customer identity is required")

	// ErrInvalidPhone возвращается, когда телефон не состоит ровно из 10 цифр
	ErrInvalidPhone = errors.New("create_appointment: customer phone must be exactly 10 digits")

	// ErrDateInPast возвращается, когда дата записи раньше сегодняшней
	ErrDateInPast = errors.New("create_appointment: appointment date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
