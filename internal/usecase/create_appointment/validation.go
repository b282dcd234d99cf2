package create_appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

// phonePattern ровно 10 цифр без разделителей
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// validateRequest валидирует входные данные запроса
// Выполняется ДО любых сетевых вызовов: ошибка валидации блокирует запрос
// целиком, ни обращение к справочникам, ни запись в хранилище не происходят
func validateRequest(req *Request) error {
	if req.FranchiseID <= 0 {
		return fmt.Errorf("%w: franchiseID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return validateCustomerIdentity(req)
}

// validateCustomerIdentity проверяет личность клиента
// Выбор существующего клиента проверяется позже по справочнику; при ручном
// вводе требуются имя и телефон ровно из 10 цифр
func validateCustomerIdentity(req *Request) error {
	if req.CustomerID != nil {
		if *req.CustomerID <= 0 {
			return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
		}
		return nil
	}

	if req.Name == "" {
		return ErrMissingCustomer
	}

	if !phonePattern.MatchString(req.Phone) {
		return ErrInvalidPhone
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
// Сравниваются только даты, время суток не участвует: запись на сегодня
// допустима в любое время
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}
	return nil
}
