package create_appointment

import (
	"time"

	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

// Request модель запроса на создание записи
//
// Личность клиента задается одним из двух путей: выбором существующего
// клиента (CustomerID) либо вводом имени и телефона. Если указаны оба,
// побеждает выбор — введенные поля игнорируются в пользу снапшота из
// справочника
type Request struct {
	FranchiseID int64            // ID салона
	ServiceID   int64            // ID услуги каталога
	CustomerID  *int64           // ID существующего клиента (опционально)
	Name        string           // Имя клиента (ручной ввод)
	Phone       string           // Телефон клиента, ровно 10 цифр (ручной ввод)
	Email       *string          // Email клиента (опционально, не валидируется)
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала (например, "10:30")
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
// AppointmentCode — токен подтверждения бронирования, показывается оператору
type Response struct {
	ID              int64            // ID созданной записи
	AppointmentCode string           // Код записи, назначенный сервером
	FranchiseID     int64            // ID салона
	ServiceID       int64            // ID услуги
	CustomerName    string           // Имя клиента (снапшот)
	CustomerPhone   string           // Телефон клиента (снапшот)
	CustomerEmail   *string          // Email клиента (снапшот)
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность услуги в минутах
	Status          string           // Статус записи (PENDING при создании)
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
}
