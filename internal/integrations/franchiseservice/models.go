package franchiseservice

// Franchise салон сети из справочного сервиса
type Franchise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Service услуга из каталога
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	FranchiseID     int64   `json:"franchiseId"`
}

// Customer клиент из справочника
type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// ErrorResponse модель ошибки справочного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
