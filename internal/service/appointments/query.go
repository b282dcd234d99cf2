package appointments

import (
	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

// BuildQuery строит область видимости запроса из личности пользователя и
// состояния UI-фильтров.
//
// Для ограниченных ролей franchiseId ПРИНУДИТЕЛЬНО заменяется на салон
// пользователя, что бы ни пришло в фильтрах: ограниченный пользователь не
// может составить запрос к чужому салону. Клиентский скоупинг — удобство UX,
// авторитетная проверка дублируется на стороне хранилища данных.
//
// Статус включается, только если фильтр не равен сентинелу "all".
// Дата включается, только если выбран конкретный день; без нее выборка не
// ограничена по датам и группировку по дням выполняет недельный календарь.
func BuildQuery(viewer domain.Viewer, req *models.ListAppointmentsRequest) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Page:  req.Page,
		Limit: req.Limit,
		Date:  req.Date,
	}

	if filter.Page < domain.DefaultPage {
		filter.Page = domain.DefaultPage
	}
	if filter.Limit == 0 {
		filter.Limit = domain.DefaultLimit
	}
	if filter.Limit > domain.MaxLimit {
		filter.Limit = domain.MaxLimit
	}

	if viewer.Role.IsUnrestricted() {
		filter.FranchiseID = req.FranchiseID
	} else {
		// Ограниченный пользователь без привязки к салону не получает
		// выборку вовсе: нескоупленный запрос для такой роли недопустим
		if viewer.FranchiseID == nil {
			return filter, ErrAccessDenied
		}
		// Запрошенное значение игнорируется целиком
		filter.FranchiseID = viewer.FranchiseID
	}

	if req.Status != nil && *req.Status != models.StatusAll {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}
