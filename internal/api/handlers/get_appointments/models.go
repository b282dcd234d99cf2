package get_appointments

import (
	"strconv"
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	pageStr string,
	limitStr string,
	franchiseIDStr string,
	statusStr string,
	dateStr string,
) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		Page:  domain.DefaultPage,
		Limit: domain.DefaultLimit,
	}

	if pageStr != "" {
		page, err := strconv.ParseUint(pageStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	if limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if franchiseIDStr != "" {
		franchiseID, err := strconv.ParseInt(franchiseIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.FranchiseID = &franchiseID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
