package get_feed

import (
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/feed"
	"github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
)

// FeedResponse снимок ленты записей для фронтенда
type FeedResponse struct {
	Seq          uint64                       `json:"seq"`
	FetchedAt    string                       `json:"fetchedAt"`
	Appointments []models.AppointmentResponse `json:"appointments"`
	Pagination   models.Pagination            `json:"pagination"`
}

// FromSnapshot конвертирует снимок в HTTP ответ
func FromSnapshot(s *feed.Snapshot) *FeedResponse {
	return &FeedResponse{
		Seq:          s.Seq,
		FetchedAt:    s.FetchedAt.Format(time.RFC3339),
		Appointments: s.List.Appointments,
		Pagination:   s.List.Pagination,
	}
}
