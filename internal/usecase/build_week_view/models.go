package build_week_view

import (
	"time"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

// Request модель запроса недельного календаря
// FranchiseID — состояние UI-фильтра; для ограниченных ролей игнорируется
// и заменяется салоном пользователя
type Request struct {
	Viewer      domain.Viewer // Личность пользователя
	Anchor      time.Time     // Первая дата окна (не привязана к понедельнику)
	FranchiseID *int64        // Фильтр по салону (опционально)
	Status      *string       // Фильтр по статусу (опционально, "all" = без фильтра)
}

// Placement вычисленная позиция записи в сетке
//
// Инвариант: внутри одной группы слота интервалы [Left, Left+Width) попарно
// не пересекаются и каждый лежит в [0, TrackWidthFraction]
type Placement struct {
	SlotIndex     int     // Строка сетки, [0, SlotsPerDay-1]
	Position      int     // Порядковый номер внутри группы слота
	Total         int     // Размер группы слота
	WidthFraction float64 // Доля ширины колонки
	LeftFraction  float64 // Смещение от левого края колонки
	MinWidthPx    int     // Нижняя граница ширины для рендерера
}

// PlacedAppointment запись с вычисленной позицией
type PlacedAppointment struct {
	Appointment *domain.Appointment
	Placement   Placement
}

// DayView один день недельного окна
type DayView struct {
	Date         time.Time
	Appointments []PlacedAppointment
}

// Response модель ответа недельного календаря
// PrevAnchor/NextAnchor — якоря для навигации на неделю назад/вперед
type Response struct {
	Anchor     time.Time
	PrevAnchor time.Time
	NextAnchor time.Time
	Days       []DayView
}
