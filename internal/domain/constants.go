package domain

// Business window of the calendar grid: fixed product-wide, not configurable per franchise
const (
	BusinessDayStartHour   = 9  // 09:00
	BusinessDayEndHour     = 19 // 19:00
	SlotGranularityMinutes = 30

	// SlotsPerDay количество строк сетки: (19-9)*60/30 = 20
	SlotsPerDay = (BusinessDayEndHour - BusinessDayStartHour) * 60 / SlotGranularityMinutes
)

// Layout constants for concurrent appointments within one slot column
const (
	// TrackWidthFraction максимальная доля ширины колонки под записи,
	// остаток — фиксированный отступ справа
	TrackWidthFraction = 0.95

	// MinPlacementWidthPx нижняя граница ширины записи в пикселях,
	// передается рендереру для читаемости при большом total
	MinPlacementWidthPx = 40
)

// DaysPerWeek размер окна недельного календаря
const DaysPerWeek = 7

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 200
)

// Business validation constants
const (
	CustomerPhoneDigits         = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)
