package domain

import (
	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

// SlotIndex maps a wall-clock appointment time onto a grid row in [0, SlotsPerDay-1].
//
// Times before the business window clamp to slot 0, times at or after its end
// clamp to the last slot: out-of-window appointments are always rendered,
// pinned to the nearest edge, never discarded.
//
// This is the single definition of the binning. Grouping appointments into
// rows and positioning an individual appointment both go through it, so the
// two computations can never disagree.
func SlotIndex(t types.TimeString) int {
	minutes, err := t.Minutes()
	if err != nil {
		// невалидное время прижимается к началу окна
		return 0
	}

	raw := (minutes - BusinessDayStartHour*60) / SlotGranularityMinutes
	if minutes < BusinessDayStartHour*60 {
		// целочисленное деление округляет к нулю, отрицательные минуты
		// требуют явного клампа
		raw = 0
	}
	if raw < 0 {
		raw = 0
	}
	if raw > SlotsPerDay-1 {
		raw = SlotsPerDay - 1
	}
	return raw
}

// SlotStartTime returns the wall-clock start of a grid row, the inverse of
// SlotIndex for in-window times. Used for row headers of the rendered grid.
func SlotStartTime(index int) types.TimeString {
	if index < 0 {
		index = 0
	}
	if index > SlotsPerDay-1 {
		index = SlotsPerDay - 1
	}

	minutes := BusinessDayStartHour*60 + index*SlotGranularityMinutes
	base := types.TimeString("00:00")
	t, err := base.AddMinutes(minutes)
	if err != nil {
		return base
	}
	return t
}
