package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

func TestSlotIndex(t *testing.T) {
	cases := []struct {
		time string
		want int
	}{
		{"09:00", 0},
		{"09:29", 0},
		{"09:30", 1},
		{"11:00", 4},
		{"16:20", 14},
		{"18:30", 19},
		{"18:59", 19},
		// раньше окна — прижимается к первому слоту
		{"08:00", 0},
		{"00:00", 0},
		// позже окна — прижимается к последнему слоту
		{"19:00", 19},
		{"19:30", 19},
		{"23:59", 19},
	}

	for _, tt := range cases {
		got := SlotIndex(types.TimeString(tt.time))
		require.Equal(t, tt.want, got, "SlotIndex(%q)", tt.time)
	}
}

func TestSlotIndex_InvalidTimeClampsToFirstSlot(t *testing.T) {
	require.Equal(t, 0, SlotIndex(types.TimeString("not-a-time")))
	require.Equal(t, 0, SlotIndex(types.TimeString("")))
}

func TestSlotIndex_Monotonic(t *testing.T) {
	prev := -1
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 5 {
			ts, err := types.NewTimeStringFromString(fmt.Sprintf("%02d:%02d", hour, minute))
			require.NoError(t, err)

			idx := SlotIndex(ts)
			require.GreaterOrEqual(t, idx, 0)
			require.LessOrEqual(t, idx, SlotsPerDay-1)
			require.GreaterOrEqual(t, idx, prev, "SlotIndex must not decrease at %s", ts)
			prev = idx
		}
	}
}

func TestSlotStartTime(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "09:00"},
		{1, "09:30"},
		{4, "11:00"},
		{14, "16:00"},
		{19, "18:30"},
		// выход за границы сетки прижимается к краям
		{-1, "09:00"},
		{20, "18:30"},
	}

	for _, tt := range cases {
		require.Equal(t, tt.want, SlotStartTime(tt.index).String(), "SlotStartTime(%d)", tt.index)
	}
}

func TestSlotStartTime_RoundTrip(t *testing.T) {
	for idx := 0; idx < SlotsPerDay; idx++ {
		require.Equal(t, idx, SlotIndex(SlotStartTime(idx)))
	}
}
