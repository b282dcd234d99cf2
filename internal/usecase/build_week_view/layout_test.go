package build_week_view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/pkg/types"
)

func appt(id int64, name, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		CustomerName:    name,
		AppointmentTime: types.TimeString(start),
		Status:          domain.StatusPending,
	}
}

func TestLayoutDay_SingleAppointmentFullTrack(t *testing.T) {
	placed := layoutDay([]*domain.Appointment{appt(1, "Alice", "11:00")})

	require.Len(t, placed, 1)
	p := placed[0].Placement
	require.Equal(t, 4, p.SlotIndex)
	require.Equal(t, 0, p.Position)
	require.Equal(t, 1, p.Total)
	require.InDelta(t, domain.TrackWidthFraction, p.WidthFraction, 1e-9)
	require.InDelta(t, 0.0, p.LeftFraction, 1e-9)
	require.Equal(t, domain.MinPlacementWidthPx, p.MinWidthPx)
}

func TestLayoutDay_CaseInsensitiveOrdering(t *testing.T) {
	placed := layoutDay([]*domain.Appointment{
		appt(1, "Charlie", "10:00"),
		appt(2, "alice", "10:00"),
		appt(3, "Bob", "10:00"),
	})

	require.Len(t, placed, 3)
	require.Equal(t, "alice", placed[0].Appointment.CustomerName)
	require.Equal(t, "Bob", placed[1].Appointment.CustomerName)
	require.Equal(t, "Charlie", placed[2].Appointment.CustomerName)

	for i, p := range placed {
		require.Equal(t, i, p.Placement.Position)
		require.Equal(t, 3, p.Placement.Total)
	}
}

func TestLayoutDay_ThreeOverlapping(t *testing.T) {
	// Все три попадают в слот 2 (10:00-10:30)
	placed := layoutDay([]*domain.Appointment{
		appt(1, "Zara", "10:00"),
		appt(2, "Amit", "10:10"),
		appt(3, "Nina", "10:20"),
	})

	require.Len(t, placed, 3)

	width := domain.TrackWidthFraction / 3
	require.Equal(t, "Amit", placed[0].Appointment.CustomerName)
	require.Equal(t, "Nina", placed[1].Appointment.CustomerName)
	require.Equal(t, "Zara", placed[2].Appointment.CustomerName)

	for i, p := range placed {
		require.Equal(t, 2, p.Placement.SlotIndex)
		require.InDelta(t, width, p.Placement.WidthFraction, 1e-9)
		require.InDelta(t, float64(i)*width, p.Placement.LeftFraction, 1e-9)
	}
}

func TestLayoutDay_IntervalsDisjointWithinTrack(t *testing.T) {
	placed := layoutDay([]*domain.Appointment{
		appt(1, "A", "09:00"),
		appt(2, "B", "09:05"),
		appt(3, "C", "09:10"),
		appt(4, "D", "09:15"),
		appt(5, "E", "14:00"),
		appt(6, "F", "14:10"),
	})

	bySlot := make(map[int][]Placement)
	for _, p := range placed {
		bySlot[p.Placement.SlotIndex] = append(bySlot[p.Placement.SlotIndex], p.Placement)
	}

	for slot, group := range bySlot {
		for i := 0; i < len(group); i++ {
			right := group[i].LeftFraction + group[i].WidthFraction
			require.LessOrEqual(t, right, domain.TrackWidthFraction+1e-9,
				"slot %d: placement must stay within track", slot)

			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				overlap := a.LeftFraction < b.LeftFraction+b.WidthFraction-1e-9 &&
					b.LeftFraction < a.LeftFraction+a.WidthFraction-1e-9
				require.False(t, overlap, "slot %d: placements %d and %d overlap", slot, i, j)
			}
		}
	}
}

func TestLayoutDay_SeparateSlotsDoNotShare(t *testing.T) {
	placed := layoutDay([]*domain.Appointment{
		appt(1, "Alice", "10:00"),
		appt(2, "Bob", "10:30"),
	})

	require.Len(t, placed, 2)
	require.NotEqual(t, placed[0].Placement.SlotIndex, placed[1].Placement.SlotIndex)
	for _, p := range placed {
		require.Equal(t, 1, p.Placement.Total)
		require.InDelta(t, domain.TrackWidthFraction, p.Placement.WidthFraction, 1e-9)
	}
}

func TestLayoutDay_Empty(t *testing.T) {
	require.Empty(t, layoutDay(nil))
}
