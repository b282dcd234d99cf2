package build_week_view

import (
	"sort"
	"strings"

	"github.com/m04kA/SLN-CalendarService/internal/domain"
)

// layoutDay раскладывает записи одного дня по сетке без пересечений
//
// Записи группируются по строке сетки (domain.SlotIndex — то же самое
// разбиение, что и при позиционировании, расхождение сетки и записей
// исключено по построению). Внутри группы порядок определяется именем
// клиента без учета регистра: повторная загрузка того же набора никогда
// не меняет раскладку, записи не "прыгают" между обновлениями.
//
// Каждая запись группы из k элементов получает ширину track/k и смещение
// position*track/k: интервалы попарно не пересекаются и целиком лежат в
// пределах дорожки
func layoutDay(appointments []*domain.Appointment) []PlacedAppointment {
	groups := make(map[int][]*domain.Appointment)
	for _, appt := range appointments {
		idx := domain.SlotIndex(appt.AppointmentTime)
		groups[idx] = append(groups[idx], appt)
	}

	placed := make([]PlacedAppointment, 0, len(appointments))

	for slot := 0; slot < domain.SlotsPerDay; slot++ {
		group, ok := groups[slot]
		if !ok {
			continue
		}

		sortGroup(group)

		total := len(group)
		width := domain.TrackWidthFraction / float64(maxInt(1, total))

		for position, appt := range group {
			placed = append(placed, PlacedAppointment{
				Appointment: appt,
				Placement: Placement{
					SlotIndex:     slot,
					Position:      position,
					Total:         total,
					WidthFraction: width,
					LeftFraction:  float64(position) * width,
					MinWidthPx:    domain.MinPlacementWidthPx,
				},
			})
		}
	}

	return placed
}

// sortGroup сортирует группу одного слота по имени клиента без учета
// регистра, по возрастанию. Стабильная сортировка: равные имена сохраняют
// порядок выборки из хранилища
func sortGroup(group []*domain.Appointment) {
	sort.SliceStable(group, func(i, j int) bool {
		return strings.ToLower(group[i].CustomerName) < strings.ToLower(group[j].CustomerName)
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
