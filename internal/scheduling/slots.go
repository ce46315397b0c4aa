package scheduling

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Slot один дискретный слот сетки рабочего дня
// Free - слот не попадает ни в один занятый интервал
// CanFit - с этого слота помещается вся запрошенная длительность:
// каждый подслот до start+totalMinutes свободен и конец не позже закрытия
// Занятый слот никогда не CanFit
type Slot struct {
	Time   types.TimeString
	Free   bool
	CanFit bool
}

// BuildSlotGrid строит сетку слотов на один день для одного мастера
// busy - занятые интервалы мастера на эту дату (из Index.BarberBusyRanges)
// totalMinutes - суммарная длительность выбранных услуг,
// нулевая заменяется на DefaultServiceMinutes
//
// Сетка позволяет UI различать "свободно, но услуга не помещается
// до закрытия или до следующей записи" и "занято"
func BuildSlotGrid(hours domain.BusinessHours, busy []Interval, totalMinutes int) []Slot {
	step := hours.SlotMinutes
	if step <= 0 {
		step = domain.DefaultSlotMinutes
	}
	total := totalMinutes
	if total <= 0 {
		total = domain.DefaultServiceMinutes
	}

	// Занятость в минутах от начала суток, чтобы не плодить time.Time
	busyRanges := make([][2]int, 0, len(busy))
	for _, b := range busy {
		start := b.Start.In(hours.Location)
		end := b.End.In(hours.Location)
		busyRanges = append(busyRanges, [2]int{
			start.Hour()*60 + start.Minute(),
			end.Hour()*60 + end.Minute(),
		})
	}

	isBusy := func(slotStart int) bool {
		slotEnd := slotStart + step
		for _, r := range busyRanges {
			if slotStart < r[1] && r[0] < slotEnd {
				return true
			}
		}
		return false
	}

	slots := make([]Slot, 0, (hours.CloseMinutes()-hours.OpenMinutes())/step)

	for m := hours.OpenMinutes(); m < hours.CloseMinutes(); m += step {
		t, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}

		free := !isBusy(m)
		canFit := free

		if canFit {
			endNeeded := m + total
			if endNeeded > hours.CloseMinutes() {
				canFit = false
			} else {
				// Все подслоты до конца услуги должны быть свободны
				for sub := m; sub < endNeeded; sub += step {
					if isBusy(sub) {
						canFit = false
						break
					}
				}
			}
		}

		slots = append(slots, Slot{Time: t, Free: free, CanFit: canFit})
	}

	return slots
}
