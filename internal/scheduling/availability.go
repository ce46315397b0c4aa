package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Interval полуинтервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps возвращает true при реальном пересечении полуинтервалов
// Интервалы, граничащие точка-в-точку (end == start), не пересекаются
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

type indexEntry struct {
	appointmentID int64
	interval      Interval
}

// Index индекс занятости мастеров и клиентов на один календарный день
// Строится из списка записей: берутся только блокирующие статусы на
// указанную дату, запись excludeID исключается из всех сравнений
// (самоисключение в режиме редактирования). Интервалы каждого мастера
// и клиента отсортированы по началу.
type Index struct {
	byBarber map[int64][]indexEntry
	byClient map[int64][]indexEntry
}

// NewIndex строит индекс занятости на дату date
func NewIndex(appointments []*domain.Appointment, date time.Time, hours domain.BusinessHours, excludeID *int64) *Index {
	idx := &Index{
		byBarber: make(map[int64][]indexEntry),
		byClient: make(map[int64][]indexEntry),
	}

	for _, a := range appointments {
		if !a.IsBlocking() {
			continue
		}
		if !hours.SameBusinessDate(a.StartAt, date) {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}

		entry := indexEntry{
			appointmentID: a.ID,
			interval:      Interval{Start: a.StartAt, End: a.EndAt},
		}
		idx.byBarber[a.BarberID] = append(idx.byBarber[a.BarberID], entry)
		if a.ClientID != nil {
			idx.byClient[*a.ClientID] = append(idx.byClient[*a.ClientID], entry)
		}
	}

	for _, entries := range idx.byBarber {
		sortEntries(entries)
	}
	for _, entries := range idx.byClient {
		sortEntries(entries)
	}

	return idx
}

func sortEntries(entries []indexEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].interval.Start.Before(entries[j].interval.Start)
	})
}

// BusyBarbers возвращает множество мастеров, занятых на интервале [start, end)
func (idx *Index) BusyBarbers(start, end time.Time) map[int64]struct{} {
	candidate := Interval{Start: start, End: end}
	busy := make(map[int64]struct{})
	for barberID, entries := range idx.byBarber {
		if anyOverlap(entries, candidate) {
			busy[barberID] = struct{}{}
		}
	}
	return busy
}

// BarberHasConflict возвращает true, если интервал пересекается
// с какой-либо записью мастера
func (idx *Index) BarberHasConflict(barberID int64, start, end time.Time) bool {
	return anyOverlap(idx.byBarber[barberID], Interval{Start: start, End: end})
}

// ClientHasConflict возвращает true, если интервал пересекается
// с какой-либо записью клиента (у любого мастера)
func (idx *Index) ClientHasConflict(clientID int64, start, end time.Time) bool {
	return anyOverlap(idx.byClient[clientID], Interval{Start: start, End: end})
}

// HasDuplicateStart возвращает true, если у мастера уже есть запись
// с началом в пределах tolerance от start
// Длительность интервалов намеренно не учитывается
func (idx *Index) HasDuplicateStart(barberID int64, start time.Time, tolerance time.Duration) bool {
	for _, e := range idx.byBarber[barberID] {
		diff := e.interval.Start.Sub(start)
		if diff < 0 {
			diff = -diff
		}
		if diff < tolerance {
			return true
		}
	}
	return false
}

// BarberBusyRanges возвращает занятые интервалы мастера,
// отсортированные по началу
func (idx *Index) BarberBusyRanges(barberID int64) []Interval {
	entries := idx.byBarber[barberID]
	ranges := make([]Interval, len(entries))
	for i, e := range entries {
		ranges[i] = e.interval
	}
	return ranges
}

// anyOverlap проверяет пересечение с отсортированным по началу списком
// Записи, начинающиеся после конца кандидата, пересекаться уже не могут
func anyOverlap(entries []indexEntry, candidate Interval) bool {
	for _, e := range entries {
		if !e.interval.Start.Before(candidate.End) {
			break
		}
		if e.interval.Overlaps(candidate) {
			return true
		}
	}
	return false
}
