package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

func schedHours(t *testing.T) domain.BusinessHours {
	t.Helper()
	hours, err := domain.NewBusinessHours(9, 21, 30, "+06:00")
	require.NoError(t, err)
	return hours
}

func schedDate(hours domain.BusinessHours) time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location)
}

func at(hours domain.BusinessHours, h, m int) time.Time {
	return time.Date(2026, 3, 15, h, m, 0, 0, hours.Location)
}

func appointment(id, barberID int64, clientID *int64, start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:       id,
		BarberID: barberID,
		ClientID: clientID,
		StartAt:  start,
		EndAt:    end,
		Status:   status,
	}
}

func TestInterval_Overlaps(t *testing.T) {
	hours := schedHours(t)

	a := Interval{Start: at(hours, 10, 0), End: at(hours, 11, 0)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "identical", other: Interval{at(hours, 10, 0), at(hours, 11, 0)}, want: true},
		{name: "contained", other: Interval{at(hours, 10, 15), at(hours, 10, 45)}, want: true},
		{name: "partial left", other: Interval{at(hours, 9, 30), at(hours, 10, 30)}, want: true},
		{name: "partial right", other: Interval{at(hours, 10, 30), at(hours, 11, 30)}, want: true},
		// Интервалы, граничащие точка-в-точку, не пересекаются
		{name: "touching before", other: Interval{at(hours, 9, 0), at(hours, 10, 0)}, want: false},
		{name: "touching after", other: Interval{at(hours, 11, 0), at(hours, 12, 0)}, want: false},
		{name: "disjoint", other: Interval{at(hours, 13, 0), at(hours, 14, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(a))
		})
	}
}

func TestNewIndex_FiltersNonBlockingAndOtherDates(t *testing.T) {
	hours := schedHours(t)
	date := schedDate(hours)

	otherDay := time.Date(2026, 3, 16, 10, 0, 0, 0, hours.Location)

	appointments := []*domain.Appointment{
		appointment(1, 1, nil, at(hours, 10, 0), at(hours, 11, 0), domain.StatusBooked),
		// Отмененная запись не блокирует
		appointment(2, 1, nil, at(hours, 12, 0), at(hours, 13, 0), domain.StatusCanceled),
		// Запись другого дня не попадает в индекс
		appointment(3, 1, nil, otherDay, otherDay.Add(time.Hour), domain.StatusBooked),
	}

	idx := NewIndex(appointments, date, hours, nil)

	assert.True(t, idx.BarberHasConflict(1, at(hours, 10, 30), at(hours, 11, 30)))
	assert.False(t, idx.BarberHasConflict(1, at(hours, 12, 0), at(hours, 13, 0)))

	ranges := idx.BarberBusyRanges(1)
	assert.Len(t, ranges, 1)
}

func TestNewIndex_ExcludesEditedAppointment(t *testing.T) {
	hours := schedHours(t)
	date := schedDate(hours)

	appointments := []*domain.Appointment{
		appointment(5, 1, nil, at(hours, 10, 0), at(hours, 11, 0), domain.StatusBooked),
	}

	// Без исключения конфликт есть
	idx := NewIndex(appointments, date, hours, nil)
	assert.True(t, idx.BarberHasConflict(1, at(hours, 10, 0), at(hours, 11, 0)))

	// Редактируемая запись не конфликтует сама с собой
	idx = NewIndex(appointments, date, hours, ptr.Ptr(int64(5)))
	assert.False(t, idx.BarberHasConflict(1, at(hours, 10, 0), at(hours, 11, 0)))
	assert.False(t, idx.HasDuplicateStart(1, at(hours, 10, 0), domain.DuplicateStartTolerance))
}

func TestIndex_ClientHasConflict(t *testing.T) {
	hours := schedHours(t)
	date := schedDate(hours)

	clientID := ptr.Ptr(int64(42))
	appointments := []*domain.Appointment{
		// Клиент записан к мастеру 1
		appointment(1, 1, clientID, at(hours, 10, 0), at(hours, 11, 0), domain.StatusBooked),
	}

	idx := NewIndex(appointments, date, hours, nil)

	// Пересечение у другого мастера все равно конфликт для клиента
	assert.True(t, idx.ClientHasConflict(42, at(hours, 10, 30), at(hours, 11, 30)))
	assert.False(t, idx.ClientHasConflict(42, at(hours, 11, 0), at(hours, 12, 0)))
	assert.False(t, idx.ClientHasConflict(7, at(hours, 10, 30), at(hours, 11, 30)))
}

func TestIndex_HasDuplicateStart(t *testing.T) {
	hours := schedHours(t)
	date := schedDate(hours)

	start := at(hours, 9, 0)
	appointments := []*domain.Appointment{
		appointment(1, 1, nil, start, start.Add(30*time.Minute), domain.StatusBooked),
	}

	idx := NewIndex(appointments, date, hours, nil)
	tolerance := domain.DuplicateStartTolerance

	// Начало в пределах 60 секунд считается дублем
	assert.True(t, idx.HasDuplicateStart(1, start, tolerance))
	assert.True(t, idx.HasDuplicateStart(1, start.Add(30*time.Second), tolerance))
	assert.True(t, idx.HasDuplicateStart(1, start.Add(-30*time.Second), tolerance))

	// Ровно 60 секунд дублем уже не считается
	assert.False(t, idx.HasDuplicateStart(1, start.Add(60*time.Second), tolerance))
	assert.False(t, idx.HasDuplicateStart(1, start.Add(30*time.Minute), tolerance))

	// Другой мастер
	assert.False(t, idx.HasDuplicateStart(2, start, tolerance))
}

func TestIndex_BusyBarbers(t *testing.T) {
	hours := schedHours(t)
	date := schedDate(hours)

	appointments := []*domain.Appointment{
		appointment(1, 1, nil, at(hours, 10, 0), at(hours, 11, 0), domain.StatusBooked),
		appointment(2, 2, nil, at(hours, 14, 0), at(hours, 15, 0), domain.StatusConfirmed),
		appointment(3, 3, nil, at(hours, 10, 0), at(hours, 10, 30), domain.StatusCanceled),
	}

	idx := NewIndex(appointments, date, hours, nil)

	busy := idx.BusyBarbers(at(hours, 10, 0), at(hours, 10, 30))
	assert.Contains(t, busy, int64(1))
	assert.NotContains(t, busy, int64(2))
	assert.NotContains(t, busy, int64(3))
}
