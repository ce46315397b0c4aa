package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func draftDate(hours BusinessHours) time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location)
}

func TestNewDraft_Defaults(t *testing.T) {
	hours := testHours(t)
	now := time.Date(2026, 3, 15, 10, 12, 0, 0, hours.Location)

	draft := NewDraft(hours, now, draftDate(hours))

	assert.Equal(t, types.TimeString("10:12"), draft.StartTime)
	// Конец по умолчанию: начало + 30 минут
	assert.Equal(t, types.TimeString("10:42"), draft.EndTime)
	assert.Equal(t, EndModeAuto, draft.EndMode)
	assert.Equal(t, StatusBooked, draft.Status)
	assert.Nil(t, draft.BarberID)
	assert.Nil(t, draft.ClientID)
}

func TestNewDraft_StartClampedToWindow(t *testing.T) {
	hours := testHours(t)

	// До открытия
	early := time.Date(2026, 3, 15, 7, 30, 0, 0, hours.Location)
	draft := NewDraft(hours, early, draftDate(hours))
	assert.Equal(t, types.TimeString("09:00"), draft.StartTime)

	// После закрытия: начало прижимается к закрытию, конец не выходит за него
	late := time.Date(2026, 3, 15, 22, 0, 0, 0, hours.Location)
	draft = NewDraft(hours, late, draftDate(hours))
	assert.Equal(t, types.TimeString("21:00"), draft.StartTime)
	assert.Equal(t, types.TimeString("21:00"), draft.EndTime)
}

func TestBookingDraft_AutoEndRecompute(t *testing.T) {
	hours := testHours(t)
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, hours.Location)

	draft := NewDraft(hours, now, draftDate(hours)).
		WithServices([]int64{1, 2}, 75, hours)

	assert.Equal(t, types.TimeString("10:15"), draft.EndTime)

	// Сдвиг начала в Auto режиме пересчитывает конец
	draft = draft.WithStart("14:00", 75, hours)
	assert.Equal(t, types.TimeString("15:15"), draft.EndTime)

	// Конец не выходит за закрытие
	draft = draft.WithStart("20:30", 75, hours)
	assert.Equal(t, types.TimeString("21:00"), draft.EndTime)
}

func TestBookingDraft_ManualEndLatch(t *testing.T) {
	hours := testHours(t)
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, hours.Location)

	draft := NewDraft(hours, now, draftDate(hours)).
		WithServices([]int64{1}, 30, hours).
		WithStart("10:00", 30, hours)
	require.Equal(t, types.TimeString("10:30"), draft.EndTime)

	// Ручной конец фиксируется
	draft = draft.WithEnd("11:45", hours)
	assert.Equal(t, EndModeManual, draft.EndMode)
	assert.Equal(t, types.TimeString("11:45"), draft.EndTime)

	// Смена услуг в ручном режиме конец не трогает
	draft = draft.WithServices([]int64{1, 2}, 90, hours)
	assert.Equal(t, types.TimeString("11:45"), draft.EndTime)

	// Сдвиг начала в ручном режиме конец не пересчитывает
	draft = draft.WithStart("10:30", 90, hours)
	assert.Equal(t, types.TimeString("11:45"), draft.EndTime)

	// Начало, перепрыгнувшее конец, сдвигает конец на минуту вперед
	draft = draft.WithStart("12:00", 90, hours)
	assert.Equal(t, types.TimeString("12:01"), draft.EndTime)
	assert.Equal(t, EndModeManual, draft.EndMode)

	// Явный возврат в Auto пересчитывает конец
	draft = draft.WithAutoEnd(90, hours)
	assert.Equal(t, EndModeAuto, draft.EndMode)
	assert.Equal(t, types.TimeString("13:30"), draft.EndTime)
}

func TestBookingDraft_WithEnd_NotAfterStart(t *testing.T) {
	hours := testHours(t)
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, hours.Location)

	draft := NewDraft(hours, now, draftDate(hours)).
		WithStart("12:00", 30, hours).
		WithEnd("11:00", hours)

	// Конец не позже начала сдвигается на минуту после начала
	assert.Equal(t, types.TimeString("12:01"), draft.EndTime)
}

func TestNewDraftFromAppointment(t *testing.T) {
	hours := testHours(t)
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, hours.Location)
	end := time.Date(2026, 3, 15, 11, 30, 0, 0, hours.Location)

	a := &Appointment{
		ID:         7,
		ClientID:   ptr.Ptr(int64(3)),
		BarberID:   2,
		ServiceIDs: []int64{1, 4},
		StartAt:    start,
		EndAt:      end,
		Status:     StatusConfirmed,
	}

	draft := NewDraftFromAppointment(hours, a)

	require.NotNil(t, draft.ID)
	assert.Equal(t, int64(7), *draft.ID)
	require.NotNil(t, draft.BarberID)
	assert.Equal(t, int64(2), *draft.BarberID)
	assert.Equal(t, types.TimeString("10:00"), draft.StartTime)
	assert.Equal(t, types.TimeString("11:30"), draft.EndTime)
	// Режим конца сбрасывается в Auto
	assert.Equal(t, EndModeAuto, draft.EndMode)
	assert.Equal(t, StatusConfirmed, draft.Status)
}

func TestBookingDraft_FinalPrice(t *testing.T) {
	base := BookingDraft{}

	tests := []struct {
		name     string
		draft    BookingDraft
		total    float64
		expected float64
	}{
		{name: "no discount", draft: base, total: 1000, expected: 1000},
		{name: "zero total", draft: base, total: 0, expected: 0},
		{
			name:     "discount applied and rounded",
			draft:    base.WithDiscount(ptr.Ptr(15.0)),
			total:    999,
			expected: 849, // round(999 * 0.85) = round(849.15)
		},
		{
			name:     "full discount floors at zero",
			draft:    base.WithDiscount(ptr.Ptr(100.0)),
			total:    500,
			expected: 0,
		},
		{
			name:     "manual price wins over discount",
			draft:    base.WithDiscount(ptr.Ptr(50.0)).WithManualPrice(ptr.Ptr(700.0)),
			total:    1000,
			expected: 700,
		},
		{
			name:     "negative manual price ignored",
			draft:    base.WithManualPrice(ptr.Ptr(-10.0)),
			total:    1000,
			expected: 1000,
		},
		{
			name:     "manual zero is authoritative",
			draft:    base.WithManualPrice(ptr.Ptr(0.0)),
			total:    1000,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.draft.FinalPrice(tt.total))
		})
	}
}
