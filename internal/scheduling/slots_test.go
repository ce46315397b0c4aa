package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func slotByTime(t *testing.T, slots []Slot, hhmm string) Slot {
	t.Helper()
	for _, s := range slots {
		if string(s.Time) == hhmm {
			return s
		}
	}
	t.Fatalf("slot %s not found", hhmm)
	return Slot{}
}

func TestBuildSlotGrid_EmptyDay(t *testing.T) {
	hours := schedHours(t)

	slots := BuildSlotGrid(hours, nil, 30)

	// 09:00-21:00 с шагом 30 минут - 24 слота
	require.Len(t, slots, 24)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("20:30"), slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.True(t, s.Free, "слот %s", s.Time)
		assert.True(t, s.CanFit, "слот %s", s.Time)
	}
}

func TestBuildSlotGrid_BusyInterval(t *testing.T) {
	hours := schedHours(t)

	busy := []Interval{
		{Start: at(hours, 10, 0), End: at(hours, 11, 0)},
	}

	slots := BuildSlotGrid(hours, busy, 30)

	assert.False(t, slotByTime(t, slots, "10:00").Free)
	assert.False(t, slotByTime(t, slots, "10:00").CanFit)
	assert.False(t, slotByTime(t, slots, "10:30").Free)

	// Граничные слоты свободны: интервалы полуоткрытые
	assert.True(t, slotByTime(t, slots, "09:30").Free)
	assert.True(t, slotByTime(t, slots, "11:00").Free)
	assert.True(t, slotByTime(t, slots, "11:00").CanFit)
}

func TestBuildSlotGrid_CannotFitBeforeClose(t *testing.T) {
	hours := schedHours(t)

	// Услуга на 60 минут не помещается с 20:30 (закрытие в 21:00)
	slots := BuildSlotGrid(hours, nil, 60)

	last := slotByTime(t, slots, "20:30")
	assert.True(t, last.Free)
	assert.False(t, last.CanFit)

	prev := slotByTime(t, slots, "20:00")
	assert.True(t, prev.Free)
	assert.True(t, prev.CanFit)
}

func TestBuildSlotGrid_CannotFitBeforeBusy(t *testing.T) {
	hours := schedHours(t)

	busy := []Interval{
		{Start: at(hours, 12, 0), End: at(hours, 13, 0)},
	}

	// 90 минут с 11:00 упираются в запись на 12:00
	slots := BuildSlotGrid(hours, busy, 90)

	s := slotByTime(t, slots, "11:00")
	assert.True(t, s.Free)
	assert.False(t, s.CanFit)

	s = slotByTime(t, slots, "13:00")
	assert.True(t, s.Free)
	assert.True(t, s.CanFit)
}

func TestBuildSlotGrid_ZeroDurationFallback(t *testing.T) {
	hours := schedHours(t)

	slots := BuildSlotGrid(hours, nil, 0)

	require.Len(t, slots, 24)
	// Нулевая длительность трактуется как один слот по умолчанию
	assert.True(t, slotByTime(t, slots, "20:30").CanFit)
}
