package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidTimezone возвращается при некорректном смещении часового пояса
var ErrInvalidTimezone = errors.New("invalid timezone offset, expected ±HH:MM")

// BusinessHours фиксированное рабочее окно барбершопа
// Все времена записей должны попадать в [OpenHour:00, CloseHour:00]
// одного календарного дня
type BusinessHours struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
	Location    *time.Location
}

// NewBusinessHours создает рабочее окно
// tzOffset - фиксированное смещение вида "+06:00"
func NewBusinessHours(openHour, closeHour, slotMinutes int, tzOffset string) (BusinessHours, error) {
	loc, err := parseFixedOffset(tzOffset)
	if err != nil {
		return BusinessHours{}, err
	}
	return BusinessHours{
		OpenHour:    openHour,
		CloseHour:   closeHour,
		SlotMinutes: slotMinutes,
		Location:    loc,
	}, nil
}

// parseFixedOffset парсит смещение "+06:00" / "-03:30" в time.FixedZone
func parseFixedOffset(s string) (*time.Location, error) {
	var sign rune
	var h, m int
	if _, err := fmt.Sscanf(s, "%c%02d:%02d", &sign, &h, &m); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, s)
	}
	if (sign != '+' && sign != '-') || h > 14 || m > 59 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, s)
	}
	offset := h*3600 + m*60
	if sign == '-' {
		offset = -offset
	}
	return time.FixedZone("UTC"+s, offset), nil
}

// OpenMinutes возвращает открытие в минутах с начала суток
func (h BusinessHours) OpenMinutes() int {
	return h.OpenHour * 60
}

// CloseMinutes возвращает закрытие в минутах с начала суток
func (h BusinessHours) CloseMinutes() int {
	return h.CloseHour * 60
}

// OpenTime возвращает время открытия как TimeString
func (h BusinessHours) OpenTime() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", h.OpenHour))
}

// CloseTime возвращает время закрытия как TimeString
func (h BusinessHours) CloseTime() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", h.CloseHour))
}

// IsWithinWindow возвращает true, если время попадает в рабочее окно
// Границы окна включаются
func (h BusinessHours) IsWithinWindow(t types.TimeString) bool {
	mm, err := t.MinutesOfDay()
	if err != nil {
		return false
	}
	return mm >= h.OpenMinutes() && mm <= h.CloseMinutes()
}

// ClampToWindow возвращает время без изменений, если оно внутри окна,
// иначе прижимает к ближайшей границе
func (h BusinessHours) ClampToWindow(t types.TimeString) types.TimeString {
	mm, err := t.MinutesOfDay()
	if err != nil {
		return h.OpenTime()
	}
	if mm < h.OpenMinutes() {
		return h.OpenTime()
	}
	if mm > h.CloseMinutes() {
		return h.CloseTime()
	}
	return t
}

// At возвращает time.Time с временем t на дату date в рабочем часовом поясе
func (h BusinessHours) At(date time.Time, t types.TimeString) (time.Time, error) {
	return t.OnDate(date.In(h.Location), h.Location)
}

// DayRange возвращает границы календарного дня [from, to) в рабочем часовом поясе
func (h BusinessHours) DayRange(date time.Time) (time.Time, time.Time) {
	d := date.In(h.Location)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, h.Location)
	return from, from.AddDate(0, 0, 1)
}

// SameBusinessDate возвращает true, если оба момента относятся к одному
// календарному дню в рабочем часовом поясе
func (h BusinessHours) SameBusinessDate(a, b time.Time) bool {
	y1, m1, d1 := a.In(h.Location).Date()
	y2, m2, d2 := b.In(h.Location).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
