package domain

import (
	"math"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// EndMode режим вычисления времени окончания записи
type EndMode int

const (
	// EndModeAuto конец пересчитывается автоматически из начала и
	// суммарной длительности выбранных услуг
	EndModeAuto EndMode = iota

	// EndModeManual конец зафиксирован пользователем и не пересчитывается
	// до явного возврата в EndModeAuto
	EndModeManual
)

// BookingDraft черновик записи, редактируемый формой
// Неизменяемое значение: каждый переход With* возвращает новый черновик
type BookingDraft struct {
	ID              *int64 // nil для несохраненного черновика
	BarberID        *int64
	ClientID        *int64
	ServiceIDs      []int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	EndMode         EndMode
	Status          AppointmentStatus
	DiscountPercent *float64
	ManualPrice     *float64
	Comment         *string
}

// NewDraft создает пустой черновик на указанную дату
// Начало - текущее время, прижатое к рабочему окну
func NewDraft(hours BusinessHours, now time.Time, date time.Time) BookingDraft {
	start := hours.ClampToWindow(types.NewTimeString(now.In(hours.Location)))
	d := BookingDraft{
		Date:      date,
		StartTime: start,
		EndMode:   EndModeAuto,
		Status:    StatusBooked,
	}
	return d.recomputeEnd(0, hours)
}

// NewDraftFromAppointment создает черновик из существующей записи (режим редактирования)
// Сохраненные времена прижимаются к рабочему окну, режим конца сбрасывается в Auto
func NewDraftFromAppointment(hours BusinessHours, a *Appointment) BookingDraft {
	id := a.ID
	start := a.StartAt.In(hours.Location)
	end := a.EndAt.In(hours.Location)

	serviceIDs := make([]int64, len(a.ServiceIDs))
	copy(serviceIDs, a.ServiceIDs)

	barberID := a.BarberID
	return BookingDraft{
		ID:              &id,
		BarberID:        &barberID,
		ClientID:        a.ClientID,
		ServiceIDs:      serviceIDs,
		Date:            start,
		StartTime:       hours.ClampToWindow(types.NewTimeString(start)),
		EndTime:         hours.ClampToWindow(types.NewTimeString(end)),
		EndMode:         EndModeAuto,
		Status:          a.Status,
		DiscountPercent: a.DiscountPercent,
		ManualPrice:     a.Price,
		Comment:         a.Comment,
	}
}

// WithBarber возвращает черновик с выбранным мастером
func (d BookingDraft) WithBarber(barberID int64) BookingDraft {
	d.BarberID = &barberID
	return d
}

// WithClient возвращает черновик с выбранным клиентом (nil - без клиента)
func (d BookingDraft) WithClient(clientID *int64) BookingDraft {
	d.ClientID = clientID
	return d
}

// WithDate возвращает черновик с новой датой
func (d BookingDraft) WithDate(date time.Time) BookingDraft {
	d.Date = date
	return d
}

// WithServices возвращает черновик с новым набором услуг
// В режиме Auto конец пересчитывается из totalMinutes
func (d BookingDraft) WithServices(serviceIDs []int64, totalMinutes int, hours BusinessHours) BookingDraft {
	ids := make([]int64, len(serviceIDs))
	copy(ids, serviceIDs)
	d.ServiceIDs = ids
	if d.EndMode == EndModeAuto {
		return d.recomputeEnd(totalMinutes, hours)
	}
	return d
}

// WithStart возвращает черновик с новым началом, прижатым к рабочему окну
// В режиме Auto конец пересчитывается; в режиме Manual конец, оказавшийся
// не позже начала, сдвигается на минуту вперед
func (d BookingDraft) WithStart(t types.TimeString, totalMinutes int, hours BusinessHours) BookingDraft {
	d.StartTime = hours.ClampToWindow(t)
	if d.EndMode == EndModeAuto {
		return d.recomputeEnd(totalMinutes, hours)
	}
	if !d.EndTime.IsZero() && !d.EndTime.IsAfter(d.StartTime) {
		d.EndTime = minuteAfter(d.StartTime, hours)
	}
	return d
}

// WithEnd возвращает черновик с концом, заданным пользователем
// Переводит режим в Manual; конец не позже начала сдвигается на минуту вперед
func (d BookingDraft) WithEnd(t types.TimeString, hours BusinessHours) BookingDraft {
	v := hours.ClampToWindow(t)
	if !v.IsAfter(d.StartTime) {
		v = minuteAfter(d.StartTime, hours)
	}
	d.EndTime = v
	d.EndMode = EndModeManual
	return d
}

// WithAutoEnd явно возвращает режим Auto и пересчитывает конец
func (d BookingDraft) WithAutoEnd(totalMinutes int, hours BusinessHours) BookingDraft {
	d.EndMode = EndModeAuto
	return d.recomputeEnd(totalMinutes, hours)
}

// WithStatus возвращает черновик с новым статусом
func (d BookingDraft) WithStatus(status AppointmentStatus) BookingDraft {
	d.Status = status
	return d
}

// WithDiscount возвращает черновик с процентом скидки (nil - без скидки)
func (d BookingDraft) WithDiscount(percent *float64) BookingDraft {
	d.DiscountPercent = percent
	return d
}

// WithManualPrice возвращает черновик с явно введенной ценой
// Явная цена подавляет пересчет по скидке
func (d BookingDraft) WithManualPrice(price *float64) BookingDraft {
	d.ManualPrice = price
	return d
}

// WithComment возвращает черновик с комментарием
func (d BookingDraft) WithComment(comment *string) BookingDraft {
	d.Comment = comment
	return d
}

// recomputeEnd пересчитывает конец: start + totalMinutes, не позже закрытия
// Нулевая длительность заменяется на DefaultServiceMinutes
func (d BookingDraft) recomputeEnd(totalMinutes int, hours BusinessHours) BookingDraft {
	start := d.StartTime
	if start.IsZero() {
		start = hours.OpenTime()
	}
	total := totalMinutes
	if total <= 0 {
		total = DefaultServiceMinutes
	}

	mm, err := start.MinutesOfDay()
	if err != nil {
		return d
	}
	mm += total
	if mm > hours.CloseMinutes() {
		mm = hours.CloseMinutes()
	}

	end, err := types.NewTimeStringFromMinutes(mm)
	if err != nil {
		return d
	}
	d.EndTime = end
	return d
}

// minuteAfter возвращает время на минуту позже t, не позже закрытия
func minuteAfter(t types.TimeString, hours BusinessHours) types.TimeString {
	mm, err := t.MinutesOfDay()
	if err != nil {
		return hours.CloseTime()
	}
	mm++
	if mm > hours.CloseMinutes() {
		mm = hours.CloseMinutes()
	}
	v, err := types.NewTimeStringFromMinutes(mm)
	if err != nil {
		return hours.CloseTime()
	}
	return v
}

// StartAt возвращает момент начала черновика в рабочем часовом поясе
func (d BookingDraft) StartAt(hours BusinessHours) (time.Time, error) {
	return hours.At(d.Date, d.StartTime)
}

// EndAt возвращает момент окончания черновика в рабочем часовом поясе
func (d BookingDraft) EndAt(hours BusinessHours) (time.Time, error) {
	return hours.At(d.Date, d.EndTime)
}

// FinalPrice возвращает итоговую цену записи
// Явно введенная цена имеет приоритет; иначе базовая цена услуг
// уменьшается на процент скидки и округляется, но не ниже нуля
func (d BookingDraft) FinalPrice(totalPrice float64) float64 {
	if d.ManualPrice != nil && *d.ManualPrice >= 0 {
		return *d.ManualPrice
	}
	if totalPrice <= 0 {
		return 0
	}
	discount := 0.0
	if d.DiscountPercent != nil {
		discount = *d.DiscountPercent
	}
	if discount == 0 {
		return totalPrice
	}
	v := math.Round(totalPrice * (1 - discount/100))
	if v < 0 {
		return 0
	}
	return v
}
