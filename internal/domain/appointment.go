package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// StatusLabels человекочитаемые названия статусов для списков и ответов API
var StatusLabels = map[AppointmentStatus]string{
	StatusBooked:    "Забронировано",
	StatusConfirmed: "Подтверждено",
	StatusCompleted: "Завершено",
	StatusCanceled:  "Отменено",
	StatusNoShow:    "Не пришёл",
}

// IsValid returns true if the status is one of the known wire values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusBooked, StatusConfirmed, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsBlocking returns true if the status participates in overlap checks.
// Canceled appointments never block a barber or a client.
func (s AppointmentStatus) IsBlocking() bool {
	return s.IsValid() && s != StatusCanceled
}

// Label returns the human-readable status name
func (s AppointmentStatus) Label() string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Appointment represents a reservation of one barber for a contiguous
// time interval, optionally tied to a client
type Appointment struct {
	ID              int64
	ClientID        *int64
	BarberID        int64
	ServiceIDs      []int64
	StartAt         time.Time
	EndAt           time.Time
	Status          AppointmentStatus
	DiscountPercent *float64
	Price           *float64
	Comment         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment participates in overlap checks
func (a *Appointment) IsBlocking() bool {
	return a.Status.IsBlocking()
}

// ScheduleFilter фильтр для выборки записей
type ScheduleFilter struct {
	From            *time.Time         // Начало периода (опционально)
	To              *time.Time         // Конец периода, не включается (опционально)
	BarberID        *int64             // Фильтр по мастеру (опционально)
	ClientID        *int64             // Фильтр по клиенту (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCanceled bool               // Включать ли отменённые записи
}
