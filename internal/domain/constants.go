package domain

import "time"

// Default business hours values
const (
	DefaultOpenHour    = 9
	DefaultCloseHour   = 21
	DefaultSlotMinutes = 30
)

// DefaultServiceMinutes длительность по умолчанию, когда услуги еще не выбраны
// Используется для автоподстановки конца записи
const DefaultServiceMinutes = 30

// DuplicateStartTolerance допуск сравнения времени начала двух записей
// Записи одного мастера с началом в пределах этого допуска считаются дублями
// независимо от длительности интервалов
const DuplicateStartTolerance = 60 * time.Second

// Business validation constants
const (
	MaxCommentLength   = 500
	MaxDiscountPercent = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, участвующие в проверках пересечения интервалов
var BlockingStatuses = []AppointmentStatus{
	StatusBooked,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}

// AllStatuses полный список допустимых статусов записи
var AllStatuses = []AppointmentStatus{
	StatusBooked,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
}
