package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода, не включается (опционально)
	BarberID        *int64     `json:"barberId,omitempty"`        // Фильтр по мастеру (опционально)
	ClientID        *int64     `json:"clientId,omitempty"`        // Фильтр по клиенту (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeCanceled bool       `json:"includeCanceled,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.ScheduleFilter, error) {
	filter := domain.ScheduleFilter{
		From:            r.From,
		To:              r.To,
		BarberID:        r.BarberID,
		ClientID:        r.ClientID,
		IncludeCanceled: r.IncludeCanceled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	ClientID   *int64  `json:"clientId,omitempty"`
	BarberID   int64   `json:"barberId"`
	ServiceIDs []int64 `json:"serviceIds"`

	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
	StartAt   string `json:"startAt"`   // ISO 8601 с фиксированным смещением
	EndAt     string `json:"endAt"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`

	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Comment         *string  `json:"comment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Времена приводятся к часовому поясу барбершопа
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	startAt := a.StartAt.In(loc)
	endAt := a.EndAt.In(loc)

	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		BarberID:        a.BarberID,
		ServiceIDs:      a.ServiceIDs,
		Date:            startAt.Format(domain.DateFormat),
		StartTime:       startAt.Format(domain.TimeFormat),
		EndTime:         endAt.Format(domain.TimeFormat),
		StartAt:         startAt.Format(time.RFC3339),
		EndAt:           endAt.Format(time.RFC3339),
		Status:          string(a.Status),
		StatusLabel:     a.Status.Label(),
		DiscountPercent: a.DiscountPercent,
		Price:           a.Price,
		Comment:         a.Comment,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appointment := range appointments {
		if appointmentResp := FromDomainAppointment(appointment, loc); appointmentResp != nil {
			resp.Appointments[i] = *appointmentResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
