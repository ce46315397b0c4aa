package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID        *int64   `json:"clientId,omitempty"`
	BarberID        int64    `json:"barberId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	Date            string   `json:"date"`              // "2025-10-15"
	StartTime       string   `json:"startTime"`         // "10:00"
	EndTime         *string  `json:"endTime,omitempty"` // явный конец, включает ручной режим
	Status          *string  `json:"status,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	Price           *float64 `json:"price,omitempty"` // явная цена, подавляет расчет по скидке
	Comment         *string  `json:"comment,omitempty"`
}

// ValidationIssue одна ошибка проверки черновика
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationErrorResponse тело ответа 422 с ошибками проверки
type ValidationErrorResponse struct {
	Errors []ValidationIssue `json:"errors"`
	Fields map[string]bool   `json:"fields"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64    `json:"id"`
	ClientID        *int64   `json:"clientId,omitempty"`
	BarberID        int64    `json:"barberId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Status          string   `json:"status"`
	TotalMinutes    int      `json:"totalMinutes"`
	FinalPrice      float64  `json:"finalPrice"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	// Парсим явный конец, если указан
	var endTime *types.TimeString
	if r.EndTime != nil {
		v, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &v
	}

	return &createAppointment.Request{
		ClientID:        r.ClientID,
		BarberID:        r.BarberID,
		ServiceIDs:      r.ServiceIDs,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          r.Status,
		DiscountPercent: r.DiscountPercent,
		ManualPrice:     r.Price,
		Comment:         r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		BarberID:        resp.BarberID,
		ServiceIDs:      resp.ServiceIDs,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		TotalMinutes:    resp.TotalMinutes,
		FinalPrice:      resp.FinalPrice,
		DiscountPercent: resp.DiscountPercent,
		Comment:         resp.Comment,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
