package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
// Поля заменяют сохраненные значения целиком
type UpdateAppointmentRequest struct {
	ClientID        *int64   `json:"clientId,omitempty"`
	BarberID        int64    `json:"barberId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         *string  `json:"endTime,omitempty"`
	Status          *string  `json:"status,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	Price           *float64 `json:"price,omitempty"`
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
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*updateAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime *types.TimeString
	if r.EndTime != nil {
		v, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &v
	}

	return &updateAppointment.Request{
		ID:              id,
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
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
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
