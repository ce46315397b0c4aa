package validate_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	validateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/validate_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ValidateAppointmentRequest HTTP request model
// Повторяет форму создания записи; excludeId указывается при редактировании
type ValidateAppointmentRequest struct {
	ExcludeID       *int64   `json:"excludeId,omitempty"`
	ClientID        *int64   `json:"clientId,omitempty"`
	BarberID        *int64   `json:"barberId,omitempty"`
	ServiceIDs      []int64  `json:"serviceIds"`
	Date            *string  `json:"date,omitempty"`
	StartTime       *string  `json:"startTime,omitempty"`
	EndTime         *string  `json:"endTime,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	Price           *float64 `json:"price,omitempty"`
}

// ValidationIssue одна ошибка проверки черновика
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidateAppointmentResponse HTTP response model
type ValidateAppointmentResponse struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationIssue `json:"errors"`
	Fields map[string]bool   `json:"fields"`

	EndTime      string  `json:"endTime,omitempty"`
	TotalMinutes int     `json:"totalMinutes"`
	TotalPrice   float64 `json:"totalPrice"`
	FinalPrice   float64 `json:"finalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Отсутствующие или пустые дата и время остаются нулевыми:
// про них сообщит проверка обязательных полей
func (r *ValidateAppointmentRequest) ToUseCaseRequest() (*validateAppointment.Request, error) {
	req := &validateAppointment.Request{
		ExcludeID:       r.ExcludeID,
		ClientID:        r.ClientID,
		BarberID:        r.BarberID,
		ServiceIDs:      r.ServiceIDs,
		DiscountPercent: r.DiscountPercent,
		ManualPrice:     r.Price,
	}

	if r.Date != nil && *r.Date != "" {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.StartTime != nil && *r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	if r.EndTime != nil && *r.EndTime != "" {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateAppointment.Response) *ValidateAppointmentResponse {
	out := &ValidateAppointmentResponse{
		Valid:        resp.Valid,
		Errors:       make([]ValidationIssue, 0, len(resp.Errors)),
		Fields:       resp.Fields,
		EndTime:      resp.EndTime.String(),
		TotalMinutes: resp.TotalMinutes,
		TotalPrice:   resp.TotalPrice,
		FinalPrice:   resp.FinalPrice,
	}
	for _, e := range resp.Errors {
		out.Errors = append(out.Errors, ValidationIssue{
			Code:    e.Code,
			Field:   e.Field,
			Message: e.Message,
		})
	}
	return out
}
