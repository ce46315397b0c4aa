package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgClientNotFound     = "клиент не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Ошибки проверки черновика отдаем структурированно
		var validationErr *createAppointment.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /appointments - Draft validation failed: barber_id=%d", req.BarberID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, fromValidationResult(validationErr))
			return
		}

		switch {
		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%v", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%d, error=%v",
				req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, barber_id=%d",
		result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// fromValidationResult конвертирует результат проверки черновика в тело 422
func fromValidationResult(err *createAppointment.ValidationError) *ValidationErrorResponse {
	resp := &ValidationErrorResponse{
		Errors: make([]ValidationIssue, 0, len(err.Result.Errors)),
		Fields: make(map[string]bool, len(err.Result.Fields)),
	}
	for _, e := range err.Result.Errors {
		resp.Errors = append(resp.Errors, ValidationIssue{
			Code:    string(e.Code),
			Field:   string(e.Field),
			Message: e.Message,
		})
	}
	for f, v := range err.Result.Fields {
		resp.Fields[string(f)] = v
	}
	return resp
}
