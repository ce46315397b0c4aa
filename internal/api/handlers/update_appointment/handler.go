package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAppointmentNotFound  = "запись не найдена"
	msgClientNotFound       = "клиент не найден"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %s", vars["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/%d - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/%d - Failed to parse request: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Ошибки проверки черновика отдаем структурированно
		var validationErr *updateAppointment.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("PUT /appointments/%d - Draft validation failed", appointmentID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, fromValidationResult(validationErr))
			return
		}

		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/%d - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrClientNotFound):
			h.logger.Warn("PUT /appointments/%d - Client not found: client_id=%v", appointmentID, req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/%d - Invalid input: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /appointments/%d - Failed to update appointment: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/%d - Appointment updated successfully", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// fromValidationResult конвертирует результат проверки черновика в тело 422
func fromValidationResult(err *updateAppointment.ValidationError) *ValidationErrorResponse {
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
