package validate_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	validateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/validate_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase ValidateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ValidateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/validate
// Проверка черновика без сохранения: форма дергает эндпоинт на каждое
// изменение и подсвечивает ошибки до отправки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments/validate - Failed to validate draft: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/validate - Draft checked: valid=%t, errors=%d",
		result.Valid, len(result.Errors))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
