package get_busy_barbers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getBusyBarbers "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_busy_barbers"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBusyBarbersUseCase
	logger  Logger
}

func NewHandler(useCase GetBusyBarbersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/busy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /barbers/busy - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBusyBarbers.ErrInvalidInput):
			h.logger.Warn("GET /barbers/busy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /barbers/busy - Failed to get busy barbers: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/busy - Returned %d barbers", len(result.Barbers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
