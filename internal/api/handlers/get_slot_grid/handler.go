package get_slot_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getSlotGrid "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_slot_grid"
)

const (
	msgInvalidBarberID = "некорректный ID мастера"
	msgInvalidQuery    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetSlotGridUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/slot-grid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("GET /barbers/{id}/slot-grid - Invalid barber ID: %s", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	req, err := parseQuery(barberID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /barbers/%d/slot-grid - Invalid query: %v", barberID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlotGrid.ErrInvalidInput):
			h.logger.Warn("GET /barbers/%d/slot-grid - Invalid input: %v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /barbers/%d/slot-grid - Failed to build slot grid: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/%d/slot-grid - Returned %d slots", barberID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
