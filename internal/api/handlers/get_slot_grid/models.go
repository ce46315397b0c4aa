package get_slot_grid

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getSlotGrid "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_slot_grid"
)

// SlotResponse один слот сетки
type SlotResponse struct {
	Time   string `json:"time"`
	Free   bool   `json:"free"`
	CanFit bool   `json:"canFit"`
}

// SlotGridResponse HTTP response model
type SlotGridResponse struct {
	BarberID     int64          `json:"barberId"`
	Date         string         `json:"date"`
	TotalMinutes int            `json:"totalMinutes"`
	Slots        []SlotResponse `json:"slots"`
}

// parseQuery разбирает параметры запроса сетки слотов
//
// Параметры:
//   - date=YYYY-MM-DD     дата (обязательно)
//   - serviceIds=1,2,3    выбранные услуги (опционально)
//   - excludeId=N         ID редактируемой записи (опционально)
func parseQuery(barberID int64, query url.Values) (*getSlotGrid.Request, error) {
	rawDate := query.Get("date")
	if rawDate == "" {
		return nil, fmt.Errorf("date is required")
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	req := &getSlotGrid.Request{
		BarberID: barberID,
		Date:     date,
	}

	if raw := query.Get("serviceIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid serviceIds: %q", raw)
			}
			req.ServiceIDs = append(req.ServiceIDs, id)
		}
	}

	if raw := query.Get("excludeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid excludeId: %q", raw)
		}
		req.ExcludeID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotGrid.Response) *SlotGridResponse {
	out := &SlotGridResponse{
		BarberID:     resp.BarberID,
		Date:         resp.Date.Format(domain.DateFormat),
		TotalMinutes: resp.TotalMinutes,
		Slots:        make([]SlotResponse, len(resp.Slots)),
	}
	for i, s := range resp.Slots {
		out.Slots[i] = SlotResponse{
			Time:   s.Time.String(),
			Free:   s.Free,
			CanFit: s.CanFit,
		}
	}
	return out
}
