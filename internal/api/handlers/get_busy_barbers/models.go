package get_busy_barbers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getBusyBarbers "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_busy_barbers"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BarberResponse мастер с признаком занятости
type BarberResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Busy bool   `json:"busy"`
}

// BusyBarbersResponse HTTP response model
// Свободные мастера идут первыми
type BusyBarbersResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// parseQuery разбирает параметры запроса занятости мастеров
//
// Параметры:
//   - date=YYYY-MM-DD   дата (обязательно)
//   - startTime=HH:MM   начало интервала (обязательно)
//   - endTime=HH:MM     конец интервала (обязательно)
//   - excludeId=N       ID редактируемой записи (опционально)
func parseQuery(query url.Values) (*getBusyBarbers.Request, error) {
	rawDate := query.Get("date")
	if rawDate == "" {
		return nil, fmt.Errorf("date is required")
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %v", err)
	}

	endTime, err := types.NewTimeStringFromString(query.Get("endTime"))
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %v", err)
	}

	req := &getBusyBarbers.Request{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
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
func FromUseCaseResponse(resp *getBusyBarbers.Response) *BusyBarbersResponse {
	out := &BusyBarbersResponse{
		Barbers: make([]BarberResponse, len(resp.Barbers)),
	}
	for i, b := range resp.Barbers {
		out.Barbers[i] = BarberResponse{ID: b.ID, Name: b.Name, Busy: b.Busy}
	}
	return out
}
