package get_day_schedule

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// parseQuery разбирает параметры фильтрации из query string
//
// Параметры:
//   - date=YYYY-MM-DD        расписание одного дня
//   - from=YYYY-MM-DD        начало периода
//   - to=YYYY-MM-DD          конец периода (включается)
//   - barberId=N             фильтр по мастеру
//   - clientId=N             фильтр по клиенту
//   - status=booked          фильтр по статусу
//   - includeCanceled=true   включить отмененные записи
//
// date и from/to взаимоисключающие, date имеет приоритет
func parseQuery(query url.Values, hours domain.BusinessHours) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %v", err)
		}
		from, to := hours.DayRange(date)
		req.From = &from
		req.To = &to
	} else {
		if v := query.Get("from"); v != "" {
			date, err := time.Parse(domain.DateFormat, v)
			if err != nil {
				return nil, fmt.Errorf("invalid from: %v", err)
			}
			from, _ := hours.DayRange(date)
			req.From = &from
		}
		if v := query.Get("to"); v != "" {
			date, err := time.Parse(domain.DateFormat, v)
			if err != nil {
				return nil, fmt.Errorf("invalid to: %v", err)
			}
			_, to := hours.DayRange(date)
			req.To = &to
		}
	}

	if v := query.Get("barberId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid barberId: %q", v)
		}
		req.BarberID = &id
	}

	if v := query.Get("clientId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid clientId: %q", v)
		}
		req.ClientID = &id
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeCanceled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCanceled: %q", v)
		}
		req.IncludeCanceled = include
	}

	return req, nil
}
