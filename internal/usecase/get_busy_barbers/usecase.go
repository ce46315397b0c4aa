package get_busy_barbers

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case для определения занятости мастеров на интервале
// Используется формой для сортировки списка мастеров: свободные первыми
type UseCase struct {
	appointmentRepo AppointmentRepository
	crmClient       CRMServiceClient
	hours           domain.BusinessHours
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	crmClient CRMServiceClient,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		crmClient:       crmClient,
		hours:           hours,
		logger:          logger,
	}
}

// Execute возвращает мастеров с признаком занятости на интервале
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBusyBarbers: date=%s, interval=%s-%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBusyBarbers: validation failed: %v", err)
		return nil, err
	}

	// 2. Список мастеров из CRM
	barbers, err := uc.crmClient.GetBarbers(ctx)
	if err != nil {
		uc.logger.Error("GetBusyBarbers: failed to get barbers: %v", err)
		return nil, fmt.Errorf("%w: failed to get barbers: %v", ErrInternal, err)
	}

	// 3. Записи дня и индекс занятости
	dayFrom, dayTo := uc.hours.DayRange(req.Date)
	appointments, err := uc.appointmentRepo.ListInRange(ctx, dayFrom, dayTo, false)
	if err != nil {
		uc.logger.Error("GetBusyBarbers: failed to list day appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list day appointments: %v", ErrInternal, err)
	}

	start, err := uc.hours.At(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := uc.hours.At(req.Date, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	idx := scheduling.NewIndex(appointments, req.Date, uc.hours, req.ExcludeID)
	busySet := idx.BusyBarbers(start, end)

	// 4. Свободные первыми, внутри групп по имени
	result := make([]BarberAvailability, 0, len(barbers))
	for _, b := range barbers {
		_, busy := busySet[b.ID]
		result = append(result, BarberAvailability{ID: b.ID, Name: b.Name, Busy: busy})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Busy != result[j].Busy {
			return !result[i].Busy
		}
		return result[i].Name < result[j].Name
	})

	uc.logger.Info("GetBusyBarbers: %d barbers, %d busy", len(result), len(busySet))

	return &Response{Barbers: result}, nil
}
