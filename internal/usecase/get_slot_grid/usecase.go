package get_slot_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/crmservice"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case для построения сетки слотов мастера на день
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

// Execute строит сетку слотов мастера на указанную дату
// При недоступности CRM длительность услуг неизвестна:
// сетка строится с длительностью по умолчанию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotGrid: barber=%d, date=%s, services=%v",
		req.BarberID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Суммарная длительность услуг, каталог с graceful degradation
	totalMinutes := 0
	if len(req.ServiceIDs) > 0 {
		catalog, err := uc.crmClient.GetServicesWithGracefulDegradation(ctx)
		if err != nil && !errors.Is(err, crmservice.ErrServiceDegraded) {
			uc.logger.Error("GetSlotGrid: failed to get services catalog: %v", err)
			return nil, fmt.Errorf("%w: failed to get services catalog: %v", ErrInternal, err)
		}
		totalMinutes = scheduling.Summarize(req.ServiceIDs, catalog).TotalMinutes
	}
	if totalMinutes <= 0 {
		totalMinutes = domain.DefaultServiceMinutes
	}

	// 3. Записи дня и занятость мастера
	dayFrom, dayTo := uc.hours.DayRange(req.Date)
	appointments, err := uc.appointmentRepo.ListInRange(ctx, dayFrom, dayTo, false)
	if err != nil {
		uc.logger.Error("GetSlotGrid: failed to list day appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list day appointments: %v", ErrInternal, err)
	}

	idx := scheduling.NewIndex(appointments, req.Date, uc.hours, req.ExcludeID)
	busy := idx.BarberBusyRanges(req.BarberID)

	// 4. Сетка слотов
	grid := scheduling.BuildSlotGrid(uc.hours, busy, totalMinutes)

	slots := make([]Slot, len(grid))
	for i, s := range grid {
		slots[i] = Slot{Time: s.Time, Free: s.Free, CanFit: s.CanFit}
	}

	uc.logger.Info("GetSlotGrid: built %d slots for barber=%d", len(slots), req.BarberID)

	return &Response{
		BarberID:     req.BarberID,
		Date:         req.Date,
		TotalMinutes: totalMinutes,
		Slots:        slots,
	}, nil
}
