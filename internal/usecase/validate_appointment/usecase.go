package validate_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для проверки черновика записи без сохранения
// Используется формой для подсветки ошибок и показа производных значений
// (конец, длительность, итоговая цена) до отправки
type UseCase struct {
	appointmentRepo AppointmentRepository
	crmClient       CRMServiceClient
	hours           domain.BusinessHours
	timeProvider    TimeProvider
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
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет проверку черновика
// Блокировки не берутся: результат носит подсказочный характер,
// окончательная проверка повторяется при сохранении
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	uc.logger.Info("ValidateAppointment: barber=%v, date=%s, time=%s",
		req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Каталог услуг для длительности и базовой цены
	catalog, err := uc.crmClient.GetServices(ctx)
	if err != nil {
		uc.logger.Error("ValidateAppointment: failed to get services catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get services catalog: %v", ErrInternal, err)
	}
	summary := scheduling.Summarize(req.ServiceIDs, catalog)

	// 2. Строим черновик через переходы формы
	draft := uc.buildDraft(req, summary.TotalMinutes)

	// 3. Записи дня без блокировки
	var appointments []*domain.Appointment
	if !req.Date.IsZero() {
		dayFrom, dayTo := uc.hours.DayRange(req.Date)
		appointments, err = uc.appointmentRepo.ListInRange(ctx, dayFrom, dayTo, false)
		if err != nil {
			uc.logger.Error("ValidateAppointment: failed to list day appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to list day appointments: %v", ErrInternal, err)
		}
	}

	// 4. Полная проверка черновика
	idx := scheduling.NewIndex(appointments, req.Date, uc.hours, req.ExcludeID)
	validation := scheduling.ValidateDraft(draft, uc.hours, idx)

	resp := &Response{
		Valid:        validation.IsValid(),
		Errors:       make([]Issue, 0, len(validation.Errors)),
		Fields:       make(map[string]bool, len(validation.Fields)),
		EndTime:      draft.EndTime,
		TotalMinutes: summary.TotalMinutes,
		TotalPrice:   summary.TotalPrice,
		FinalPrice:   draft.FinalPrice(summary.TotalPrice),
	}
	for _, e := range validation.Errors {
		resp.Errors = append(resp.Errors, Issue{
			Code:    string(e.Code),
			Field:   string(e.Field),
			Message: e.Message,
		})
	}
	for f, v := range validation.Fields {
		resp.Fields[string(f)] = v
	}

	uc.logger.Info("ValidateAppointment: valid=%t, errors=%d", resp.Valid, len(resp.Errors))
	return resp, nil
}

// buildDraft строит черновик записи через переходы формы
func (uc *UseCase) buildDraft(req *Request, totalMinutes int) domain.BookingDraft {
	draft := domain.NewDraft(uc.hours, uc.timeProvider.Now(), req.Date).
		WithClient(req.ClientID).
		WithServices(req.ServiceIDs, totalMinutes, uc.hours)

	if req.BarberID != nil {
		draft = draft.WithBarber(*req.BarberID)
	}

	if !req.StartTime.IsZero() {
		draft = draft.WithStart(req.StartTime, totalMinutes, uc.hours)
	} else {
		draft.StartTime = types.TimeString("")
	}

	if req.EndTime != nil {
		draft = draft.WithEnd(*req.EndTime, uc.hours)
	}

	return draft.
		WithDiscount(req.DiscountPercent).
		WithManualPrice(req.ManualPrice)
}
