package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/crmservice"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	crmClient       CRMServiceClient
	txManager       TransactionManager
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	crmClient CRMServiceClient,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		crmClient:       crmClient,
		txManager:       txManager,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка конфликтов и вставка идут в сериализуемой транзакции
// с блокировкой записей дня, чтобы исключить гонку двух создателей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: barber=%d, date=%s, time=%s, services=%v",
		req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента, если он указан
	if req.ClientID != nil {
		if _, err := uc.crmClient.GetClient(ctx, *req.ClientID); err != nil {
			if errors.Is(err, crmservice.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	// 3. Получаем каталог услуг и считаем длительность и базовую цену
	catalog, err := uc.crmClient.GetServices(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get services catalog: %v", ErrInternal, err)
	}
	summary := scheduling.Summarize(req.ServiceIDs, catalog)

	// 4. Строим черновик через переходы формы
	draft := uc.buildDraft(req, summary.TotalMinutes)

	// Переменные для хранения результата
	var result *domain.Appointment
	finalPrice := draft.FinalPrice(summary.TotalPrice)

	// 5. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Записи дня с блокировкой (FOR UPDATE), отмененные не блокируют
		dayFrom, dayTo := uc.hours.DayRange(req.Date)
		appointments, err := uc.appointmentRepo.ListInRange(txCtx, dayFrom, dayTo, false)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list day appointments: %v", err)
			return fmt.Errorf("%w: failed to list day appointments: %v", ErrInternal, err)
		}

		// 5.2. Полная проверка черновика по индексу занятости
		idx := scheduling.NewIndex(appointments, req.Date, uc.hours, nil)
		validation := scheduling.ValidateDraft(draft, uc.hours, idx)
		if !validation.IsValid() {
			uc.logger.Warn("CreateAppointment: draft validation failed: %v", validation.Messages())
			return &ValidationError{Result: validation}
		}

		startAt, err := draft.StartAt(uc.hours)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve start time: %v", ErrInternal, err)
		}
		endAt, err := draft.EndAt(uc.hours)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve end time: %v", ErrInternal, err)
		}

		// 5.3. Сохраняем запись
		appointment := &domain.Appointment{
			ClientID:        draft.ClientID,
			BarberID:        *draft.BarberID,
			ServiceIDs:      draft.ServiceIDs,
			StartAt:         startAt,
			EndAt:           endAt,
			Status:          draft.Status,
			DiscountPercent: draft.DiscountPercent,
			Price:           &finalPrice,
			Comment:         draft.Comment,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		BarberID:        result.BarberID,
		ServiceIDs:      result.ServiceIDs,
		Date:            req.Date,
		StartTime:       draft.StartTime,
		EndTime:         draft.EndTime,
		Status:          string(result.Status),
		TotalMinutes:    summary.TotalMinutes,
		FinalPrice:      finalPrice,
		DiscountPercent: result.DiscountPercent,
		Comment:         result.Comment,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// buildDraft строит черновик записи через переходы формы
// Явный конец переводит черновик в ручной режим конца
func (uc *UseCase) buildDraft(req *Request, totalMinutes int) domain.BookingDraft {
	draft := domain.NewDraft(uc.hours, uc.timeProvider.Now(), req.Date).
		WithBarber(req.BarberID).
		WithClient(req.ClientID).
		WithServices(req.ServiceIDs, totalMinutes, uc.hours)

	if !req.StartTime.IsZero() {
		draft = draft.WithStart(req.StartTime, totalMinutes, uc.hours)
	} else {
		draft.StartTime = types.TimeString("")
	}

	if req.EndTime != nil {
		draft = draft.WithEnd(*req.EndTime, uc.hours)
	}

	if req.Status != nil {
		draft = draft.WithStatus(domain.AppointmentStatus(*req.Status))
	}

	return draft.
		WithDiscount(req.DiscountPercent).
		WithManualPrice(req.ManualPrice).
		WithComment(req.Comment)
}
