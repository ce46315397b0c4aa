package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/crmservice"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case для редактирования записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	crmClient       CRMServiceClient
	txManager       TransactionManager
	hours           domain.BusinessHours
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
		logger:          logger,
	}
}

// Execute выполняет use case редактирования записи
// Редактируемая запись исключается из проверки конфликтов:
// запись не конфликтует сама с собой при сдвиге времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, barber=%d, date=%s, time=%s",
		req.ID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента, если он указан
	if req.ClientID != nil {
		if _, err := uc.crmClient.GetClient(ctx, *req.ClientID); err != nil {
			if errors.Is(err, crmservice.ErrClientNotFound) {
				uc.logger.Warn("UpdateAppointment: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	// 3. Получаем каталог услуг и считаем длительность и базовую цену
	catalog, err := uc.crmClient.GetServices(ctx)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get services catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get services catalog: %v", ErrInternal, err)
	}
	summary := scheduling.Summarize(req.ServiceIDs, catalog)

	// Переменные для хранения результата
	var result *domain.Appointment
	var draft domain.BookingDraft
	var finalPrice float64

	// 4. Загрузка, проверка конфликтов и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем существующую запись
		existing, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 4.2. Переносим изменения формы на черновик существующей записи
		draft = uc.applyChanges(existing, req, summary.TotalMinutes)
		finalPrice = draft.FinalPrice(summary.TotalPrice)

		// 4.3. Записи дня с блокировкой (FOR UPDATE), отмененные не блокируют
		dayFrom, dayTo := uc.hours.DayRange(req.Date)
		appointments, err := uc.appointmentRepo.ListInRange(txCtx, dayFrom, dayTo, false)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to list day appointments: %v", err)
			return fmt.Errorf("%w: failed to list day appointments: %v", ErrInternal, err)
		}

		// 4.4. Проверка черновика, редактируемая запись исключена из индекса
		idx := scheduling.NewIndex(appointments, req.Date, uc.hours, &req.ID)
		validation := scheduling.ValidateDraft(draft, uc.hours, idx)
		if !validation.IsValid() {
			uc.logger.Warn("UpdateAppointment: draft validation failed: %v", validation.Messages())
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

		// 4.5. Сохраняем обновленную запись
		appointment := &domain.Appointment{
			ID:              req.ID,
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

		updated, err := uc.appointmentRepo.Update(txCtx, appointment)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

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

// applyChanges переносит поля запроса на черновик существующей записи
// через переходы формы. Явный конец переводит конец в ручной режим,
// иначе конец пересчитывается из услуг
func (uc *UseCase) applyChanges(existing *domain.Appointment, req *Request, totalMinutes int) domain.BookingDraft {
	draft := domain.NewDraftFromAppointment(uc.hours, existing).
		WithBarber(req.BarberID).
		WithClient(req.ClientID).
		WithDate(req.Date).
		WithServices(req.ServiceIDs, totalMinutes, uc.hours).
		WithStart(req.StartTime, totalMinutes, uc.hours)

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
