package update_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrClientNotFound возвращается, когда клиент не найден в CRM
	ErrClientNotFound = errors.New("update_appointment: client not found")

	// ErrValidationFailed возвращается, когда черновик не прошел проверку расписания
	ErrValidationFailed = errors.New("update_appointment: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)

// ValidationError ошибка с полным результатом проверки черновика
// Разворачивается в ErrValidationFailed для errors.Is
type ValidationError struct {
	Result scheduling.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidationFailed, strings.Join(e.Result.Messages(), "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
