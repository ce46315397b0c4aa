package create_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

var (
	// ErrClientNotFound возвращается, когда клиент не найден в CRM
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrValidationFailed возвращается, когда черновик не прошел проверку
	// расписания (обязательные поля, рабочее окно, дубль, конфликты)
	ErrValidationFailed = errors.New("create_appointment: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
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
