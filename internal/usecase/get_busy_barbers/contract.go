package get_busy_barbers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListInRange(ctx context.Context, from, to time.Time, includeCanceled bool) ([]*domain.Appointment, error)
}

// CRMServiceClient интерфейс клиента CRM барбершопа
type CRMServiceClient interface {
	GetBarbers(ctx context.Context) ([]domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
