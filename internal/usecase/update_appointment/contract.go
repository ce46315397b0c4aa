package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	ListInRange(ctx context.Context, from, to time.Time, includeCanceled bool) ([]*domain.Appointment, error)
}

// CRMServiceClient интерфейс клиента CRM барбершопа
type CRMServiceClient interface {
	GetServices(ctx context.Context) ([]domain.CatalogService, error)
	GetClient(ctx context.Context, clientID int64) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
