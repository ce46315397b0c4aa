package get_busy_barbers

import (
	"context"

	getBusyBarbers "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_busy_barbers"
)

type GetBusyBarbersUseCase interface {
	Execute(ctx context.Context, req *getBusyBarbers.Request) (*getBusyBarbers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
