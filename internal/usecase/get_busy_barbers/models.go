package get_busy_barbers

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса занятости мастеров на интервале
type Request struct {
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Начало интервала
	EndTime   types.TimeString // Конец интервала
	ExcludeID *int64           // ID редактируемой записи (опционально)
}

// BarberAvailability мастер с признаком занятости на запрошенном интервале
type BarberAvailability struct {
	ID   int64
	Name string
	Busy bool
}

// Response модель ответа со списком мастеров
// Свободные мастера идут первыми, внутри групп сортировка по имени
type Response struct {
	Barbers []BarberAvailability
}
