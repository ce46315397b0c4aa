package get_slot_grid

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса сетки слотов
type Request struct {
	BarberID   int64     // ID мастера
	Date       time.Time // Дата (без времени)
	ServiceIDs []int64   // Выбранные услуги; пустой список - длительность по умолчанию
	ExcludeID  *int64    // ID редактируемой записи (опционально)
}

// Slot один слот сетки
type Slot struct {
	Time   types.TimeString // Начало слота
	Free   bool             // Слот не пересекается с записями мастера
	CanFit bool             // С этого слота помещается вся длительность услуг
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	BarberID     int64
	Date         time.Time
	TotalMinutes int // Длительность, для которой считался CanFit
	Slots        []Slot
}
