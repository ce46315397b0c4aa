package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на полное обновление записи
// Поля заменяют сохраненные значения целиком
type Request struct {
	ID              int64             // ID обновляемой записи
	ClientID        *int64            // ID клиента (nil - запись без клиента)
	BarberID        int64             // ID мастера
	ServiceIDs      []int64           // Выбранные услуги
	Date            time.Time         // Дата записи (без времени)
	StartTime       types.TimeString  // Время начала
	EndTime         *types.TimeString // Явное время конца; nil - автоматический расчет
	Status          *string           // Статус; nil - статус не меняется
	DiscountPercent *float64          // Процент скидки
	ManualPrice     *float64          // Явно введенная цена
	Comment         *string           // Комментарий
}

// Response модель ответа с обновленной записью
type Response struct {
	ID         int64
	ClientID   *int64
	BarberID   int64
	ServiceIDs []int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string

	TotalMinutes int
	FinalPrice   float64

	DiscountPercent *float64
	Comment         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
