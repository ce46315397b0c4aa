package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID        *int64           // ID клиента (опционально, запись без клиента допустима)
	BarberID        int64            // ID мастера
	ServiceIDs      []int64          // Выбранные услуги
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	EndTime         *types.TimeString // Явное время конца; nil - автоматический расчет из услуг
	Status          *string          // Статус; nil - booked
	DiscountPercent *float64         // Процент скидки (опционально)
	ManualPrice     *float64         // Явно введенная цена, подавляет расчет по скидке
	Comment         *string          // Комментарий (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	ClientID   *int64
	BarberID   int64
	ServiceIDs []int64

	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	Status    string           // Статус записи

	TotalMinutes int     // Суммарная длительность услуг
	FinalPrice   float64 // Итоговая цена с учетом скидки или ручной цены

	DiscountPercent *float64
	Comment         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
