package validate_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на проверку черновика записи
// Повторяет форму создания; ExcludeID заполняется в режиме редактирования,
// чтобы запись не конфликтовала сама с собой
type Request struct {
	ExcludeID       *int64            // ID редактируемой записи (опционально)
	ClientID        *int64            // ID клиента (опционально)
	BarberID        *int64            // ID мастера (опционально, отсутствие - ошибка валидации)
	ServiceIDs      []int64           // Выбранные услуги
	Date            time.Time         // Дата записи
	StartTime       types.TimeString  // Время начала
	EndTime         *types.TimeString // Явное время конца; nil - автоматический расчет
	DiscountPercent *float64          // Процент скидки
	ManualPrice     *float64          // Явно введенная цена
}

// Issue одна ошибка проверки черновика
type Issue struct {
	Code    string // Машиночитаемая категория ошибки
	Field   string // Основное поле ошибки
	Message string // Текст для пользователя
}

// Response модель ответа с результатом проверки и производными значениями формы
type Response struct {
	Valid  bool
	Errors []Issue
	Fields map[string]bool // Поля, помеченные невалидными

	// Производные значения, которые форма показывает до сохранения
	EndTime      types.TimeString // Рассчитанный или явный конец
	TotalMinutes int              // Суммарная длительность услуг
	TotalPrice   float64          // Базовая цена услуг по каталогу
	FinalPrice   float64          // Итоговая цена с учетом скидки или ручной цены
}
