package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Field поле формы записи, помечаемое невалидным
type Field string

const (
	FieldDate      Field = "date"
	FieldServices  Field = "services"
	FieldStartTime Field = "startTime"
	FieldEndTime   Field = "endTime"
	FieldBarber    Field = "barber"
)

// ErrorCode машиночитаемая категория ошибки валидации
type ErrorCode string

const (
	CodeFieldMissing     ErrorCode = "field_missing"
	CodeTimeOutOfRange   ErrorCode = "time_out_of_range"
	CodeEndBeforeStart   ErrorCode = "end_before_start"
	CodeDuplicateBooking ErrorCode = "duplicate_booking"
	CodeBarberConflict   ErrorCode = "barber_conflict"
	CodeClientConflict   ErrorCode = "client_conflict"
)

// Сообщения, показываемые пользователю
const (
	msgDateRequired     = "Укажите дату"
	msgServicesRequired = "Добавьте услугу"
	msgStartRequired    = "Укажите начало"
	msgEndRequired      = "Укажите конец"
	msgBarberRequired   = "Выберите мастера"
	msgEndBeforeStart   = "Конец позже начала"
	msgDuplicate        = "Запись уже существует"
	msgBarberBusy       = "Мастер занят"
	msgClientBusy       = "Клиент уже записан"
)

// ValidationError одна ошибка валидации черновика
type ValidationError struct {
	Code    ErrorCode
	Field   Field
	Message string
}

// ValidationResult результат полной проверки черновика
// Errors упорядочены по приоритету; отправка блокируется, пока список не пуст
type ValidationResult struct {
	Errors []ValidationError
	Fields map[Field]bool
}

// IsValid возвращает true, если ошибок нет
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Messages возвращает тексты ошибок в порядке приоритета
func (r ValidationResult) Messages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

func (r *ValidationResult) add(code ErrorCode, message string, fields ...Field) {
	r.Errors = append(r.Errors, ValidationError{Code: code, Field: firstField(fields), Message: message})
	for _, f := range fields {
		r.Fields[f] = true
	}
}

func firstField(fields []Field) Field {
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ValidateDraft полный конвейер проверки черновика перед сохранением
// Единственные "ворота" клиентской корректности
//
// Порядок проверок:
//  1. Обязательные поля: дата, услуги, начало, конец, мастер.
//     При любом отсутствующем поле проверки интервала не выполняются.
//  2. Начало и конец внутри рабочего окна (одна ошибка, оба поля помечаются).
//  3. Конец строго позже начала.
//     При ошибках 2-3 проверки занятости не выполняются.
//  4. Дубль по началу: запись того же мастера с началом в пределах
//     DuplicateStartTolerance. Приоритетнее пересечений, длительность
//     не учитывается, валидация завершается немедленно.
//  5. Пересечение интервала с другой записью мастера.
//  6. Пересечение интервала с другой записью клиента (если клиент выбран).
func ValidateDraft(draft domain.BookingDraft, hours domain.BusinessHours, idx *Index) ValidationResult {
	result := ValidationResult{Fields: make(map[Field]bool)}

	// 1. Обязательные поля
	if draft.Date.IsZero() {
		result.add(CodeFieldMissing, msgDateRequired, FieldDate)
	}
	if len(draft.ServiceIDs) == 0 {
		result.add(CodeFieldMissing, msgServicesRequired, FieldServices)
	}
	if draft.StartTime.IsZero() {
		result.add(CodeFieldMissing, msgStartRequired, FieldStartTime)
	}
	if draft.EndTime.IsZero() {
		result.add(CodeFieldMissing, msgEndRequired, FieldEndTime)
	}
	if draft.BarberID == nil {
		result.add(CodeFieldMissing, msgBarberRequired, FieldBarber)
	}
	if len(result.Errors) > 0 {
		return result
	}

	// 2-3. Корректность интервала
	if !hours.IsWithinWindow(draft.StartTime) || !hours.IsWithinWindow(draft.EndTime) {
		result.add(CodeTimeOutOfRange,
			fmt.Sprintf("Время: %s–%s", hours.OpenTime(), hours.CloseTime()),
			FieldStartTime, FieldEndTime)
	} else if !draft.EndTime.IsAfter(draft.StartTime) {
		result.add(CodeEndBeforeStart, msgEndBeforeStart, FieldEndTime)
	}
	if len(result.Errors) > 0 {
		return result
	}

	start, err := draft.StartAt(hours)
	if err != nil {
		result.add(CodeTimeOutOfRange, msgStartRequired, FieldStartTime)
		return result
	}
	end, err := draft.EndAt(hours)
	if err != nil {
		result.add(CodeTimeOutOfRange, msgEndRequired, FieldEndTime)
		return result
	}

	// 4. Дубль по началу
	if idx.HasDuplicateStart(*draft.BarberID, start, domain.DuplicateStartTolerance) {
		result.add(CodeDuplicateBooking, msgDuplicate, FieldStartTime)
		return result
	}

	// 5. Занятость мастера
	if idx.BarberHasConflict(*draft.BarberID, start, end) {
		result.add(CodeBarberConflict, msgBarberBusy, FieldBarber)
	}

	// 6. Занятость клиента
	if draft.ClientID != nil && idx.ClientHasConflict(*draft.ClientID, start, end) {
		result.add(CodeClientConflict, msgClientBusy, FieldStartTime)
	}

	return result
}
