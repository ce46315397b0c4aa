package scheduling

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// ServicesSummary итог по выбранным услугам
type ServicesSummary struct {
	TotalMinutes int
	TotalPrice   float64
	Count        int
}

// Summarize суммирует длительность и цену выбранных услуг по каталогу
// Не найденные в каталоге id молча пропускаются: каталог мог еще не
// загрузиться, это не ошибка. Count считает выбранные id независимо
// от успеха поиска. Цена добавляется только когда она задана в каталоге.
func Summarize(serviceIDs []int64, catalog []domain.CatalogService) ServicesSummary {
	byID := make(map[int64]domain.CatalogService, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	summary := ServicesSummary{Count: len(serviceIDs)}
	for _, id := range serviceIDs {
		s, ok := byID[id]
		if !ok {
			continue
		}
		summary.TotalMinutes += s.DurationMinutes
		if s.Price != nil {
			summary.TotalPrice += *s.Price
		}
	}
	return summary
}
