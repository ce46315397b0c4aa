package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

func testCatalog() []domain.CatalogService {
	return []domain.CatalogService{
		{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: ptr.Ptr(1200.0), Active: true},
		{ID: 2, Name: "Бритье", DurationMinutes: 30, Price: ptr.Ptr(800.0), Active: true},
		{ID: 3, Name: "Укладка", DurationMinutes: 15, Price: nil, Active: true},
	}
}

func TestSummarize(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name        string
		serviceIDs  []int64
		wantMinutes int
		wantPrice   float64
		wantCount   int
	}{
		{name: "empty selection", serviceIDs: nil, wantMinutes: 0, wantPrice: 0, wantCount: 0},
		{name: "single service", serviceIDs: []int64{1}, wantMinutes: 45, wantPrice: 1200, wantCount: 1},
		{name: "two services", serviceIDs: []int64{1, 2}, wantMinutes: 75, wantPrice: 2000, wantCount: 2},
		{
			// Услуга без цены добавляет длительность, но не цену
			name: "service without price", serviceIDs: []int64{1, 3}, wantMinutes: 60, wantPrice: 1200, wantCount: 2,
		},
		{
			// Неизвестный id молча пропускается, но попадает в Count
			name: "unknown id skipped", serviceIDs: []int64{1, 99}, wantMinutes: 45, wantPrice: 1200, wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.serviceIDs, catalog)
			assert.Equal(t, tt.wantMinutes, got.TotalMinutes)
			assert.Equal(t, tt.wantPrice, got.TotalPrice)
			assert.Equal(t, tt.wantCount, got.Count)
		})
	}
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	got := Summarize([]int64{1, 2}, nil)
	assert.Equal(t, 0, got.TotalMinutes)
	assert.Equal(t, 0.0, got.TotalPrice)
	assert.Equal(t, 2, got.Count)
}
