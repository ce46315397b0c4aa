package get_slot_grid

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/crmservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type mockRepo struct {
	appointments []*domain.Appointment
	listErr      error
}

func (m *mockRepo) ListInRange(ctx context.Context, from, to time.Time, includeCanceled bool) ([]*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.appointments, nil
}

type mockCRM struct {
	services []domain.CatalogService
	err      error
}

func (m *mockCRM) GetServicesWithGracefulDegradation(ctx context.Context) ([]domain.CatalogService, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.services, nil
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func testHours(t *testing.T) domain.BusinessHours {
	t.Helper()
	hours, err := domain.NewBusinessHours(9, 21, 30, "+06:00")
	require.NoError(t, err)
	return hours
}

func at(hours domain.BusinessHours, h, m int) time.Time {
	return time.Date(2026, 3, 15, h, m, 0, 0, hours.Location)
}

func slotByTime(t *testing.T, slots []Slot, hhmm string) Slot {
	t.Helper()
	for _, s := range slots {
		if string(s.Time) == hhmm {
			return s
		}
	}
	t.Fatalf("slot %s not found", hhmm)
	return Slot{}
}

func TestExecute_GridWithBusyInterval(t *testing.T) {
	hours := testHours(t)

	repo := &mockRepo{
		appointments: []*domain.Appointment{
			{ID: 1, BarberID: 1, StartAt: at(hours, 10, 0), EndAt: at(hours, 11, 0), Status: domain.StatusBooked},
			// Запись другого мастера не влияет
			{ID: 2, BarberID: 2, StartAt: at(hours, 14, 0), EndAt: at(hours, 15, 0), Status: domain.StatusBooked},
		},
	}
	crm := &mockCRM{services: []domain.CatalogService{
		{ID: 1, Name: "Стрижка", DurationMinutes: 45, Active: true},
	}}

	uc := NewUseCase(repo, crm, hours, &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
		ServiceIDs: []int64{1},
	})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.TotalMinutes)
	require.Len(t, resp.Slots, 24)

	assert.False(t, slotByTime(t, resp.Slots, "10:00").Free)
	assert.False(t, slotByTime(t, resp.Slots, "10:30").Free)
	assert.True(t, slotByTime(t, resp.Slots, "14:00").Free)
	// 45 минут с 09:30 упираются в запись на 10:00
	s := slotByTime(t, resp.Slots, "09:30")
	assert.True(t, s.Free)
	assert.False(t, s.CanFit)
}

func TestExecute_DegradedCatalogFallsBackToDefault(t *testing.T) {
	hours := testHours(t)

	repo := &mockRepo{}
	crm := &mockCRM{err: fmt.Errorf("%w: crm unavailable", crmservice.ErrServiceDegraded)}

	uc := NewUseCase(repo, crm, hours, &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
		ServiceIDs: []int64{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceMinutes, resp.TotalMinutes)
	require.Len(t, resp.Slots, 24)
	assert.True(t, slotByTime(t, resp.Slots, "20:30").CanFit)
}

func TestExecute_NoServicesSkipsCatalog(t *testing.T) {
	hours := testHours(t)

	// Каталог не должен запрашиваться: любая ошибка CRM уронила бы тест
	crm := &mockCRM{err: fmt.Errorf("unexpected call")}

	uc := NewUseCase(&mockRepo{}, crm, hours, &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceMinutes, resp.TotalMinutes)
}

func TestExecute_ExcludeEditedAppointment(t *testing.T) {
	hours := testHours(t)

	repo := &mockRepo{
		appointments: []*domain.Appointment{
			{ID: 7, BarberID: 1, StartAt: at(hours, 10, 0), EndAt: at(hours, 11, 0), Status: domain.StatusBooked},
		},
	}
	crm := &mockCRM{}

	uc := NewUseCase(repo, crm, hours, &mockLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:  1,
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
		ExcludeID: ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	assert.True(t, slotByTime(t, resp.Slots, "10:00").Free)
}

func TestExecute_InvalidInput(t *testing.T) {
	hours := testHours(t)
	uc := NewUseCase(&mockRepo{}, &mockCRM{}, hours, &mockLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero barber id", req: &Request{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location)}},
		{name: "zero date", req: &Request{BarberID: 1}},
		{name: "negative service id", req: &Request{
			BarberID:   1,
			Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
			ServiceIDs: []int64{-1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
