package get_busy_barbers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
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
	barbers []domain.Barber
	err     error
}

func (m *mockCRM) GetBarbers(ctx context.Context) ([]domain.Barber, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.barbers, nil
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

func testRequest(hours domain.BusinessHours) *Request {
	return &Request{
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
		StartTime: types.TimeString("11:00"),
		EndTime:   types.TimeString("12:00"),
	}
}

func TestExecute_FreeBarbersFirstThenByName(t *testing.T) {
	hours := testHours(t)

	repo := &mockRepo{
		appointments: []*domain.Appointment{
			// Занят только Борис
			{ID: 1, BarberID: 2, StartAt: at(hours, 11, 0), EndAt: at(hours, 12, 0), Status: domain.StatusBooked},
		},
	}
	crm := &mockCRM{barbers: []domain.Barber{
		{ID: 1, Name: "Виктор"},
		{ID: 2, Name: "Борис"},
		{ID: 3, Name: "Артем"},
	}}

	uc := NewUseCase(repo, crm, hours, &mockLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(hours))

	require.NoError(t, err)
	require.Len(t, resp.Barbers, 3)

	// Свободные по имени, занятые в конце
	assert.Equal(t, "Артем", resp.Barbers[0].Name)
	assert.False(t, resp.Barbers[0].Busy)
	assert.Equal(t, "Виктор", resp.Barbers[1].Name)
	assert.False(t, resp.Barbers[1].Busy)
	assert.Equal(t, "Борис", resp.Barbers[2].Name)
	assert.True(t, resp.Barbers[2].Busy)
}

func TestExecute_TouchingIntervalNotBusy(t *testing.T) {
	hours := testHours(t)

	repo := &mockRepo{
		appointments: []*domain.Appointment{
			// Запись заканчивается ровно в начале запрошенного интервала
			{ID: 1, BarberID: 1, StartAt: at(hours, 10, 0), EndAt: at(hours, 11, 0), Status: domain.StatusBooked},
		},
	}
	crm := &mockCRM{barbers: []domain.Barber{{ID: 1, Name: "Артем"}}}

	uc := NewUseCase(repo, crm, hours, &mockLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(hours))

	require.NoError(t, err)
	require.Len(t, resp.Barbers, 1)
	assert.False(t, resp.Barbers[0].Busy)
}

func TestExecute_ExcludeEditedAppointment(t *testing.T) {
	hours := testHours(t)

	repo := &mockRepo{
		appointments: []*domain.Appointment{
			{ID: 7, BarberID: 1, StartAt: at(hours, 11, 0), EndAt: at(hours, 12, 0), Status: domain.StatusBooked},
		},
	}
	crm := &mockCRM{barbers: []domain.Barber{{ID: 1, Name: "Артем"}}}

	uc := NewUseCase(repo, crm, hours, &mockLogger{})

	req := testRequest(hours)
	req.ExcludeID = ptr.Ptr(int64(7))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Barbers[0].Busy)
}

func TestExecute_InvalidInput(t *testing.T) {
	hours := testHours(t)
	uc := NewUseCase(&mockRepo{}, &mockCRM{}, hours, &mockLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "25:00" }},
		{name: "end before start", mutate: func(r *Request) { r.EndTime = "10:00" }},
		{name: "end equals start", mutate: func(r *Request) { r.EndTime = "11:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(hours)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CRMError(t *testing.T) {
	hours := testHours(t)
	uc := NewUseCase(&mockRepo{}, &mockCRM{err: errors.New("crm down")}, hours, &mockLogger{})

	_, err := uc.Execute(context.Background(), testRequest(hours))

	assert.ErrorIs(t, err, ErrInternal)
}
