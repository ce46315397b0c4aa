package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/crmservice"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	createErr    error
	listErr      error
}

func (m *mockRepo) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = a
	out := *a
	out.ID = 100
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

func (m *mockRepo) ListInRange(ctx context.Context, from, to time.Time, includeCanceled bool) ([]*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.appointments, nil
}

type mockCRM struct {
	services  []domain.CatalogService
	client    *domain.Client
	clientErr error
}

func (m *mockCRM) GetServices(ctx context.Context) ([]domain.CatalogService, error) {
	return m.services, nil
}

func (m *mockCRM) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	if m.clientErr != nil {
		return nil, m.clientErr
	}
	return m.client, nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
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

func testCatalog() []domain.CatalogService {
	return []domain.CatalogService{
		{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: ptr.Ptr(1200.0), Active: true},
		{ID: 2, Name: "Бритье", DurationMinutes: 30, Price: ptr.Ptr(800.0), Active: true},
	}
}

func newTestUseCase(repo *mockRepo, crm *mockCRM, hours domain.BusinessHours) *UseCase {
	uc := NewUseCase(repo, crm, &mockTxManager{}, hours, &mockLogger{})
	uc.timeProvider = &mockTimeProvider{now: time.Date(2026, 3, 15, 8, 0, 0, 0, hours.Location)}
	return uc
}

func validRequest(hours domain.BusinessHours) *Request {
	return &Request{
		BarberID:   1,
		ServiceIDs: []int64{1, 2},
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, hours.Location),
		StartTime:  types.TimeString("11:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	resp, err := uc.Execute(context.Background(), validRequest(hours))

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(1), resp.BarberID)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
	// Конец рассчитан автоматически: 45 + 30 минут
	assert.Equal(t, types.TimeString("12:15"), resp.EndTime)
	assert.Equal(t, 75, resp.TotalMinutes)
	assert.Equal(t, 2000.0, resp.FinalPrice)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)

	require.NotNil(t, repo.created)
	assert.Equal(t, at(hours, 11, 0), repo.created.StartAt)
	assert.Equal(t, at(hours, 12, 15), repo.created.EndAt)
	require.NotNil(t, repo.created.Price)
	assert.Equal(t, 2000.0, *repo.created.Price)
}

func TestExecute_DiscountApplied(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	req := validRequest(hours)
	req.DiscountPercent = ptr.Ptr(15.0)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// round(2000 * 0.85) = 1700
	assert.Equal(t, 1700.0, resp.FinalPrice)
}

func TestExecute_ManualPriceWins(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	req := validRequest(hours)
	req.DiscountPercent = ptr.Ptr(15.0)
	req.ManualPrice = ptr.Ptr(500.0)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 500.0, resp.FinalPrice)
}

func TestExecute_ExplicitEndOverridesAuto(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	req := validRequest(hours)
	req.EndTime = ptr.Ptr(types.TimeString("13:00"))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), resp.EndTime)
}

func TestExecute_BarberConflict(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{
		appointments: []*domain.Appointment{
			{
				ID:       1,
				BarberID: 1,
				StartAt:  at(hours, 11, 30),
				EndAt:    at(hours, 12, 30),
				Status:   domain.StatusBooked,
			},
		},
	}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	resp, err := uc.Execute(context.Background(), validRequest(hours))

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Result.Errors, 1)
	assert.Equal(t, scheduling.CodeBarberConflict, vErr.Result.Errors[0].Code)
	assert.Nil(t, repo.created)
}

func TestExecute_DuplicateStart(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{
		appointments: []*domain.Appointment{
			{
				ID:       1,
				BarberID: 1,
				StartAt:  at(hours, 11, 0).Add(30 * time.Second),
				EndAt:    at(hours, 12, 0),
				Status:   domain.StatusBooked,
			},
		},
	}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	_, err := uc.Execute(context.Background(), validRequest(hours))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Result.Errors, 1)
	assert.Equal(t, scheduling.CodeDuplicateBooking, vErr.Result.Errors[0].Code)
}

func TestExecute_MissingStartTime(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	req := validRequest(hours)
	req.StartTime = ""

	_, err := uc.Execute(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Messages(), "Укажите начало")
	assert.True(t, vErr.Result.Fields[scheduling.FieldStartTime])
}

func TestExecute_ClientNotFound(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{}
	crm := &mockCRM{
		services:  testCatalog(),
		clientErr: crmservice.ErrClientNotFound,
	}
	uc := newTestUseCase(repo, crm, hours)

	req := validRequest(hours)
	req.ClientID = ptr.Ptr(int64(42))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_InvalidInput(t *testing.T) {
	hours := testHours(t)
	uc := newTestUseCase(&mockRepo{}, &mockCRM{services: testCatalog()}, hours)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "negative barber id", mutate: func(r *Request) { r.BarberID = -1 }},
		{name: "discount above 100", mutate: func(r *Request) { r.DiscountPercent = ptr.Ptr(150.0) }},
		{name: "negative manual price", mutate: func(r *Request) { r.ManualPrice = ptr.Ptr(-10.0) }},
		{name: "unknown status", mutate: func(r *Request) { r.Status = ptr.Ptr("unknown") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(hours)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepoError(t *testing.T) {
	hours := testHours(t)
	repo := &mockRepo{createErr: errors.New("db down")}
	crm := &mockCRM{services: testCatalog()}
	uc := newTestUseCase(repo, crm, hours)

	_, err := uc.Execute(context.Background(), validRequest(hours))

	assert.ErrorIs(t, err, ErrInternal)
}

func at(hours domain.BusinessHours, h, m int) time.Time {
	return time.Date(2026, 3, 15, h, m, 0, 0, hours.Location)
}
