package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendahub/TenantBookingService/internal/domain"
	bookingRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/booking"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTenantRepo struct {
	tenants map[string]*domain.Tenant
}

func (r *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, ok := r.tenants[slug]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return t, nil
}

// fakeBookingRepo воспроизводит семантику частичного уникального индекса:
// вставка атомарна, второй победитель за слот невозможен
type fakeBookingRepo struct {
	mu     sync.Mutex
	nextID int64
	active map[string]struct{}
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{active: make(map[string]struct{})}
}

func slotKey(b *domain.Booking) string {
	return b.TenantSlug + "|" + b.BookingDate.Format(domain.DateFormat) + "|" + b.BookingTime.String()
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(b)
	if _, taken := r.active[key]; taken {
		return nil, bookingRepo.ErrSlotTaken
	}
	r.active[key] = struct{}{}

	r.nextID++
	created := *b
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	return &created, nil
}

type countingMetrics struct {
	mu        sync.Mutex
	created   int
	conflicts int
}

func (m *countingMetrics) IncBookingCreated() {
	m.mu.Lock()
	m.created++
	m.mu.Unlock()
}

func (m *countingMetrics) IncSlotConflict() {
	m.mu.Lock()
	m.conflicts++
	m.mu.Unlock()
}

func validRequest() *Request {
	return &Request{
		TenantSlug:    "barber",
		ServiceName:   "Corte",
		CustomerName:  "Ana",
		CustomerPhone: "+5511999990000",
		Date:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:          "10:00",
	}
}

func newTestUseCase(repo *fakeBookingRepo, m Metrics) *UseCase {
	tenants := map[string]*domain.Tenant{"barber": {Slug: "barber"}}
	return NewUseCase(&fakeTenantRepo{tenants: tenants}, repo, m, nopLogger{})
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "10:00", resp.Time.String())
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), nil)

	req := validRequest()
	req.TenantSlug = "ghost"
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_SlotTakenMapsToSlotNotAvailable(t *testing.T) {
	repo := newFakeBookingRepo()
	m := &countingMetrics{}
	uc := newTestUseCase(repo, m)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, m.created)
	assert.Equal(t, 1, m.conflicts)
}

func TestExecute_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	const n = 16

	repo := newFakeBookingRepo()
	m := &countingMetrics{}
	uc := newTestUseCase(repo, m)

	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrSlotNotAvailable):
			conflicts++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, conflicts)
	assert.Equal(t, 1, m.created)
	assert.Equal(t, n-1, m.conflicts)
}

func TestExecute_ValidationRejectsMissingFields(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), nil)

	cases := map[string]func(*Request){
		"missing slug":    func(r *Request) { r.TenantSlug = "" },
		"missing service": func(r *Request) { r.ServiceName = "" },
		"missing name":    func(r *Request) { r.CustomerName = "" },
		"missing phone":   func(r *Request) { r.CustomerPhone = "" },
		"missing date":    func(r *Request) { r.Date = time.Time{} },
		"missing time":    func(r *Request) { r.Time = "" },
		"malformed time":  func(r *Request) { r.Time = "25:99" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_OffGridSlotAccepted(t *testing.T) {
	// Метка вне сетки :00/:30 допустима: сетка - свойство чтения
	uc := newTestUseCase(newFakeBookingRepo(), nil)

	req := validRequest()
	req.Time = "10:45"
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "10:45", resp.Time.String())
}
