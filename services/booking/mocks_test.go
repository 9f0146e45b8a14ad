package booking

import (
	"context"
	"errors"
	"sync"

	"drivio/gateway"
	"drivio/models"

	"github.com/stretchr/testify/mock"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateBooking(ctx context.Context, req gateway.CreateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) UpdateBooking(ctx context.Context, id string, patch gateway.UpdateBookingPatch) (*models.Booking, error) {
	args := m.Called(ctx, id, patch)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) CancelBooking(ctx context.Context, id, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *mockGateway) ListBookings(ctx context.Context, renterID string, page, pageSize int) ([]models.Booking, int, error) {
	args := m.Called(ctx, renterID, page, pageSize)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

// memStore is an in-memory SessionStore without TTL semantics.
type memStore struct {
	mu       sync.Mutex
	sessions map[string]PaymentSession
	snaps    map[string]*models.Booking
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[string]PaymentSession),
		snaps:    make(map[string]*models.Booking),
	}
}

func (s *memStore) SavePaymentSession(_ context.Context, ps PaymentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[ps.SessionID] = ps
	return nil
}

func (s *memStore) GetPaymentSession(_ context.Context, id string) (*PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.sessions[id]
	if !ok {
		return nil, errors.New("payment session not found or expired")
	}
	return &ps, nil
}

func (s *memStore) DeletePaymentSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *memStore) SaveSnapshot(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.snaps[b.ID] = &cp
	return nil
}

func (s *memStore) GetSnapshot(_ context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.snaps[id]
	if !ok {
		return nil, errors.New("snapshot miss")
	}
	cp := *b
	return &cp, nil
}

func (s *memStore) InvalidateSnapshot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, id)
	return nil
}

// memGuard serializes mutations in memory.
type memGuard struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemGuard() *memGuard {
	return &memGuard{held: make(map[string]bool)}
}

func (g *memGuard) Acquire(_ context.Context, bookingID string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[bookingID] {
		return nil, NewConflictError("another change to this booking is already in progress")
	}
	g.held[bookingID] = true
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.held, bookingID)
	}, nil
}

// fakePayments marks intents paid on demand.
type fakePayments struct {
	mu      sync.Mutex
	counter int
	paid    map[string]bool
}

func newFakePayments() *fakePayments {
	return &fakePayments{paid: make(map[string]bool)}
}

func (p *fakePayments) CreateIntent(_ context.Context, amount int64, _ string) (string, string, error) {
	if amount <= 0 {
		return "", "", errors.New("invalid holding fee amount")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.counter++
	id := "pi_test_" + string(rune('a'+p.counter-1))
	return id, "secret_" + id, nil
}

func (p *fakePayments) markPaid(intentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paid[intentID] = true
}

func (p *fakePayments) VerifyPaid(_ context.Context, intentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paid[intentID] {
		return errors.New("holding fee payment not completed")
	}
	return nil
}
