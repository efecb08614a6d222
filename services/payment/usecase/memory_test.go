package usecase

import (
	"context"
	"sync"

	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
)

// memoryStore mirrors the conditional updates of the SQL repositories so
// reconciliation can be exercised end to end and under concurrency
type memoryStore struct {
	mu               sync.Mutex
	txns             map[string]models.PaymentTransaction
	orders           map[string]models.Order
	txnWrites        int
	orderTransitions int
}

func newMemoryStore(orders ...models.Order) *memoryStore {
	s := &memoryStore{
		txns:   make(map[string]models.PaymentTransaction),
		orders: make(map[string]models.Order),
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *memoryStore) CreateTransaction(_ context.Context, txn *models.PaymentTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns[txn.SessionID] = *txn
	return nil
}

func (s *memoryStore) GetTransactionBySession(_ context.Context, sessionID string) (*models.PaymentTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.txns[sessionID]
	if !ok {
		return nil, apperror.NotFound("memory.GetTransactionBySession", apperror.ErrTransactionNotFound)
	}
	return &txn, nil
}

func (s *memoryStore) UpdateTransactionBySession(_ context.Context, update *models.TransactionUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(update), nil
}

func (s *memoryStore) SettleTransaction(_ context.Context, update *models.TransactionUpdate) (*models.SettleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &models.SettleResult{TransactionUpdated: s.updateLocked(update)}
	if result.TransactionUpdated && update.PaymentStatus == models.PaymentStatusPaid {
		order, ok := s.orders[update.OrderID]
		if ok && order.Status == models.OrderStatusPending {
			sessionID := update.SessionID
			order.Status = models.OrderStatusPaid
			order.PaymentSessionID = &sessionID
			s.orders[order.ID] = order
			s.orderTransitions++
			result.OrderMarkedPaid = true
		}
	}
	return result, nil
}

func (s *memoryStore) updateLocked(update *models.TransactionUpdate) bool {
	txn, ok := s.txns[update.SessionID]
	if !ok || txn.IsSettled() {
		return false
	}
	txn.PaymentStatus = update.PaymentStatus
	txn.Status = update.Status
	txn.UpdatedAt = update.UpdatedAt
	s.txns[update.SessionID] = txn
	s.txnWrites++
	return true
}

func (s *memoryStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, apperror.NotFound("memory.GetOrder", apperror.ErrOrderNotFound)
	}
	return &order, nil
}

func (s *memoryStore) order(id string) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memoryStore) txn(sessionID string) models.PaymentTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txns[sessionID]
}

// fakeCheckout is a provider whose reported status can be changed between
// calls. When barrier is set, GetSessionStatus blocks until every expected
// caller has arrived.
type fakeCheckout struct {
	mu      sync.Mutex
	created []*models.CheckoutSessionParams
	status  models.ProviderSessionStatus
	barrier *sync.WaitGroup
}

func (f *fakeCheckout) CreateSession(_ context.Context, params *models.CheckoutSessionParams) (*models.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, params)
	return &models.CheckoutSession{
		SessionID:   "cs_test_1",
		URL:         "https://checkout.stripe.com/c/pay/cs_test_1",
		AmountTotal: params.AmountMinor,
		Currency:    params.Currency,
	}, nil
}

func (f *fakeCheckout) GetSessionStatus(_ context.Context, sessionID string) (*models.ProviderSessionStatus, error) {
	if f.barrier != nil {
		f.barrier.Done()
		f.barrier.Wait()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	status := f.status
	status.SessionID = sessionID
	return &status, nil
}

func (f *fakeCheckout) VerifyAndParse(_ context.Context, _ []byte, _ string) (*models.WebhookEvent, error) {
	return &models.WebhookEvent{ID: "evt_1", Type: "checkout.session.completed", SessionID: "cs_test_1"}, nil
}

func (f *fakeCheckout) report(status models.ProviderSessionStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}
