package services

import (
	"sort"
	"sync"
	"time"

	"casino-sim-backend/internal/models"
)

// MemoryStore is a map-backed Store used by tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	sessions map[string]*models.Session
	payments map[string]*models.Payment
	history  map[string][]string
	counters map[string]*rateCounter
}

type rateCounter struct {
	count   int
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*models.Account),
		sessions: make(map[string]*models.Session),
		payments: make(map[string]*models.Payment),
		history:  make(map[string][]string),
		counters: make(map[string]*rateCounter),
	}
}

func (s *MemoryStore) SaveAccount(account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *account
	s.accounts[models.NormalizeEmail(account.Email)] = &copied
	return nil
}

func (s *MemoryStore) GetAccount(email string) (*models.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[models.NormalizeEmail(email)]
	if !ok {
		return nil, false, nil
	}
	copied := *account
	return &copied, true, nil
}

func (s *MemoryStore) SaveSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.SessionID] = &copied
	return nil
}

func (s *MemoryStore) GetSession(sessionID string) (*models.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false, nil
	}
	session.LastAccessed = time.Now()
	copied := *session
	return &copied, true, nil
}

func (s *MemoryStore) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) SavePayment(payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := models.NormalizeEmail(payment.Email)
	if _, seen := s.payments[payment.ID]; !seen {
		s.history[email] = append(s.history[email], payment.ID)
	}
	copied := *payment
	s.payments[payment.ID] = &copied
	return nil
}

func (s *MemoryStore) GetPayment(id string) (*models.Payment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, false, nil
	}
	copied := *payment
	return &copied, true, nil
}

func (s *MemoryStore) ListPayments(email string, limit int64) ([]*models.Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.history[models.NormalizeEmail(email)]
	var payments []*models.Payment
	for _, id := range ids {
		if payment, ok := s.payments[id]; ok {
			copied := *payment
			payments = append(payments, &copied)
		}
	}

	// Newest first, matching the Redis ZREVRANGE ordering.
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})

	if int64(len(payments)) > limit {
		payments = payments[:limit]
	}

	return payments, nil
}

func (s *MemoryStore) CheckRateLimit(email, action string, limit int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.NormalizeEmail(email) + ":" + action
	now := time.Now()

	counter, ok := s.counters[key]
	if !ok || now.After(counter.resetAt) {
		s.counters[key] = &rateCounter{count: 1, resetAt: now.Add(window)}
		return true, nil
	}

	counter.count++
	return counter.count <= limit, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
