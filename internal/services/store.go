package services

import (
	"time"

	"casino-sim-backend/internal/models"
)

// Store is the durable persistence boundary: registered accounts keyed by
// lower-cased email, session records, and the payment history. Injected so
// the session and payment logic can be exercised without a real backend.
type Store interface {
	SaveAccount(account *models.Account) error
	// GetAccount returns ok=false when the key is absent or the stored
	// record is unreadable.
	GetAccount(email string) (*models.Account, bool, error)

	SaveSession(session *models.Session) error
	GetSession(sessionID string) (*models.Session, bool, error)
	DeleteSession(sessionID string) error

	SavePayment(payment *models.Payment) error
	GetPayment(id string) (*models.Payment, bool, error)
	ListPayments(email string, limit int64) ([]*models.Payment, error)

	CheckRateLimit(email, action string, limit int, window time.Duration) (bool, error)

	Close() error
}
