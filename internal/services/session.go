package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casino-sim-backend/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SignupBonusEUR is credited to every new account.
const SignupBonusEUR = 100

var (
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoActiveSession    = errors.New("no active session")
)

// SessionManager owns the account lifecycle: registration, authentication,
// logout and balance mutation. The Account record is the single source of
// truth; session users are derived views and the VIP level is recomputed
// from the wagered total on every read, never persisted.
type SessionManager struct {
	store Store
	log   *logrus.Logger
}

func NewSessionManager(store Store, log *logrus.Logger) *SessionManager {
	return &SessionManager{
		store: store,
		log:   log,
	}
}

func (m *SessionManager) Register(ctx context.Context, req *models.RegisterRequest) (*models.SessionUser, *models.Session, error) {
	email := models.NormalizeEmail(req.Email)

	if _, exists, err := m.store.GetAccount(email); err != nil {
		return nil, nil, fmt.Errorf("failed to check existing account: %v", err)
	} else if exists {
		return nil, nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %v", err)
	}

	account := &models.Account{
		ID:           models.GenerateAccountID(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BalanceEUR:   SignupBonusEUR,
		KYCStatus:    models.KYCStatusNone,
		CreatedAt:    time.Now(),
	}

	if err := m.store.SaveAccount(account); err != nil {
		return nil, nil, fmt.Errorf("failed to save account: %v", err)
	}

	session, err := m.createSession(email)
	if err != nil {
		return nil, nil, err
	}

	m.log.WithField("email", email).Info("account registered")

	return account.SessionView(), session, nil
}

func (m *SessionManager) Login(ctx context.Context, email, password string) (*models.SessionUser, *models.Session, error) {
	account, exists, err := m.store.GetAccount(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up account: %v", err)
	}
	if !exists {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := m.createSession(account.Email)
	if err != nil {
		return nil, nil, err
	}

	m.log.WithField("email", account.Email).Info("login")

	return account.SessionView(), session, nil
}

func (m *SessionManager) Logout(ctx context.Context, sessionID string) error {
	return m.store.DeleteSession(sessionID)
}

// CurrentUser rehydrates the session user from the authoritative account
// record. Returns ErrNoActiveSession when the session or its account is gone.
func (m *SessionManager) CurrentUser(ctx context.Context, sessionID string) (*models.SessionUser, error) {
	account, err := m.sessionAccount(sessionID)
	if err != nil {
		return nil, err
	}
	return account.SessionView(), nil
}

// ApplyBalanceDelta mutates the balance of the session's account.
//
// ADD credits the balance and counts the full amount as winnings; deposits
// and game wins share this path. SUBTRACT clamps the balance at zero but
// still counts the full requested amount as wagered, even when the clamp
// absorbed part of it. Both rules are the product's observed accounting.
func (m *SessionManager) ApplyBalanceDelta(ctx context.Context, sessionID string, amountEUR float64, direction models.BalanceDirection) (*models.SessionUser, error) {
	account, err := m.sessionAccount(sessionID)
	if err != nil {
		return nil, err
	}

	switch direction {
	case models.BalanceAdd:
		account.BalanceEUR += amountEUR
		if amountEUR > 0 {
			account.TotalWonEUR += amountEUR
		}
	case models.BalanceSubtract:
		account.BalanceEUR -= amountEUR
		if account.BalanceEUR < 0 {
			account.BalanceEUR = 0
		}
		account.TotalWageredEUR += amountEUR
	default:
		return nil, fmt.Errorf("invalid balance direction: %s", direction)
	}

	if err := m.store.SaveAccount(account); err != nil {
		return nil, fmt.Errorf("failed to save account: %v", err)
	}

	return account.SessionView(), nil
}

func (m *SessionManager) createSession(email string) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		SessionID:    models.GenerateSessionID(),
		Email:        email,
		CreatedAt:    now,
		LastAccessed: now,
	}

	if err := m.store.SaveSession(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %v", err)
	}

	return session, nil
}

func (m *SessionManager) sessionAccount(sessionID string) (*models.Account, error) {
	session, ok, err := m.store.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}
	if !ok {
		return nil, ErrNoActiveSession
	}

	account, ok, err := m.store.GetAccount(session.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %v", err)
	}
	if !ok {
		return nil, ErrNoActiveSession
	}

	return account, nil
}
