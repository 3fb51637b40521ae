package models

import "time"

type KYCStatus string

const (
	KYCStatusNone         KYCStatus = "NONE"
	KYCStatusBasic        KYCStatus = "BASIC"
	KYCStatusIntermediate KYCStatus = "INTERMEDIATE"
	KYCStatusAdvanced     KYCStatus = "ADVANCED"
)

type BalanceDirection string

const (
	BalanceAdd      BalanceDirection = "ADD"
	BalanceSubtract BalanceDirection = "SUBTRACT"
)

// Account is the durable registered-user record, keyed in the store by
// lower-cased email. It is the single authoritative copy of balance and
// wager/win totals; everything a client sees is derived from it.
type Account struct {
	ID           string `json:"id" redis:"id"`
	Email        string `json:"email" redis:"email"`
	PasswordHash string `json:"-" redis:"password_hash"`
	FirstName    string `json:"first_name" redis:"first_name"`
	LastName     string `json:"last_name" redis:"last_name"`

	BalanceEUR      float64 `json:"balance_eur" redis:"balance_eur"`
	TotalWageredEUR float64 `json:"total_wagered_eur" redis:"total_wagered_eur"`
	TotalWonEUR     float64 `json:"total_won_eur" redis:"total_won_eur"`

	KYCStatus KYCStatus `json:"kyc_status" redis:"kyc_status"`
	CreatedAt time.Time `json:"created_at" redis:"created_at"`
}

// SessionUser is the authenticated view of an Account: credential stripped,
// VIP level derived from the wagered total. It is recomputed on every read
// and never written back to the store.
type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	BalanceEUR      float64 `json:"balance_eur"`
	TotalWageredEUR float64 `json:"total_wagered_eur"`
	TotalWonEUR     float64 `json:"total_won_eur"`

	EmailVerified bool      `json:"email_verified"`
	KYCStatus     KYCStatus `json:"kyc_status"`
	VIPLevel      VIPLevel  `json:"vip_level"`
	CreatedAt     time.Time `json:"created_at"`
}

// Session is a capability referencing an Account. Stored with a TTL.
type Session struct {
	SessionID    string    `json:"session_id" redis:"session_id"`
	Email        string    `json:"email" redis:"email"`
	CreatedAt    time.Time `json:"created_at" redis:"created_at"`
	LastAccessed time.Time `json:"last_accessed" redis:"last_accessed"`
}

// SessionView derives the client-facing user from the account record.
// No verification flow exists, so the email is always reported verified.
func (a *Account) SessionView() *SessionUser {
	return &SessionUser{
		ID:              a.ID,
		Email:           a.Email,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		BalanceEUR:      a.BalanceEUR,
		TotalWageredEUR: a.TotalWageredEUR,
		TotalWonEUR:     a.TotalWonEUR,
		EmailVerified:   true,
		KYCStatus:       a.KYCStatus,
		VIPLevel:        VIPLevelFor(a.TotalWageredEUR),
		CreatedAt:       a.CreatedAt,
	}
}
