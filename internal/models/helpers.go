package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateAccountID() string {
	return uuid.New().String()
}

func GeneratePaymentID(t PaymentType) string {
	return fmt.Sprintf("%s_%s_%d",
		t,
		time.Now().Format("20060102"),
		uuid.New().ID())
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func FormatEUR(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}

// NormalizeEmail folds the account key. Email matching is case-insensitive
// everywhere; this is the only credential normalization performed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
