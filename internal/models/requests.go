package models

import (
	"fmt"
	"regexp"
	"strings"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	AcceptTerms bool   `json:"accept_terms"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type BalanceAdjustRequest struct {
	AmountEUR float64          `json:"amount_eur" binding:"required"`
	Direction BalanceDirection `json:"direction" binding:"required"`
}

type DepositRequest struct {
	AssetSymbol  string  `json:"asset_symbol" binding:"required"`
	CryptoAmount float64 `json:"crypto_amount" binding:"required"`
}

type WithdrawRequest struct {
	AssetSymbol string  `json:"asset_symbol" binding:"required"`
	AmountEUR   float64 `json:"amount_eur" binding:"required"`
	Address     string  `json:"address" binding:"required"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the form-level rules the UI enforces. The session layer
// itself only rejects duplicate emails.
func (r *RegisterRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if !emailPattern.MatchString(r.Email) {
		errs["email"] = "Invalid email address"
	}
	if len(r.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if !r.AcceptTerms {
		errs["accept_terms"] = "Terms and conditions must be accepted"
	}

	return errs
}

func (r *BalanceAdjustRequest) Validate() error {
	if r.AmountEUR <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	switch r.Direction {
	case BalanceAdd, BalanceSubtract:
	default:
		return fmt.Errorf("invalid direction: %s", r.Direction)
	}
	return nil
}

func (r *DepositRequest) Validate() error {
	asset, ok := DepositAssetBySymbol(r.AssetSymbol)
	if !ok {
		return fmt.Errorf("unsupported asset: %s", r.AssetSymbol)
	}
	if r.CryptoAmount < asset.MinDeposit {
		return fmt.Errorf("minimum deposit is %g %s", asset.MinDeposit, asset.Symbol)
	}
	return nil
}

func (r *WithdrawRequest) Validate() error {
	asset, ok := WithdrawAssetBySymbol(r.AssetSymbol)
	if !ok {
		return fmt.Errorf("unsupported asset: %s", r.AssetSymbol)
	}
	if r.AmountEUR < asset.MinWithdrawEUR {
		return fmt.Errorf("minimum withdrawal is %.2f EUR", asset.MinWithdrawEUR)
	}
	if strings.TrimSpace(r.Address) == "" {
		return fmt.Errorf("wallet address is required")
	}
	return nil
}
