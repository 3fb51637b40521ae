package models_test

import (
	"testing"

	"casino-sim-backend/internal/models"
)

func TestVIPLevelFor(t *testing.T) {
	cases := []struct {
		wagered float64
		want    string
	}{
		{0, "Bronze"},
		{999.99, "Bronze"},
		{1000, "Silver"},
		{9999, "Silver"},
		{10000, "Gold"},
		{50000, "Platinum"},
		{250000, "Diamond"},
		{1e9, "Diamond"},
	}

	for _, c := range cases {
		if got := models.VIPLevelFor(c.wagered); got.Name != c.want {
			t.Errorf("VIPLevelFor(%f) = %s, want %s", c.wagered, got.Name, c.want)
		}
	}
}

func TestVIPLevelsOrdering(t *testing.T) {
	if models.VIPLevels[0].MinWagerEUR != 0 {
		t.Error("Lowest level must have a zero threshold")
	}
	for i := 1; i < len(models.VIPLevels); i++ {
		if models.VIPLevels[i].MinWagerEUR <= models.VIPLevels[i-1].MinWagerEUR {
			t.Errorf("Thresholds must be strictly increasing at index %d", i)
		}
		if models.VIPLevels[i].Level != i {
			t.Errorf("Level index mismatch at %d", i)
		}
	}
}

func TestSessionViewDerivation(t *testing.T) {
	account := &models.Account{
		ID:              "abc",
		Email:           "ada@example.com",
		PasswordHash:    "secret-hash",
		TotalWageredEUR: 12000,
		BalanceEUR:      55,
		KYCStatus:       models.KYCStatusNone,
	}

	user := account.SessionView()
	if user.VIPLevel.Name != "Gold" {
		t.Errorf("Expected derived Gold level, got %s", user.VIPLevel.Name)
	}
	if !user.EmailVerified {
		t.Error("Derived user should report the email as verified")
	}
	if user.BalanceEUR != 55 {
		t.Errorf("Balance should carry over, got %f", user.BalanceEUR)
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	req := &models.RegisterRequest{
		Email:       "ada@example.com",
		Password:    "longenough1!",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		AcceptTerms: true,
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Valid request should pass, got %v", errs)
	}

	bad := &models.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	}
	errs := bad.Validate()
	for _, field := range []string{"email", "password", "first_name", "last_name", "accept_terms"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Expected validation error for %s", field)
		}
	}
}

func TestWithdrawRequestValidate(t *testing.T) {
	ok := &models.WithdrawRequest{AssetSymbol: "BTC", AmountEUR: 25, Address: "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Valid withdrawal should pass: %v", err)
	}

	if err := (&models.WithdrawRequest{AssetSymbol: "BTC", AmountEUR: 24.99, Address: "x"}).Validate(); err == nil {
		t.Error("Below-minimum withdrawal should fail")
	}
	if err := (&models.WithdrawRequest{AssetSymbol: "MATIC", AmountEUR: 50, Address: "x"}).Validate(); err == nil {
		t.Error("MATIC is deposit-only and should fail withdrawal validation")
	}
	if err := (&models.WithdrawRequest{AssetSymbol: "BTC", AmountEUR: 50, Address: "  "}).Validate(); err == nil {
		t.Error("Blank address should fail")
	}
}

func TestDepositRequestValidate(t *testing.T) {
	if err := (&models.DepositRequest{AssetSymbol: "ETH", CryptoAmount: 0.01}).Validate(); err != nil {
		t.Errorf("Valid deposit should pass: %v", err)
	}
	if err := (&models.DepositRequest{AssetSymbol: "ETH", CryptoAmount: 0.001}).Validate(); err == nil {
		t.Error("Below-minimum deposit should fail")
	}
	if err := (&models.DepositRequest{AssetSymbol: "XRP", CryptoAmount: 100}).Validate(); err == nil {
		t.Error("Unsupported asset should fail")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := models.NormalizeEmail("  Ada@Example.COM "); got != "ada@example.com" {
		t.Errorf("NormalizeEmail mismatch: %s", got)
	}
}

func TestFormatEUR(t *testing.T) {
	if got := models.FormatEUR(1234.5); got != "€1234.50" {
		t.Errorf("FormatEUR mismatch: %s", got)
	}
}
