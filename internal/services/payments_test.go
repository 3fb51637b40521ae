package services_test

import (
	"context"
	"math"
	"testing"

	"casino-sim-backend/internal/models"
	"casino-sim-backend/internal/services"
)

func setupPaymentEngine(t *testing.T) (*services.PaymentEngine, *services.SessionManager, string) {
	t.Helper()

	store := services.NewMemoryStore()
	manager := services.NewSessionManager(store, testLogger())

	// Zero delays run the confirmation timers synchronously.
	engine := services.NewPaymentEngine(store, manager, services.NopBroadcaster{}, testLogger(),
		"1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", 0, 0)

	_, session, err := manager.Register(context.Background(), registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	return engine, manager, session.SessionID
}

func TestDepositCreditsBalanceAfterConfirmation(t *testing.T) {
	engine, manager, sessionID := setupPaymentEngine(t)
	ctx := context.Background()

	payment, err := engine.Deposit(ctx, sessionID, &models.DepositRequest{
		AssetSymbol:  "ETH",
		CryptoAmount: 0.1,
	})
	if err != nil {
		t.Fatalf("Failed to deposit: %v", err)
	}

	if payment.AmountEUR != 250 {
		t.Errorf("Expected 0.1 ETH to quote 250 EUR, got %f", payment.AmountEUR)
	}
	if payment.Address == "" {
		t.Error("Deposit should carry the demo address")
	}

	confirmed, err := engine.GetPayment(ctx, sessionID, payment.ID)
	if err != nil {
		t.Fatalf("Failed to get payment: %v", err)
	}
	if confirmed.Status != models.PaymentStatusConfirmed {
		t.Errorf("Expected confirmed deposit, got %s", confirmed.Status)
	}

	user, err := manager.CurrentUser(ctx, sessionID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user.BalanceEUR != 350 {
		t.Errorf("Expected balance 350 after deposit, got %f", user.BalanceEUR)
	}
	// Deposits flow through the ADD path, which counts as winnings.
	if user.TotalWonEUR != 250 {
		t.Errorf("Expected won total 250 after deposit, got %f", user.TotalWonEUR)
	}
}

func TestDepositBelowMinimumRejected(t *testing.T) {
	engine, _, sessionID := setupPaymentEngine(t)

	_, err := engine.Deposit(context.Background(), sessionID, &models.DepositRequest{
		AssetSymbol:  "BTC",
		CryptoAmount: 0.0001,
	})
	if err == nil {
		t.Error("Deposit below the asset minimum should fail")
	}
}

func TestWithdrawDebitsBalanceAndCharges(t *testing.T) {
	engine, manager, sessionID := setupPaymentEngine(t)
	ctx := context.Background()

	payment, err := engine.Withdraw(ctx, sessionID, &models.WithdrawRequest{
		AssetSymbol: "USDT",
		AmountEUR:   50,
		Address:     "TX7hW3mpcXrDRiWvoVfDmUFhSVijkiPAbQ",
	})
	if err != nil {
		t.Fatalf("Failed to withdraw: %v", err)
	}

	// 2.50 network fee + 1.5% of 50.
	wantFee := 2.50 + 50*0.015
	if math.Abs(payment.FeeEUR-wantFee) > 1e-9 {
		t.Errorf("Expected fee %f, got %f", wantFee, payment.FeeEUR)
	}

	wantCrypto := (50 - wantFee) / 0.92
	if math.Abs(payment.CryptoAmount-wantCrypto) > 1e-9 {
		t.Errorf("Expected payout %f USDT, got %f", wantCrypto, payment.CryptoAmount)
	}

	sent, err := engine.GetPayment(ctx, sessionID, payment.ID)
	if err != nil {
		t.Fatalf("Failed to get payment: %v", err)
	}
	if sent.Status != models.PaymentStatusSent {
		t.Errorf("Expected sent withdrawal, got %s", sent.Status)
	}

	user, err := manager.CurrentUser(ctx, sessionID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user.BalanceEUR != 50 {
		t.Errorf("Expected balance 50 after withdrawing 50, got %f", user.BalanceEUR)
	}
	// The SUBTRACT path counts the withdrawal as wagered; observed
	// product accounting, kept as-is.
	if user.TotalWageredEUR != 50 {
		t.Errorf("Expected wagered total 50 after withdrawal, got %f", user.TotalWageredEUR)
	}
}

func TestWithdrawValidation(t *testing.T) {
	engine, _, sessionID := setupPaymentEngine(t)
	ctx := context.Background()

	if _, err := engine.Withdraw(ctx, sessionID, &models.WithdrawRequest{
		AssetSymbol: "BTC",
		AmountEUR:   10,
		Address:     "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
	}); err == nil {
		t.Error("Withdrawal below the 25 EUR minimum should fail")
	}

	if _, err := engine.Withdraw(ctx, sessionID, &models.WithdrawRequest{
		AssetSymbol: "BTC",
		AmountEUR:   500,
		Address:     "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
	}); err == nil {
		t.Error("Withdrawal above the balance should fail")
	}

	if _, err := engine.Withdraw(ctx, sessionID, &models.WithdrawRequest{
		AssetSymbol: "DOGE",
		AmountEUR:   50,
		Address:     "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L",
	}); err == nil {
		t.Error("Unsupported asset should fail")
	}
}

func TestPaymentHistoryAndScoping(t *testing.T) {
	engine, manager, sessionID := setupPaymentEngine(t)
	ctx := context.Background()

	deposit, err := engine.Deposit(ctx, sessionID, &models.DepositRequest{
		AssetSymbol:  "USDC",
		CryptoAmount: 100,
	})
	if err != nil {
		t.Fatalf("Failed to deposit: %v", err)
	}
	if _, err := engine.Withdraw(ctx, sessionID, &models.WithdrawRequest{
		AssetSymbol: "BNB",
		AmountEUR:   30,
		Address:     "bnb1grpf0955h0ykzq3ar5nmum7y6gdfl6lxfn46h2",
	}); err != nil {
		t.Fatalf("Failed to withdraw: %v", err)
	}

	payments, err := engine.History(ctx, sessionID, 10)
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(payments) != 2 {
		t.Errorf("Expected 2 payments in history, got %d", len(payments))
	}

	// Another user must not be able to read the first user's payment.
	_, other, err := manager.Register(ctx, registerRequest("eve@example.com"))
	if err != nil {
		t.Fatalf("Failed to register second user: %v", err)
	}
	if _, err := engine.GetPayment(ctx, other.SessionID, deposit.ID); err == nil {
		t.Error("Payments must be scoped to their owner")
	}
}

func TestDepositQR(t *testing.T) {
	engine, _, sessionID := setupPaymentEngine(t)

	payment, err := engine.Deposit(context.Background(), sessionID, &models.DepositRequest{
		AssetSymbol:  "BTC",
		CryptoAmount: 0.01,
	})
	if err != nil {
		t.Fatalf("Failed to deposit: %v", err)
	}

	png, err := engine.DepositQR(payment, 256)
	if err != nil {
		t.Fatalf("Failed to render QR: %v", err)
	}
	if len(png) == 0 {
		t.Error("QR PNG should not be empty")
	}
}
