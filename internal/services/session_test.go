package services_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"casino-sim-backend/internal/models"
	"casino-sim-backend/internal/services"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func registerRequest(email string) *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:       email,
		Password:    "sup3r-Secret!",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		AcceptTerms: true,
	}
}

func TestRegisterGrantsSignupBonus(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	user, session, err := manager.Register(ctx, registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if user.BalanceEUR != 100 {
		t.Errorf("Expected signup balance 100, got %f", user.BalanceEUR)
	}
	if user.TotalWageredEUR != 0 || user.TotalWonEUR != 0 {
		t.Errorf("Expected zero totals, got wagered=%f won=%f", user.TotalWageredEUR, user.TotalWonEUR)
	}
	if user.VIPLevel.Level != 0 || user.VIPLevel.Name != "Bronze" {
		t.Errorf("Expected Bronze level for new account, got %+v", user.VIPLevel)
	}
	if user.KYCStatus != models.KYCStatusNone {
		t.Errorf("Expected KYC NONE, got %s", user.KYCStatus)
	}
	if !user.EmailVerified {
		t.Error("Session user should report the email as verified")
	}
	if session.SessionID == "" {
		t.Error("Session should have an ID")
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	if _, _, err := manager.Register(ctx, registerRequest("Ada@Example.com")); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	_, _, err := manager.Register(ctx, registerRequest("ADA@EXAMPLE.COM"))
	if err != services.ErrDuplicateAccount {
		t.Errorf("Expected ErrDuplicateAccount, got %v", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	if _, _, err := manager.Register(ctx, registerRequest("ada@example.com")); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if _, _, err := manager.Login(ctx, "ada@example.com", "wrong-password"); err != services.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	if _, _, err := manager.Login(ctx, "nobody@example.com", "sup3r-Secret!"); err != services.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	_, session, err := manager.Register(ctx, registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if _, _, err := manager.Login(ctx, "ada@example.com", "wrong-password"); err == nil {
		t.Fatal("Login with wrong password should fail")
	}

	if _, err := manager.CurrentUser(ctx, session.SessionID); err != nil {
		t.Errorf("Prior session should survive a failed login, got %v", err)
	}
}

func TestApplyBalanceDeltaAddCountsAsWin(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	_, session, err := manager.Register(ctx, registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	user, err := manager.ApplyBalanceDelta(ctx, session.SessionID, 50, models.BalanceAdd)
	if err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}

	if user.BalanceEUR != 150 {
		t.Errorf("Expected balance 150, got %f", user.BalanceEUR)
	}
	if user.TotalWonEUR != 50 {
		t.Errorf("ADD must count as winnings: expected 50, got %f", user.TotalWonEUR)
	}
	if user.TotalWageredEUR != 0 {
		t.Errorf("ADD must not touch the wagered total, got %f", user.TotalWageredEUR)
	}
}

func TestApplyBalanceDeltaSubtractClampsAtZero(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	_, session, err := manager.Register(ctx, registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	// Subtract more than the balance: the balance clamps at zero but the
	// FULL requested amount still counts as wagered.
	user, err := manager.ApplyBalanceDelta(ctx, session.SessionID, 250, models.BalanceSubtract)
	if err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}

	if user.BalanceEUR != 0 {
		t.Errorf("Expected balance clamped at 0, got %f", user.BalanceEUR)
	}
	if user.TotalWageredEUR != 250 {
		t.Errorf("Expected full 250 wagered despite clamp, got %f", user.TotalWageredEUR)
	}
}

func TestApplyBalanceDeltaWithoutSession(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())

	_, err := manager.ApplyBalanceDelta(context.Background(), "no-such-session", 10, models.BalanceAdd)
	if err != services.ErrNoActiveSession {
		t.Errorf("Expected ErrNoActiveSession, got %v", err)
	}
}

func TestVIPLevelPromotionOnWagerThresholds(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	_, session, err := manager.Register(ctx, registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	user, err := manager.ApplyBalanceDelta(ctx, session.SessionID, 1000, models.BalanceSubtract)
	if err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}
	if user.VIPLevel.Name != "Silver" {
		t.Errorf("Expected Silver at 1000 wagered, got %s", user.VIPLevel.Name)
	}

	user, err = manager.ApplyBalanceDelta(ctx, session.SessionID, 9000, models.BalanceSubtract)
	if err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}
	if user.VIPLevel.Name != "Gold" {
		t.Errorf("Expected Gold at 10000 wagered, got %s", user.VIPLevel.Name)
	}

	// Wagered totals never shrink, so the level cannot regress.
	user, err = manager.ApplyBalanceDelta(ctx, session.SessionID, 500, models.BalanceAdd)
	if err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}
	if user.VIPLevel.Name != "Gold" {
		t.Errorf("Level must not regress, got %s", user.VIPLevel.Name)
	}
}

func TestLogoutThenLoginRestoresState(t *testing.T) {
	manager := services.NewSessionManager(services.NewMemoryStore(), testLogger())
	ctx := context.Background()

	_, session, err := manager.Register(ctx, registerRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if _, err := manager.ApplyBalanceDelta(ctx, session.SessionID, 40, models.BalanceSubtract); err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}
	before, err := manager.ApplyBalanceDelta(ctx, session.SessionID, 25, models.BalanceAdd)
	if err != nil {
		t.Fatalf("Failed to apply delta: %v", err)
	}

	if err := manager.Logout(ctx, session.SessionID); err != nil {
		t.Fatalf("Failed to logout: %v", err)
	}

	if _, err := manager.CurrentUser(ctx, session.SessionID); err != services.ErrNoActiveSession {
		t.Errorf("Expected ErrNoActiveSession after logout, got %v", err)
	}

	after, _, err := manager.Login(ctx, "ada@example.com", "sup3r-Secret!")
	if err != nil {
		t.Fatalf("Failed to log back in: %v", err)
	}

	if after.BalanceEUR != before.BalanceEUR {
		t.Errorf("Balance mismatch after relogin: expected %f, got %f", before.BalanceEUR, after.BalanceEUR)
	}
	if after.TotalWageredEUR != before.TotalWageredEUR {
		t.Errorf("Wagered mismatch after relogin: expected %f, got %f", before.TotalWageredEUR, after.TotalWageredEUR)
	}
	if after.TotalWonEUR != before.TotalWonEUR {
		t.Errorf("Won mismatch after relogin: expected %f, got %f", before.TotalWonEUR, after.TotalWonEUR)
	}
	if after.VIPLevel != before.VIPLevel {
		t.Errorf("VIP level mismatch after relogin: expected %+v, got %+v", before.VIPLevel, after.VIPLevel)
	}
}
