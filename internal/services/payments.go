package services

import (
	"context"
	"fmt"
	"time"

	"casino-sim-backend/internal/models"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
)

// PaymentEngine runs the simulated crypto flows. Deposits sit pending until
// a timer standing in for blockchain confirmation fires and credits the
// balance; withdrawals debit immediately and are marked sent after a
// processing delay. No chain interaction takes place.
type PaymentEngine struct {
	store       Store
	sessions    *SessionManager
	broadcaster Broadcaster
	log         *logrus.Logger

	depositAddress string
	confirmDelay   time.Duration
	withdrawDelay  time.Duration
}

func NewPaymentEngine(store Store, sessions *SessionManager, broadcaster Broadcaster, log *logrus.Logger, depositAddress string, confirmDelay, withdrawDelay time.Duration) *PaymentEngine {
	return &PaymentEngine{
		store:          store,
		sessions:       sessions,
		broadcaster:    broadcaster,
		log:            log,
		depositAddress: depositAddress,
		confirmDelay:   confirmDelay,
		withdrawDelay:  withdrawDelay,
	}
}

// DepositQuote converts a crypto amount to EUR at the fixture rate.
func (e *PaymentEngine) DepositQuote(assetSymbol string, cryptoAmount float64) (float64, error) {
	asset, ok := models.DepositAssetBySymbol(assetSymbol)
	if !ok {
		return 0, fmt.Errorf("unsupported asset: %s", assetSymbol)
	}
	return cryptoAmount * asset.RateEUR, nil
}

// WithdrawQuote returns the total fee and the crypto amount the user would
// receive for an EUR withdrawal.
func (e *PaymentEngine) WithdrawQuote(assetSymbol string, amountEUR float64) (feeEUR, cryptoAmount float64, err error) {
	asset, ok := models.WithdrawAssetBySymbol(assetSymbol)
	if !ok {
		return 0, 0, fmt.Errorf("unsupported asset: %s", assetSymbol)
	}

	feeEUR = asset.NetworkFeeEUR + amountEUR*models.PlatformFeeRate
	netEUR := amountEUR - feeEUR
	if netEUR < 0 {
		netEUR = 0
	}
	return feeEUR, netEUR / asset.RateEUR, nil
}

func (e *PaymentEngine) Deposit(ctx context.Context, sessionID string, req *models.DepositRequest) (*models.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := e.sessions.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	allowed, err := e.store.CheckRateLimit(user.Email, "deposit", DefaultRateLimitDeposit, time.Minute)
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %v", err)
	}
	if !allowed {
		return nil, fmt.Errorf("deposit rate limit exceeded")
	}

	amountEUR, err := e.DepositQuote(req.AssetSymbol, req.CryptoAmount)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:           models.GeneratePaymentID(models.PaymentTypeDeposit),
		Email:        user.Email,
		Type:         models.PaymentTypeDeposit,
		Status:       models.PaymentStatusPending,
		AssetSymbol:  req.AssetSymbol,
		CryptoAmount: req.CryptoAmount,
		AmountEUR:    amountEUR,
		Address:      e.depositAddress,
		CreatedAt:    time.Now(),
	}

	if err := e.store.SavePayment(payment); err != nil {
		return nil, fmt.Errorf("failed to save deposit: %v", err)
	}

	e.log.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"asset":      payment.AssetSymbol,
		"amount_eur": payment.AmountEUR,
	}).Info("deposit pending confirmation")

	if e.confirmDelay <= 0 {
		e.confirmDeposit(sessionID, payment.ID)
	} else {
		time.AfterFunc(e.confirmDelay, func() {
			e.confirmDeposit(sessionID, payment.ID)
		})
	}

	return payment, nil
}

func (e *PaymentEngine) confirmDeposit(sessionID, paymentID string) {
	payment, ok, err := e.store.GetPayment(paymentID)
	if err != nil || !ok {
		e.log.WithField("payment_id", paymentID).Warn("deposit vanished before confirmation")
		return
	}
	if payment.Status != models.PaymentStatusPending {
		return
	}

	user, err := e.sessions.ApplyBalanceDelta(context.Background(), sessionID, payment.AmountEUR, models.BalanceAdd)
	if err != nil {
		// Session ended before the confirmation fired; balance mutation is a
		// no-op without an active session, so the deposit stays pending.
		e.log.WithFields(logrus.Fields{
			"payment_id": paymentID,
			"err":        err,
		}).Warn("deposit confirmation skipped")
		return
	}

	payment.Status = models.PaymentStatusConfirmed
	payment.CompletedAt = time.Now()
	if err := e.store.SavePayment(payment); err != nil {
		e.log.WithField("payment_id", paymentID).Errorf("failed to mark deposit confirmed: %v", err)
		return
	}

	e.log.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"amount_eur": payment.AmountEUR,
	}).Info("deposit confirmed")

	e.broadcaster.BroadcastDepositConfirmed(payment)
	e.broadcaster.BroadcastBalanceUpdate(user)
}

func (e *PaymentEngine) Withdraw(ctx context.Context, sessionID string, req *models.WithdrawRequest) (*models.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := e.sessions.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	allowed, err := e.store.CheckRateLimit(user.Email, "withdraw", DefaultRateLimitWithdraw, time.Minute)
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %v", err)
	}
	if !allowed {
		return nil, fmt.Errorf("withdrawal rate limit exceeded")
	}

	if req.AmountEUR > user.BalanceEUR {
		return nil, fmt.Errorf("insufficient balance: have %.2f, need %.2f",
			user.BalanceEUR, req.AmountEUR)
	}

	feeEUR, cryptoAmount, err := e.WithdrawQuote(req.AssetSymbol, req.AmountEUR)
	if err != nil {
		return nil, err
	}

	user, err = e.sessions.ApplyBalanceDelta(ctx, sessionID, req.AmountEUR, models.BalanceSubtract)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:           models.GeneratePaymentID(models.PaymentTypeWithdraw),
		Email:        user.Email,
		Type:         models.PaymentTypeWithdraw,
		Status:       models.PaymentStatusProcessing,
		AssetSymbol:  req.AssetSymbol,
		CryptoAmount: cryptoAmount,
		AmountEUR:    req.AmountEUR,
		FeeEUR:       feeEUR,
		Address:      req.Address,
		CreatedAt:    time.Now(),
	}

	if err := e.store.SavePayment(payment); err != nil {
		return nil, fmt.Errorf("failed to save withdrawal: %v", err)
	}

	e.log.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"asset":      payment.AssetSymbol,
		"amount_eur": payment.AmountEUR,
		"fee_eur":    payment.FeeEUR,
	}).Info("withdrawal processing")

	e.broadcaster.BroadcastBalanceUpdate(user)

	if e.withdrawDelay <= 0 {
		e.completeWithdrawal(payment.ID)
	} else {
		time.AfterFunc(e.withdrawDelay, func() {
			e.completeWithdrawal(payment.ID)
		})
	}

	return payment, nil
}

func (e *PaymentEngine) completeWithdrawal(paymentID string) {
	payment, ok, err := e.store.GetPayment(paymentID)
	if err != nil || !ok {
		e.log.WithField("payment_id", paymentID).Warn("withdrawal vanished before completion")
		return
	}
	if payment.Status != models.PaymentStatusProcessing {
		return
	}

	payment.Status = models.PaymentStatusSent
	payment.CompletedAt = time.Now()
	if err := e.store.SavePayment(payment); err != nil {
		e.log.WithField("payment_id", paymentID).Errorf("failed to mark withdrawal sent: %v", err)
		return
	}

	e.log.WithField("payment_id", payment.ID).Info("withdrawal sent")

	e.broadcaster.BroadcastWithdrawalSent(payment)
}

func (e *PaymentEngine) GetPayment(ctx context.Context, sessionID, paymentID string) (*models.Payment, error) {
	user, err := e.sessions.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payment, ok, err := e.store.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if !ok || payment.Email != user.Email {
		return nil, fmt.Errorf("payment not found: %s", paymentID)
	}

	return payment, nil
}

func (e *PaymentEngine) History(ctx context.Context, sessionID string, limit int64) ([]*models.Payment, error) {
	user, err := e.sessions.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return e.store.ListPayments(user.Email, limit)
}

// DepositQR renders the deposit address as a PNG QR code.
func (e *PaymentEngine) DepositQR(payment *models.Payment, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(payment.Address, qrcode.Medium, size)
}
