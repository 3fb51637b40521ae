package models

import "time"

// DepositAsset is a crypto currency accepted for (simulated) deposits.
// Rates are static fixtures; no live exchange feed exists.
type DepositAsset struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	RateEUR    float64 `json:"rate_eur"`
	MinDeposit float64 `json:"min_deposit"`
}

// WithdrawAsset is a crypto currency offered for (simulated) withdrawals.
type WithdrawAsset struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	RateEUR        float64 `json:"rate_eur"`
	MinWithdrawEUR float64 `json:"min_withdraw_eur"`
	NetworkFeeEUR  float64 `json:"network_fee_eur"`
	Network        string  `json:"network"`
	ProcessingTime string  `json:"processing_time"`
}

var DepositAssets = []DepositAsset{
	{Symbol: "BTC", Name: "Bitcoin", RateEUR: 42000, MinDeposit: 0.001},
	{Symbol: "ETH", Name: "Ethereum", RateEUR: 2500, MinDeposit: 0.01},
	{Symbol: "USDC", Name: "USD Coin", RateEUR: 0.92, MinDeposit: 10},
	{Symbol: "USDT", Name: "Tether", RateEUR: 0.92, MinDeposit: 10},
	{Symbol: "MATIC", Name: "Polygon", RateEUR: 0.85, MinDeposit: 1},
	{Symbol: "BNB", Name: "Binance Coin", RateEUR: 320, MinDeposit: 0.1},
}

var WithdrawAssets = []WithdrawAsset{
	{Symbol: "BTC", Name: "Bitcoin", RateEUR: 42000, MinWithdrawEUR: 25, NetworkFeeEUR: 5.00, Network: "Bitcoin", ProcessingTime: "10-60 minutes"},
	{Symbol: "ETH", Name: "Ethereum", RateEUR: 2500, MinWithdrawEUR: 25, NetworkFeeEUR: 8.00, Network: "Ethereum", ProcessingTime: "5-30 minutes"},
	{Symbol: "USDC", Name: "USD Coin", RateEUR: 0.92, MinWithdrawEUR: 25, NetworkFeeEUR: 3.00, Network: "Ethereum", ProcessingTime: "5-30 minutes"},
	{Symbol: "USDT", Name: "Tether", RateEUR: 0.92, MinWithdrawEUR: 25, NetworkFeeEUR: 2.50, Network: "Tron", ProcessingTime: "1-10 minutes"},
	{Symbol: "BNB", Name: "Binance Coin", RateEUR: 320, MinWithdrawEUR: 25, NetworkFeeEUR: 1.00, Network: "BSC", ProcessingTime: "1-10 minutes"},
}

// PlatformFeeRate is charged on top of the per-asset network fee.
const PlatformFeeRate = 0.015

func DepositAssetBySymbol(symbol string) (DepositAsset, bool) {
	for _, a := range DepositAssets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return DepositAsset{}, false
}

func WithdrawAssetBySymbol(symbol string) (WithdrawAsset, bool) {
	for _, a := range WithdrawAssets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return WithdrawAsset{}, false
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusConfirmed  PaymentStatus = "confirmed"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSent       PaymentStatus = "sent"
)

type PaymentType string

const (
	PaymentTypeDeposit  PaymentType = "deposit"
	PaymentTypeWithdraw PaymentType = "withdraw"
)

// Payment records a simulated deposit or withdrawal. Deposits start pending
// and are confirmed by a timer standing in for blockchain confirmation;
// withdrawals start processing and are marked sent the same way.
type Payment struct {
	ID     string        `json:"id" redis:"id"`
	Email  string        `json:"email" redis:"email"`
	Type   PaymentType   `json:"type" redis:"type"`
	Status PaymentStatus `json:"status" redis:"status"`

	AssetSymbol  string  `json:"asset_symbol" redis:"asset_symbol"`
	CryptoAmount float64 `json:"crypto_amount" redis:"crypto_amount"`
	AmountEUR    float64 `json:"amount_eur" redis:"amount_eur"`
	FeeEUR       float64 `json:"fee_eur,omitempty" redis:"fee_eur"`

	// Address is the demo deposit address or the user-supplied payout target.
	Address string `json:"address" redis:"address"`

	CreatedAt   time.Time `json:"created_at" redis:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitzero" redis:"completed_at"`
}
