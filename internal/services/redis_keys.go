package services

import "time"

const (
	KeyAccount      = "account:%s" // lower-cased email
	KeySession      = "session:%s"
	KeyPayment      = "payment:%s"
	KeyUserPayments = "user:%s:payments"
	KeyRateLimit    = "ratelimit:%s:%s"

	TTLSession = 24 * time.Hour
	TTLPayment = 30 * 24 * time.Hour // 30 days

	DefaultRateLimitAdjust   = 60 // balance adjustments per minute
	DefaultRateLimitDeposit  = 10 // deposit requests per minute
	DefaultRateLimitWithdraw = 10 // withdrawal requests per minute
)
