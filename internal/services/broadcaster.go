package services

import "casino-sim-backend/internal/models"

type Broadcaster interface {
	BroadcastBalanceUpdate(user *models.SessionUser)
	BroadcastDepositConfirmed(payment *models.Payment)
	BroadcastWithdrawalSent(payment *models.Payment)
}

// NopBroadcaster is used when no websocket hub is attached, e.g. in tests.
type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastBalanceUpdate(*models.SessionUser) {}
func (NopBroadcaster) BroadcastDepositConfirmed(*models.Payment)  {}
func (NopBroadcaster) BroadcastWithdrawalSent(*models.Payment)    {}
