package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"casino-sim-backend/internal/config"
	"casino-sim-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists accounts, sessions and payments as JSON blobs.
// No schema versioning exists; a blob that fails to decode is reported
// as absent so the caller falls back to the anonymous state.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisStore{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *RedisStore) SaveAccount(account *models.Account) error {
	key := fmt.Sprintf(KeyAccount, models.NormalizeEmail(account.Email))

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %v", err)
	}

	return s.client.Set(s.ctx, key, data, 0).Err()
}

func (s *RedisStore) GetAccount(email string) (*models.Account, bool, error) {
	key := fmt.Sprintf(KeyAccount, models.NormalizeEmail(email))

	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get account: %v", err)
	}

	var account models.Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		// Malformed record, treat as absent.
		return nil, false, nil
	}

	return &account, true, nil
}

func (s *RedisStore) SaveSession(session *models.Session) error {
	key := fmt.Sprintf(KeySession, session.SessionID)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %v", err)
	}

	return s.client.Set(s.ctx, key, data, TTLSession).Err()
}

func (s *RedisStore) GetSession(sessionID string) (*models.Session, bool, error) {
	key := fmt.Sprintf(KeySession, sessionID)

	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session: %v", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, false, nil
	}

	session.LastAccessed = time.Now()
	if updated, err := json.Marshal(session); err == nil {
		s.client.Set(s.ctx, key, updated, TTLSession)
	}

	return &session, true, nil
}

func (s *RedisStore) DeleteSession(sessionID string) error {
	key := fmt.Sprintf(KeySession, sessionID)
	return s.client.Del(s.ctx, key).Err()
}

func (s *RedisStore) SavePayment(payment *models.Payment) error {
	key := fmt.Sprintf(KeyPayment, payment.ID)

	data, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to marshal payment: %v", err)
	}

	if err := s.client.Set(s.ctx, key, data, TTLPayment).Err(); err != nil {
		return fmt.Errorf("failed to save payment: %v", err)
	}

	historyKey := fmt.Sprintf(KeyUserPayments, models.NormalizeEmail(payment.Email))
	if err := s.client.ZAdd(s.ctx, historyKey, redis.Z{
		Score:  float64(payment.CreatedAt.Unix()),
		Member: payment.ID,
	}).Err(); err != nil {
		return fmt.Errorf("failed to add to payment history: %v", err)
	}

	// Keep only the last 100 payments per user
	s.client.ZRemRangeByRank(s.ctx, historyKey, 0, -101)
	s.client.Expire(s.ctx, historyKey, TTLPayment)

	return nil
}

func (s *RedisStore) GetPayment(id string) (*models.Payment, bool, error) {
	key := fmt.Sprintf(KeyPayment, id)

	data, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get payment: %v", err)
	}

	var payment models.Payment
	if err := json.Unmarshal([]byte(data), &payment); err != nil {
		return nil, false, nil
	}

	return &payment, true, nil
}

func (s *RedisStore) ListPayments(email string, limit int64) ([]*models.Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	historyKey := fmt.Sprintf(KeyUserPayments, models.NormalizeEmail(email))

	ids, err := s.client.ZRevRange(s.ctx, historyKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment history: %v", err)
	}

	var payments []*models.Payment
	for _, id := range ids {
		payment, ok, err := s.GetPayment(id)
		if err != nil || !ok {
			continue
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

func (s *RedisStore) CheckRateLimit(email, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, models.NormalizeEmail(email), action)

	count, err := s.client.Incr(s.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %v", err)
	}

	if count == 1 {
		s.client.Expire(s.ctx, key, window)
	}

	return count <= int64(limit), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Cleanup helpers used by tests.

func (s *RedisStore) DeleteAccount(email string) error {
	key := fmt.Sprintf(KeyAccount, models.NormalizeEmail(email))
	return s.client.Del(s.ctx, key).Err()
}

func (s *RedisStore) ClearRateLimit(email, action string) error {
	key := fmt.Sprintf(KeyRateLimit, models.NormalizeEmail(email), action)
	return s.client.Del(s.ctx, key).Err()
}
