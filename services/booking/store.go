package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"drivio/models"
	"drivio/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps payment sessions and booking snapshots in
// Redis with TTLs. Nothing stored here is durable; the rental service
// remains the source of truth.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (r *RedisSessionStore) SavePaymentSession(ctx context.Context, s PaymentSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal payment session: %w", err)
	}
	key := utils.PaymentSessionPrefix + s.SessionID
	if err := r.Client.Set(ctx, key, data, utils.PaymentSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store payment session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) GetPaymentSession(ctx context.Context, sessionID string) (*PaymentSession, error) {
	data, err := r.Client.Get(ctx, utils.PaymentSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("payment session not found or expired: %w", err)
	}
	var s PaymentSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse payment session: %w", err)
	}
	return &s, nil
}

func (r *RedisSessionStore) DeletePaymentSession(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, utils.PaymentSessionPrefix+sessionID).Err()
}

func (r *RedisSessionStore) SaveSnapshot(ctx context.Context, b *models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking snapshot: %w", err)
	}
	key := utils.BookingCachePrefix + b.ID
	return r.Client.Set(ctx, key, data, utils.BookingCacheTTL).Err()
}

func (r *RedisSessionStore) GetSnapshot(ctx context.Context, id string) (*models.Booking, error) {
	data, err := r.Client.Get(ctx, utils.BookingCachePrefix+id).Result()
	if err != nil {
		return nil, err
	}
	var b models.Booking
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		return nil, fmt.Errorf("failed to parse booking snapshot: %w", err)
	}
	return &b, nil
}

func (r *RedisSessionStore) InvalidateSnapshot(ctx context.Context, id string) error {
	return r.Client.Del(ctx, utils.BookingCachePrefix+id).Err()
}
