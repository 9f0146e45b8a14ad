package booking

import (
	"context"

	"drivio/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RedisMutationGuard serializes edit/cancel attempts per booking id with
// a SETNX lock. The TTL frees a booking whose request died mid-flight.
type RedisMutationGuard struct {
	Client *redis.Client
}

func NewRedisMutationGuard(client *redis.Client) *RedisMutationGuard {
	return &RedisMutationGuard{Client: client}
}

// releaseScript deletes the lock only when it is still ours, so a
// request that outlived its TTL cannot free someone else's lock.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (g *RedisMutationGuard) Acquire(ctx context.Context, bookingID string) (func(), error) {
	key := utils.BookingLockPrefix + bookingID
	token := uuid.New().String()

	ok, err := g.Client.SetNX(ctx, key, token, utils.BookingLockTTL).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewConflictError("another change to this booking is already in progress")
	}

	release := func() {
		if err := releaseScript.Run(context.Background(), g.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			zap.L().Warn("failed to release booking lock", zap.String("booking_id", bookingID), zap.Error(err))
		}
	}
	return release, nil
}
