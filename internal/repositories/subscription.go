package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
)

// SubscriptionRepository stores the (user, fund) subscription relation in Redis.
// The relation is pure existence state: a key exists if and only if the user
// is currently subscribed to the fund. The value holds the subscription instant.
type SubscriptionRepository struct {
	client *redis.Client
}

func NewSubscriptionRepository(client *redis.Client) *SubscriptionRepository {
	return &SubscriptionRepository{client: client}
}

// subscriptionKey derives the composite key deterministically from the pair.
func subscriptionKey(userID, fundID string) string {
	return fmt.Sprintf("subscription:%s:%s", userID, fundID)
}

// Exists reports whether the user is currently subscribed to the fund.
func (r *SubscriptionRepository) Exists(ctx context.Context, userID, fundID string) (bool, error) {
	key := subscriptionKey(userID, fundID)

	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create records the subscription relation with the current UTC instant.
func (r *SubscriptionRepository) Create(ctx context.Context, userID, fundID string) error {
	key := subscriptionKey(userID, fundID)
	subscribedAt := time.Now().UTC().Format(time.RFC3339)

	err := r.client.Set(ctx, key, subscribedAt, 0).Err()

	logger.Log.Infow(
		"key", key,
		"subscribed_at", subscribedAt,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete removes the subscription relation.
func (r *SubscriptionRepository) Delete(ctx context.Context, userID, fundID string) error {
	key := subscriptionKey(userID, fundID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
