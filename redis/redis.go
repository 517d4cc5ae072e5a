package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/salonhub/salon-booking-api/config"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: config.RedisAddr(),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// StoreBackend persists store snapshots as JSON blobs under fixed keys.
// It satisfies the store.Backend interface.
type StoreBackend struct{}

func (StoreBackend) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (StoreBackend) Save(ctx context.Context, key string, data []byte) error {
	return Client.Set(ctx, key, data, 0).Err()
}
