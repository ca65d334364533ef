package cartid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix префикс ключей идентификаторов корзин
const DefaultKeyPrefix = "magento_cart_id:"

// pingTimeout таймаут проверки соединения при старте
const pingTimeout = 2 * time.Second

// RedisStore хранит идентификатор корзины посетителя в redis с TTL
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisClient создает клиент и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrStorage, addr, err)
	}
	return client, nil
}

// NewRedisStore создает хранилище; ttl <= 0 означает хранение без срока
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Load возвращает сохраненный идентификатор; пустая строка, если его нет
func (s *RedisStore) Load(ctx context.Context, visitorID string) (string, error) {
	cartID, err := s.client.Get(ctx, s.key(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: Load - get: %v", ErrStorage, err)
	}
	return cartID, nil
}

// Save сохраняет идентификатор корзины посетителя
func (s *RedisStore) Save(ctx context.Context, visitorID, cartID string) error {
	if err := s.client.Set(ctx, s.key(visitorID), cartID, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStorage, err)
	}
	return nil
}

// Clear удаляет идентификатор корзины посетителя
func (s *RedisStore) Clear(ctx context.Context, visitorID string) error {
	if err := s.client.Del(ctx, s.key(visitorID)).Err(); err != nil {
		return fmt.Errorf("%w: Clear - del: %v", ErrStorage, err)
	}
	return nil
}

func (s *RedisStore) key(visitorID string) string {
	return s.prefix + visitorID
}
