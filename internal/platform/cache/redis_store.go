package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
)

const (
	scanBatchSize   = 200
	deleteBatchSize = 500
)

type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// RedisStore is the shared cache used by every API replica.
type RedisStore struct {
	client *redis.Client
	logger *logging.Logger
}

func NewRedisStore(cfg RedisConfig, logger *logging.Logger) *RedisStore {
	return NewRedisStoreFromClient(redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}), logger)
}

func NewRedisStoreFromClient(client *redis.Client, logger *logging.Logger) *RedisStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if key == "" {
		return false
	}
	if ttl < 0 {
		ttl = 0
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "cache set failed", "key", key, "ttl", ttl, "error", err)
		return false
	}
	return true
}

func (s *RedisStore) Delete(ctx context.Context, key string) bool {
	if key == "" {
		return false
	}

	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		s.logger.WarnContext(ctx, "cache delete failed", "key", key, "error", err)
		return false
	}
	return removed > 0
}

// DeleteByPattern walks the keyspace with SCAN so a large database is never
// blocked the way KEYS would block it.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) int {
	if pattern == "" {
		return 0
	}

	var (
		cursor  uint64
		removed int
		pending = make([]string, 0, deleteBatchSize)
	)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		n, err := s.client.Del(ctx, pending...).Result()
		if err != nil {
			return err
		}
		removed += int(n)
		pending = pending[:0]
		return nil
	}

	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			s.logger.WarnContext(ctx, "cache scan failed", "pattern", pattern, "error", err)
			return removed
		}

		pending = append(pending, keys...)
		if len(pending) >= deleteBatchSize {
			if err := flush(); err != nil {
				s.logger.WarnContext(ctx, "cache delete by pattern failed", "pattern", pattern, "error", err)
				return removed
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	if err := flush(); err != nil {
		s.logger.WarnContext(ctx, "cache delete by pattern failed", "pattern", pattern, "error", err)
	}
	return removed
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
