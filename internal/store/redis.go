package store

import (
	"context"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"commandeer/internal/command"
)

// RedisStore keeps templates in Redis, one string value per composite key.
type RedisStore struct {
	rdb *redis.Client
	log zerolog.Logger
}

var _ Store = (*RedisStore)(nil)

// OpenRedis connects to the Redis instance at addr and verifies the
// connection with a ping.
func OpenRedis(ctx context.Context, addr string, db int, log zerolog.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return &RedisStore{rdb: rdb, log: log}, nil
}

func (s *RedisStore) List(ctx context.Context, guildID string) ([]Entry, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, guildPrefix(guildID)+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	// SCAN order is unspecified; sort for the same stable enumeration order
	// as the file backend.
	sort.Strings(keys)

	if len(keys) > paginationSoftLimit {
		s.log.Warn().Str("guild", guildID).Int("count", len(keys)).Msg("approaching pagination limit")
	}

	entries := make([]Entry, 0, len(keys))
	for _, raw := range keys {
		key, err := command.ParseKey(raw)
		if err != nil {
			s.log.Warn().Str("key", raw).Msg("skipping malformed store key")
			continue
		}
		entries = append(entries, Entry{CommandID: key.CommandID, CommandName: key.CommandName})
	}
	return entries, nil
}

func (s *RedisStore) Get(ctx context.Context, key command.Key) (string, bool, error) {
	template, err := s.rdb.Get(ctx, key.String()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return template, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key command.Key, template string) error {
	return s.rdb.Set(ctx, key.String(), template, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key command.Key) error {
	return s.rdb.Del(ctx, key.String()).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
