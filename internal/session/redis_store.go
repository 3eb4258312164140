package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// RedisStore menyimpan session di Redis dengan TTL, sehingga session tetap
// hidup melewati restart proses API.
type RedisStore struct {
	rdb   *redis.Client
	ttl   time.Duration
	newID func() string
	now   func() time.Time
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb:   rdb,
		ttl:   ttl,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (Session, error) {
	sess := Session{
		ID:        s.newID(),
		UserID:    userID,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return Session{}, err
	}

	if err := s.rdb.Set(ctx, redisKey(sess.ID), payload, s.ttl).Err(); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	val, err := s.rdb.Get(ctx, redisKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKey(id)).Err()
}
