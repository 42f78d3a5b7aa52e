package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ロックを待ちきれなかった
var ErrBusy = errors.New("session busy")

const (
	keyPrefix     = "sess:"
	lockKeyPrefix = "sess:lock:"
)

// 自分のトークンのときだけ消す
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// セッションIDごとにJSONで保存する。
type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	lockTTL   time.Duration
	lockRetry time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		ttl:       ttl,
		lockTTL:   30 * time.Second,
		lockRetry: 25 * time.Millisecond,
	}
}

// 無ければ空のセッション
func (s *RedisStore) Load(ctx context.Context, sid string) (model.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, nil
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("redis get failed: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return model.Session{}, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return sess, nil
}

// 保存のたびに有効期限を延ばす
func (s *RedisStore) Save(ctx context.Context, sid string, sess model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sid, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Lock は同じセッションの更新を1つずつにする。
// ctxが終わるまで取れなければ ErrBusy。
func (s *RedisStore) Lock(ctx context.Context, sid string) (func(context.Context) error, error) {
	key := lockKeyPrefix + sid
	token := uuid.NewString()

	ticker := time.NewTicker(s.lockRetry)
	defer ticker.Stop()

	for {
		ok, err := s.client.SetNX(ctx, key, token, s.lockTTL).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("redis setnx failed: %w", err)
		}
		if ok {
			unlock := func(ctx context.Context) error {
				if err := unlockScript.Run(ctx, s.client, []string{key}, token).Err(); err != nil {
					return fmt.Errorf("redis unlock failed: %w", err)
				}
				return nil
			}
			return unlock, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrBusy, ctx.Err())
		case <-ticker.C:
		}
	}
}
