package storage

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ThrottleCooldownCap  = 30 * time.Second
	throttleFailureTTL   = 15 * time.Minute
	throttleKeyPrefix    = "login:"
	throttleFailSuffix   = ":fails"
	throttleCooldownPart = ":cooldown"
)

// RedisThrottle tracks failed logins per username with an exponential
// cooldown capped at ThrottleCooldownCap.
type RedisThrottle struct {
	Client *redis.Client
}

func NewRedisThrottle(client *redis.Client) *RedisThrottle {
	return &RedisThrottle{Client: client}
}

func (t *RedisThrottle) failKey(username string) string {
	return throttleKeyPrefix + strings.ToLower(username) + throttleFailSuffix
}

func (t *RedisThrottle) cooldownKey(username string) string {
	return throttleKeyPrefix + strings.ToLower(username) + throttleCooldownPart
}

// Wait returns how long the caller must wait before the next attempt.
func (t *RedisThrottle) Wait(ctx context.Context, username string) (time.Duration, error) {
	ttl, err := t.Client.PTTL(ctx, t.cooldownKey(username)).Result()
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}

func (t *RedisThrottle) RecordFailure(ctx context.Context, username string) (time.Duration, error) {
	fails, err := t.Client.Incr(ctx, t.failKey(username)).Result()
	if err != nil {
		return 0, err
	}
	if err := t.Client.Expire(ctx, t.failKey(username), throttleFailureTTL).Err(); err != nil {
		return 0, err
	}

	cooldown := CooldownFor(int(fails))
	if err := t.Client.Set(ctx, t.cooldownKey(username), "1", cooldown).Err(); err != nil {
		return 0, err
	}
	return cooldown, nil
}

func (t *RedisThrottle) Reset(ctx context.Context, username string) error {
	return t.Client.Del(ctx, t.failKey(username), t.cooldownKey(username)).Err()
}

// CooldownFor returns min(30s, 2^failCount seconds).
func CooldownFor(failCount int) time.Duration {
	if failCount < 0 {
		failCount = 0
	}
	if failCount >= 5 {
		return ThrottleCooldownCap
	}
	d := time.Duration(1<<failCount) * time.Second
	if d > ThrottleCooldownCap {
		return ThrottleCooldownCap
	}
	return d
}
