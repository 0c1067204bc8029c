package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	runLockKey        = "dedup:run_lock"
	defaultRunLockTTL = 10 * time.Minute
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRunLock - распределенная блокировка прохода дедупликации.
// TTL снимает блокировку, если процесс-владелец упал.
type RedisRunLock struct {
	redisClient *redis.Client
	ttl         time.Duration

	mu    sync.Mutex
	token string
}

// NewRedisRunLock создает блокировку с заданным TTL
func NewRedisRunLock(client *redis.Client, ttl time.Duration) *RedisRunLock {
	if ttl <= 0 {
		ttl = defaultRunLockTTL
	}
	return &RedisRunLock{
		redisClient: client,
		ttl:         ttl,
	}
}

// Acquire пытается захватить блокировку; false - ее держит другой проход
func (l *RedisRunLock) Acquire(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	ok, err := l.redisClient.SetNX(ctx, runLockKey, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if ok {
		l.mu.Lock()
		l.token = token
		l.mu.Unlock()
	}
	return ok, nil
}

// Release снимает блокировку, если она была захвачена этим экземпляром
func (l *RedisRunLock) Release(ctx context.Context) error {
	l.mu.Lock()
	token := l.token
	l.token = ""
	l.mu.Unlock()

	if token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.redisClient, []string{runLockKey}, token).Err(); err != nil {
		return fmt.Errorf("failed to release run lock: %w", err)
	}
	return nil
}
