package utils

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flowva/rewardshub/config"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// GetRedis returns the shared Redis client. The connection is attempted once;
// callers are expected to tolerate command errors and fall back to the
// in-process stores where one exists.
func GetRedis() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.Get()
		redisClient = redis.NewClient(&redis.Options{
			Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		})
		ctx, cancel := redisCtx(2 * time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil && Sugar != nil {
			Sugar.Warnf("redis unreachable at boot, in-memory fallbacks active: %v", err)
		}
	})
	return redisClient
}

// redisCtx bounds a single Redis command; the stores here are coordination
// aids, not data of record, so commands stay short.
func redisCtx(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 2 * time.Second
	}
	return context.WithTimeout(context.Background(), d)
}

// getDel removes and returns a key in one step, degrading to a Lua script on
// servers older than 6.2 where GETDEL does not exist.
func getDel(ctx context.Context, rc *redis.Client, key string) (string, bool) {
	if v, err := rc.GetDel(ctx, key).Result(); err == nil {
		return v, true
	} else if err == redis.Nil {
		return "", false
	}
	script := `local v=redis.call('GET', KEYS[1]); if v then redis.call('DEL', KEYS[1]); end; return v`
	res, err := rc.Eval(ctx, script, []string{key}).Result()
	if err != nil || res == nil {
		return "", false
	}
	s, ok := res.(string)
	return s, ok
}
