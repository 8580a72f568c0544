package utils

import (
	"strconv"
	"time"
)

var inflightFallback = newTTLSet()

func claimKey(userID uint) string {
	return "claim:inflight:" + strconv.FormatUint(uint64(userID), 10)
}

// TryAcquireClaim marks a claim operation as in flight for the user. A second
// trigger while one is outstanding gets false and must be treated as a no-op.
// The TTL bounds how long a crashed operation can keep the user locked out.
func TryAcquireClaim(userID uint, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	key := claimKey(userID)
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(500 * time.Millisecond)
		defer cancel()
		if ok, err := rc.SetNX(ctx, key, "1", ttl).Result(); err == nil {
			return ok
		}
	}
	return inflightFallback.PutNX(key, ttl)
}

// ReleaseClaim clears the in-flight marker so the user can retry. Called on
// every exit path of the claim flow, success or failure.
func ReleaseClaim(userID uint) {
	key := claimKey(userID)
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(500 * time.Millisecond)
		defer cancel()
		if rc.Del(ctx, key).Err() == nil {
			return
		}
	}
	inflightFallback.Drop(key)
}
