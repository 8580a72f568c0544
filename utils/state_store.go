package utils

import "time"

const oauthStatePrefix = "oauth:state:"

var stateFallback = newTTLSet()

// SaveState records an OAuth state token so the callback can prove the flow
// started here. Single-instance memory fallback when Redis is down.
func SaveState(state string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if rc.Set(ctx, oauthStatePrefix+state, "1", ttl).Err() == nil {
			return
		}
	}
	stateFallback.Put(state, ttl)
}

// ConsumeState validates a state token and makes it single-use.
func ConsumeState(state string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if v, ok := getDel(ctx, rc, oauthStatePrefix+state); ok {
			return v != ""
		}
	}
	return stateFallback.Take(state)
}
