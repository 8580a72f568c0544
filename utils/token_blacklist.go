package utils

import "time"

const blacklistPrefix = "jwt:blacklist:"

var blacklistFallback = newTTLSet()

// BlacklistToken revokes a token until its natural expiration so logout takes
// effect immediately.
func BlacklistToken(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if rc.Set(ctx, blacklistPrefix+token, "1", ttl).Err() == nil {
			return
		}
	}
	blacklistFallback.Put(token, ttl)
}

// IsTokenBlacklisted reports whether a token was revoked. Redis errors
// fail open so an outage cannot lock everyone out.
func IsTokenBlacklisted(token string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if n, err := rc.Exists(ctx, blacklistPrefix+token).Result(); err == nil {
			return n > 0
		}
	}
	return blacklistFallback.Has(token)
}
