package utils

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"
)

// Password reset codes are short-lived secrets keyed by email; unlike the
// presence-only stores this one carries a value, so it keeps its own
// fallback map.
type codeEntry struct {
	code      string
	expiresAt time.Time
}

var (
	codeFallback   = map[string]codeEntry{}
	codeFallbackMu sync.Mutex
)

const (
	resetCodePrefix     = "reset:email:"
	emailCooldownPrefix = "cooldown:email:"
)

// GenerateVerificationCode creates an n-digit numeric code from crypto/rand.
func GenerateVerificationCode(n int) string {
	if n <= 0 {
		n = 6
	}
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			v = big.NewInt(time.Now().UnixNano() % 10)
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits)
}

// SaveResetCode stores a password reset code for an email with a TTL.
func SaveResetCode(email, code string, ttl time.Duration) {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if rc.Set(ctx, resetCodePrefix+email, code, ttl).Err() == nil {
			return
		}
	}
	codeFallbackMu.Lock()
	codeFallback[email] = codeEntry{code: code, expiresAt: time.Now().Add(ttl)}
	codeFallbackMu.Unlock()
}

// VerifyAndConsumeResetCode checks a reset code and removes it whether or not
// it matched, so each code survives exactly one attempt.
func VerifyAndConsumeResetCode(email, code string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if stored, ok := getDel(ctx, rc, resetCodePrefix+email); ok {
			return stored == code
		}
	}
	codeFallbackMu.Lock()
	defer codeFallbackMu.Unlock()
	entry, ok := codeFallback[email]
	if !ok {
		return false
	}
	delete(codeFallback, email)
	return time.Now().Before(entry.expiresAt) && entry.code == code
}

// EmailCooldownTrySet reports whether a reset email may be sent now and, if
// so, starts the cooldown window.
func EmailCooldownTrySet(email string, cooldown time.Duration) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := redisCtx(0)
		defer cancel()
		if ok, err := rc.SetNX(ctx, emailCooldownPrefix+email, "1", cooldown).Result(); err == nil {
			return ok
		}
	}
	return emailCooldownFallback.PutNX(email, cooldown)
}

var emailCooldownFallback = newTTLSet()
