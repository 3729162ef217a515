package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores memoized fact-check lookups
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a cache key from the exact statement text
func CacheKey(statement string) string {
	hash := sha256.Sum256([]byte(statement))
	return "factdash:v1:" + hex.EncodeToString(hash[:])
}
