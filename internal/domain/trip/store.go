package trip

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Store caches generated itineraries keyed by request fingerprint.
// Implementations must treat a miss as (zero, false, nil).
type Store interface {
	Get(ctx context.Context, key string) (Itinerary, bool, error)
	Save(ctx context.Context, key string, it Itinerary, ttl time.Duration) error
}

// CacheKey fingerprints the normalized request parameters that influence
// generation. Two requests with the same fingerprint get the same plan
// while the cache entry lives.
func CacheKey(destination string, days, guests, budget int, currency, origin, fromDate, toDate string) string {
	seed := fmt.Sprintf("%s|%d|%d|%d|%s|%s|%s|%s", destination, days, guests, budget, currency, origin, fromDate, toDate)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:16])
}
