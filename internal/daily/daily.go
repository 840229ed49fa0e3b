// internal/daily/daily.go
//
// Deterministic daily boards: every player rolling "today's board" with
// the same salt gets the same dice.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BoardSeed returns a deterministic board RNG seed for a date using
// HMAC-SHA256(salt, YYYY-MM-DD).
func BoardSeed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
