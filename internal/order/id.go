package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const orderIDPrefix = "ORD-"

// newOrderID generates a best-effort unique order identifier: a fixed
// prefix, a millisecond-resolution timestamp, and a 4-digit random suffix.
// Uniqueness is probabilistic and never verified against the store; two
// requests in the same millisecond with colliding suffixes would overwrite
// each other.
func newOrderID() string {
	now := time.Now()
	ts := now.Format("20060102150405") + fmt.Sprintf("%03d", now.Nanosecond()/int(time.Millisecond))
	return fmt.Sprintf("%s%s-%d", orderIDPrefix, ts, 1000+rand.IntN(9000))
}
