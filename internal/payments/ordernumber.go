package payments

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	orderNumberPrefix    = "DK"
	orderNumberSuffixLen = 5
	lineItemKeyLen       = 9

	upperAlphanumerics = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerAlphanumerics = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewOrderNumber builds a human-readable order token: prefix, millisecond
// timestamp, short random suffix. Uniqueness is best-effort; two calls in
// the same millisecond can collide on the suffix alone.
func NewOrderNumber() string {
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), randomToken(upperAlphanumerics, orderNumberSuffixLen))
}

// NewLineItemKey generates the per-item key required on persisted line items.
func NewLineItemKey() string {
	return randomToken(lowerAlphanumerics, lineItemKeyLen)
}

func randomToken(charset string, length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = charset[rand.Intn(len(charset))]
	}
	return string(out)
}
