// Package identifier mints the quote, order and cart-row identifiers used by
// the store. Two schemes coexist on purpose:
//
//   - quote ids:  "1-" + 8 random chars from [A-Z0-9]
//   - order ids:  "1-" + Unix time in milliseconds
//
// Quote ids are not checked for uniqueness against existing quotes; the
// collision probability is accepted. Order ids are monotonic within a session
// under normal clock behavior and collide only within the same millisecond.
package identifier

import (
	"math/rand"
	"strconv"
	"time"
)

const quoteIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const quoteIDLength = 8

// NewQuoteID returns an id matching ^1-[A-Z0-9]{8}$.
func NewQuoteID() string {
	buf := make([]byte, 2+quoteIDLength)
	buf[0], buf[1] = '1', '-'
	for i := 0; i < quoteIDLength; i++ {
		buf[2+i] = quoteIDAlphabet[rand.Intn(len(quoteIDAlphabet))]
	}
	return string(buf)
}

// NewOrderID returns an id matching ^1-\d+$ built from the current Unix
// millisecond timestamp.
func NewOrderID() string {
	return "1-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NewItemID mints the numeric id for a cart or package row.
func NewItemID() int64 {
	return time.Now().UnixMilli()
}
