// Package reference generates provider-compliant merchant reference numbers.
// References correlate an outbound transaction with later status lookups, so
// they must be unique per attempt within the provider's dedup window and fit
// the provider's fixed length and numeric-suffix constraints.
package reference

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	// BillRefLength is the provider's required reference length for BBPS
	// bill fetch and bill payment calls.
	BillRefLength = 14

	// RechargePrefix marks references originated by the recharge surface.
	RechargePrefix = "RPK"

	// RechargeRefLength bounds the recharge reference.
	RechargeRefLength = 16

	// counterMod bounds the fixed-width collision counter to three digits.
	counterMod = 1000
)

// Generator produces unique merchant references of a fixed length. A
// three-digit atomic counter is appended after the millisecond timestamp so
// concurrent callers within the same instant never produce the same value.
type Generator struct {
	prefix string
	length int
	now    func() time.Time
	seq    uint64
}

// NewGenerator creates a generator producing prefix + timestamp + counter
// references of exactly length characters.
func NewGenerator(prefix string, length int) *Generator {
	return &Generator{
		prefix: prefix,
		length: length,
		now:    time.Now,
	}
}

// NewBillGenerator creates a generator for the BBPS reference format:
// 14 numeric characters, timestamp padded.
func NewBillGenerator() *Generator {
	return NewGenerator("", BillRefLength)
}

// NewRechargeGenerator creates a generator for the recharge reference
// format: RPK-prefixed, 16 characters.
func NewRechargeGenerator() *Generator {
	return NewGenerator(RechargePrefix, RechargeRefLength)
}

// Generate returns the next merchant reference. It always succeeds.
func (g *Generator) Generate() string {
	ts := strconv.FormatInt(g.now().UnixMilli(), 10)
	seq := atomic.AddUint64(&g.seq, 1) % counterMod
	body := ts + fmt.Sprintf("%03d", seq)

	room := g.length - len(g.prefix)
	if len(body) > room {
		// Keep the low-order timestamp digits; they vary fastest and the
		// counter stays intact at the tail.
		body = body[len(body)-room:]
	} else if len(body) < room {
		body = strings.Repeat("0", room-len(body)) + body
	}

	return g.prefix + body
}
