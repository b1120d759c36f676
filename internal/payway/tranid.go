package payway

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

// TranIDGenerator mints gateway transaction ids: a full UTC timestamp
// down to the second followed by a three-digit suffix, e.g.
// "20260831142755042". Ids sort lexically in generation order and use
// only digits, so they are safe in form fields and hash input.
type TranIDGenerator struct {
	mu  sync.Mutex
	seq uint64
	now func() time.Time
}

// NewTranIDGenerator creates a generator with a randomized sequence
// start so restarts don't repeat a recent suffix run.
func NewTranIDGenerator() *TranIDGenerator {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return &TranIDGenerator{
		seq: binary.BigEndian.Uint64(b[:]),
		now: time.Now,
	}
}

// Next returns a fresh transaction id. The suffix walks a counter, so
// ids minted within the same second stay distinct under concurrent use.
func (g *TranIDGenerator) Next() string {
	g.mu.Lock()
	g.seq++
	n := g.seq
	g.mu.Unlock()
	return g.now().UTC().Format("20060102150405") + fmt.Sprintf("%03d", n%1000)
}
