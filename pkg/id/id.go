package id

import (
	"strconv"
	"sync"
	"time"
)

// ID identifies one generated name: milliseconds since the Unix epoch plus a
// sequence that disambiguates IDs within the same millisecond.
type ID struct {
	Ms  int64
	Seq uint32
}

// String returns "<ms base36>-<seq>".
func (i ID) String() string {
	return strconv.FormatInt(i.Ms, 36) + "-" + strconv.FormatUint(uint64(i.Seq), 10)
}

// Compare returns -1, 0, 1 ordering by timestamp then sequence.
func (i ID) Compare(other ID) int {
	switch {
	case i.Ms < other.Ms:
		return -1
	case i.Ms > other.Ms:
		return 1
	case i.Seq < other.Seq:
		return -1
	case i.Seq > other.Seq:
		return 1
	}
	return 0
}

// Generator produces monotonically increasing IDs. It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	lastMs int64
	seq    uint32
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator { return &Generator{} }

// NowMs returns current time in milliseconds since Unix epoch.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// Next returns a new ID. If the clock goes backwards it reuses lastMs and
// increments the sequence. A sequence wrap within one millisecond rolls the
// timestamp forward by one instead of waiting.
func (g *Generator) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := NowMs()
	if ms < g.lastMs {
		ms = g.lastMs
	}
	if ms == g.lastMs {
		g.seq++
		if g.seq == 0 {
			ms++
		}
	} else {
		g.seq = 0
	}
	g.lastMs = ms
	return ID{Ms: ms, Seq: g.seq}
}
