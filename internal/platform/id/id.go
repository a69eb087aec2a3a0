package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// ULID generates lexicographically sortable identifiers from a monotonic
// entropy source. The zero value is ready to use and safe for concurrent use.
type ULID struct {
	once    sync.Once
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULID() *ULID {
	return &ULID{}
}

func (g *ULID) New() string {
	g.once.Do(func() {
		g.entropy = ulid.Monotonic(rand.Reader, 0)
	})
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), g.entropy).String()
}
