package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Engine applies game transitions to a lobby. Callers hold the lobby's write
// lock for mutations and at least the read lock for queries; the engine itself
// only guards its random source, which is shared by all rooms.
type Engine struct {
	mu    sync.Mutex
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// Option configures an Engine
type Option func(*Engine)

// WithSeed makes role assignment and word picks reproducible
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock overrides the time source for ledger timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine seeded from crypto/rand unless WithSeed is given
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(newSeed()))
	}
	return e
}

// Now returns the engine clock
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// perm returns a uniform random permutation of [0, n)
func (e *Engine) perm(n int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Perm(n)
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
