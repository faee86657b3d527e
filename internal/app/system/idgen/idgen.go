// Package idgen issues record identifiers and work-order display numbers.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultDisplayStart is the first display number handed out.
const DefaultDisplayStart = 1000

// Generator is injected into the mutation layer.
type Generator interface {
	// NewID returns a process-unique identifier starting with prefix.
	NewID(prefix string) string
	// NextDisplayID returns the next "#WO-NNNN" ticket number.
	NextDisplayID() string
}

// FormatDisplayID renders n as a display ID. Numbers above 9999 keep all digits.
func FormatDisplayID(n int) string {
	return fmt.Sprintf("#WO-%04d", n)
}

// counter hands out display numbers. Not safe for concurrent use on its own.
type counter struct {
	next int
}

func (c *counter) take() int {
	n := c.next
	c.next++
	return n
}

// ULID generates time-ordered ULID identifiers and sequential display numbers.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
	display counter
}

// NewULID returns a generator whose display numbers start at start.
// A non-positive start falls back to DefaultDisplayStart.
func NewULID(start int) *ULID {
	if start <= 0 {
		start = DefaultDisplayStart
	}
	return &ULID{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
		display: counter{next: start},
	}
}

// SetDisplayStart moves the display counter forward so it never reissues n or below.
func (g *ULID) SetDisplayStart(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n > g.display.next {
		g.display.next = n
	}
}

func (g *ULID) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
	return join(prefix, id.String())
}

func (g *ULID) NextDisplayID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return FormatDisplayID(g.display.take())
}

// Sequence is a deterministic generator for tests: ids are prefix-1, prefix-2...
type Sequence struct {
	mu      sync.Mutex
	ids     map[string]int
	display counter
}

// NewSequence returns a Sequence whose display numbers start at start.
func NewSequence(start int) *Sequence {
	if start <= 0 {
		start = DefaultDisplayStart
	}
	return &Sequence{ids: map[string]int{}, display: counter{next: start}}
}

func (s *Sequence) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[prefix]++
	return join(prefix, strconv.Itoa(s.ids[prefix]))
}

func (s *Sequence) NextDisplayID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FormatDisplayID(s.display.take())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// ParseDisplayID extracts the number from "#WO-NNNN". ok is false for any other shape.
func ParseDisplayID(s string) (n int, ok bool) {
	const p = "#WO-"
	if len(s) <= len(p) || s[:len(p)] != p {
		return 0, false
	}
	n, err := strconv.Atoi(s[len(p):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
