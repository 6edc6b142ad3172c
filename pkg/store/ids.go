package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDPrefix prefixes every generated field id.
const IDPrefix = "input-"

// IDGenerator issues candidate field ids. The store re-draws when a candidate
// collides with an id already in the form.
type IDGenerator interface {
	NextID() string
}

// IDGeneratorFunc adapts a function into an IDGenerator.
type IDGeneratorFunc func() string

// NextID calls the underlying function.
func (fn IDGeneratorFunc) NextID() string {
	return fn()
}

// TimestampIDs returns a generator producing "input-<unix millis>". Values are
// strictly increasing even when the clock stalls or steps backwards. A nil
// clock uses time.Now.
func TimestampIDs(clock func() time.Time) IDGenerator {
	if clock == nil {
		clock = time.Now
	}
	return &timestampIDs{clock: clock}
}

type timestampIDs struct {
	mu    sync.Mutex
	clock func() time.Time
	last  int64
}

func (g *timestampIDs) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.clock().UnixMilli()
	if next <= g.last {
		next = g.last + 1
	}
	g.last = next
	return IDPrefix + strconv.FormatInt(next, 10)
}

// UUIDIDs returns a generator producing "input-<uuid v4>".
func UUIDIDs() IDGenerator {
	return IDGeneratorFunc(func() string {
		return IDPrefix + uuid.NewString()
	})
}
