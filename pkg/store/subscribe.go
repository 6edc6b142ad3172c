package store

import (
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Subscribe registers fn to receive a snapshot after every mutation that
// changed the form. Callbacks run synchronously after the store lock is
// released, one at a time and in mutation order. When mutations race, a
// snapshot superseded by a newer one may be skipped, but subscribers always
// end on the latest form. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(model.Form)) func() {
	if fn == nil {
		return func() {}
	}

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify queues snapshot unless a newer version was already queued. The
// first caller to find the queue idle drains it; concurrent and re-entrant
// callers only enqueue.
func (s *Store) notify(version uint64, snapshot model.Form) {
	s.subMu.Lock()
	if version <= s.delivered {
		s.subMu.Unlock()
		return
	}
	s.delivered = version
	s.pending = append(s.pending, snapshot)
	if s.delivering {
		s.subMu.Unlock()
		return
	}
	s.delivering = true

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		callbacks := s.callbacksLocked()
		s.subMu.Unlock()

		for _, fn := range callbacks {
			fn(next.Clone())
		}

		s.subMu.Lock()
	}
	s.pending = nil
	s.delivering = false
	s.subMu.Unlock()
}

func (s *Store) callbacksLocked() []func(model.Form) {
	if len(s.subs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	callbacks := make([]func(model.Form), 0, len(ids))
	for _, id := range ids {
		callbacks = append(callbacks, s.subs[id])
	}
	return callbacks
}
