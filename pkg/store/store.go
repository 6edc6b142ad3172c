package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// maxIDAttempts bounds how often AddField asks the generator for an unused id.
const maxIDAttempts = 16

var (
	// ErrUnknownFieldType is returned by AddField for types outside the enum.
	ErrUnknownFieldType = errors.New("store: unknown field type")
	// ErrUnknownLayout is returned by SetLayout for unsupported selectors.
	ErrUnknownLayout = errors.New("store: unknown layout")
)

// Store is the editable form. The zero value is not usable; call New.
type Store struct {
	mu        sync.RWMutex
	fields    []model.Field
	layout    model.Layout
	editingID string
	ids       IDGenerator
	logger    *slog.Logger

	version uint64

	subMu      sync.Mutex
	subs       map[int]func(model.Form)
	nextID     int
	delivered  uint64
	pending    []model.Form
	delivering bool
}

// New constructs a store. Seeded fields are expected to satisfy
// model.ValidateFields; use NewFromForm to have that checked.
func New(options ...Option) *Store {
	s := &Store{
		layout: model.DefaultLayout,
		ids:    TimestampIDs(nil),
		logger: slog.Default(),
		subs:   make(map[int]func(model.Form)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// NewFromForm validates a form definition and seeds a store with it.
func NewFromForm(form model.Form, options ...Option) (*Store, error) {
	if err := model.ValidateForm(form); err != nil {
		return nil, fmt.Errorf("store: seed form: %w", err)
	}
	opts := []Option{WithSeed(form.Fields)}
	if form.Layout != "" {
		opts = append(opts, WithLayout(form.Layout))
	}
	return New(append(opts, options...)...), nil
}

// AddField appends a new field of the given type and returns a copy of it.
func (s *Store) AddField(t model.FieldType) (model.Field, error) {
	if !t.Valid() {
		return model.Field{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
	}

	s.mu.Lock()
	field := model.NewField(s.freshIDLocked(), t)
	s.fields = append(s.fields, field)
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("field added", "id", field.ID, "type", t)
	s.notify(version, snapshot)
	return field.Clone(), nil
}

// freshIDLocked draws from the generator a bounded number of times. A
// generator that keeps repeating itself (or returns "") falls back to
// numbered suffixes on its last candidate.
func (s *Store) freshIDLocked() string {
	base := ""
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.ids.NextID()
		if id == "" {
			continue
		}
		if s.indexLocked(id) < 0 {
			return id
		}
		base = id
	}
	if base == "" {
		base = IDPrefix + "field"
		if s.indexLocked(base) < 0 {
			s.logger.Warn("id generator exhausted", "fallback", base)
			return base
		}
	}
	for n := 2; ; n++ {
		id := base + "-" + strconv.Itoa(n)
		if s.indexLocked(id) < 0 {
			s.logger.Warn("id generator exhausted", "fallback", id)
			return id
		}
	}
}

// RemoveField deletes the field with the given id, clearing the editing
// reference when it pointed at that field. It reports whether a field was
// removed; a missing id is a no-op.
func (s *Store) RemoveField(id string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.fields = append(s.fields[:idx], s.fields[idx+1:]...)
	if s.editingID == id {
		s.editingID = ""
	}
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("field removed", "id", id)
	s.notify(version, snapshot)
	return true
}

// UpdateField merges patch into the field with the given id and returns the
// merged copy. The id and type are never changed. A missing id is a no-op and
// reports false.
func (s *Store) UpdateField(id string, patch model.Patch) (model.Field, bool) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Field{}, false
	}
	updated := patch.Apply(s.fields[idx])
	s.fields[idx] = updated
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("field updated", "id", id)
	s.notify(version, snapshot)
	return updated.Clone(), true
}

// Reorder moves the field at from to position to, shifting the fields in
// between. Indices outside [0, len) and from == to leave the sequence
// untouched and report false.
func (s *Store) Reorder(from, to int) bool {
	s.mu.Lock()
	if !s.moveLocked(from, to) {
		s.mu.Unlock()
		return false
	}
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("field reordered", "from", from, "to", to)
	s.notify(version, snapshot)
	return true
}

// Move translates a drag-and-drop event into a reorder: the field activeID
// takes the position currently held by overID. Equal ids, an empty overID or
// ids that are not in the form are no-ops.
func (s *Store) Move(activeID, overID string) bool {
	if overID == "" || activeID == overID {
		return false
	}

	s.mu.Lock()
	from, to := s.indexLocked(activeID), s.indexLocked(overID)
	if from < 0 || to < 0 || !s.moveLocked(from, to) {
		s.mu.Unlock()
		return false
	}
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("field moved", "active", activeID, "over", overID)
	s.notify(version, snapshot)
	return true
}

func (s *Store) moveLocked(from, to int) bool {
	n := len(s.fields)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	moved := s.fields[from]
	if from < to {
		copy(s.fields[from:to], s.fields[from+1:to+1])
	} else {
		copy(s.fields[to+1:from+1], s.fields[to:from])
	}
	s.fields[to] = moved
	return true
}

// SetEditingField points the editing reference at the field with the given
// id. Ids that are not in the form are rejected and leave the reference as
// it was.
func (s *Store) SetEditingField(id string) bool {
	s.mu.Lock()
	if s.indexLocked(id) < 0 {
		s.mu.Unlock()
		return false
	}
	if s.editingID == id {
		s.mu.Unlock()
		return true
	}
	s.editingID = id
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.notify(version, snapshot)
	return true
}

// ClearEditingField drops the editing reference.
func (s *Store) ClearEditingField() {
	s.mu.Lock()
	if s.editingID == "" {
		s.mu.Unlock()
		return
	}
	s.editingID = ""
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.notify(version, snapshot)
}

// EditingField resolves the editing reference against the current sequence.
func (s *Store) EditingField() (model.Field, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.editingID == "" {
		return model.Field{}, false
	}
	idx := s.indexLocked(s.editingID)
	if idx < 0 {
		return model.Field{}, false
	}
	return s.fields[idx].Clone(), true
}

// SetLayout changes the layout selector.
func (s *Store) SetLayout(l model.Layout) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLayout, l)
	}

	s.mu.Lock()
	if s.layout == l {
		s.mu.Unlock()
		return nil
	}
	s.layout = l
	snapshot, version := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug("layout changed", "layout", l)
	s.notify(version, snapshot)
	return nil
}

// Layout returns the current layout selector.
func (s *Store) Layout() model.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

// Fields returns a deep copy of the ordered field sequence.
func (s *Store) Fields() []model.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneFields(s.fields)
}

// Field returns a copy of the field with the given id.
func (s *Store) Field(id string) (model.Field, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Field{}, false
	}
	return s.fields[idx].Clone(), true
}

// Index returns the position of the field with the given id, or -1.
func (s *Store) Index(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(id)
}

// Len returns the number of fields.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fields)
}

// Snapshot returns a deep copy of the whole form.
func (s *Store) Snapshot() model.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// commitLocked stamps a mutation with the next version and snapshots it.
func (s *Store) commitLocked() (model.Form, uint64) {
	s.version++
	return s.snapshotLocked(), s.version
}

func (s *Store) snapshotLocked() model.Form {
	return model.Form{
		Fields:    model.CloneFields(s.fields),
		Layout:    s.layout,
		EditingID: s.editingID,
	}
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.fields {
		if s.fields[i].ID == id {
			return i
		}
	}
	return -1
}
