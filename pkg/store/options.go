package store

import (
	"log/slog"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Option configures a Store at construction time.
type Option func(*Store)

// WithSeed installs the initial field sequence. Fields are copied.
func WithSeed(fields []model.Field) Option {
	return func(s *Store) {
		s.fields = model.CloneFields(fields)
	}
}

// WithLayout sets the initial layout selector. Unknown selectors are ignored.
func WithLayout(l model.Layout) Option {
	return func(s *Store) {
		if l.Valid() {
			s.layout = l
		}
	}
}

// WithIDGenerator overrides the id source used by AddField.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithLogger sets the structured logger used for mutation traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
