// Package liststore is the List Store: it applies list transitions and keeps
// the durable slot in step with every change.
package liststore

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/kv"
	"github.com/idilsaglam/todolist/internal/list"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
)

// DefaultKey is the slot the list lives under.
const DefaultKey = "quotes"

// Raw values that mean "nothing stored yet".
const (
	nullMarker  = "null"
	emptyMarker = ""
)

// Options configures a Store. Zero values pick the defaults.
type Options struct {
	Key     string
	Default model.List
	IDs     ids.Generator
	Logger  *log.Logger
}

type Store struct {
	backend kv.Store
	key     string
	def     model.List
	ids     ids.Generator
	log     *log.Logger
}

func New(backend kv.Store, opts Options) *Store {
	s := &Store{
		backend: backend,
		key:     opts.Key,
		def:     opts.Default.Clone(),
		ids:     opts.IDs,
		log:     opts.Logger,
	}
	if s.key == "" {
		s.key = DefaultKey
	}
	if s.ids == nil {
		s.ids = ids.Sequential
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	return s
}

func (s *Store) Key() string { return s.key }

// Default returns a fresh copy of the fallback list.
func (s *Store) Default() model.List { return s.def.Clone() }

// Load reads the slot. A missing, "null" or empty value yields the default
// list, which is written back. So does a value that is not a list of
// {id, content} objects, after a warning. The returned error is only ever a
// backend failure; on a read failure the default is returned and nothing is
// written.
func (s *Store) Load(ctx context.Context) (model.List, error) {
	raw, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return s.Default(), fmt.Errorf("load %s: %w", s.key, err)
	}
	if !ok || raw == nullMarker || raw == emptyMarker {
		return s.reset(ctx)
	}
	l, err := decodeList(raw)
	if err != nil {
		s.log.Warn("invalid list data in storage, resetting to default", "key", s.key, "err", err)
		return s.reset(ctx)
	}
	return l, nil
}

func (s *Store) reset(ctx context.Context) (model.List, error) {
	l := s.Default()
	if err := s.Save(ctx, l); err != nil {
		return l, err
	}
	return l, nil
}

// Save overwrites the slot with l.
func (s *Store) Save(ctx context.Context, l model.List) error {
	raw, err := encodeList(l)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Add appends text as a new item and persists. Blank text changes nothing and
// writes nothing.
func (s *Store) Add(ctx context.Context, l model.List, text string) (model.List, error) {
	out, changed := list.Add(l, text, s.ids)
	if !changed {
		return l, nil
	}
	return s.commit(ctx, l, out)
}

// Remove drops every item with id and persists, even when nothing matched.
func (s *Store) Remove(ctx context.Context, l model.List, id string) (model.List, error) {
	return s.commit(ctx, l, list.Remove(l, id))
}

// Reorder moves the item at from to to (remove, then insert) and persists.
// from == to returns l without a write.
func (s *Store) Reorder(ctx context.Context, l model.List, from, to int) (model.List, error) {
	out, changed := list.Reorder(l, from, to)
	if !changed {
		return l, nil
	}
	return s.commit(ctx, l, out)
}

// Shift moves the item at index by delta positions.
func (s *Store) Shift(ctx context.Context, l model.List, index, delta int) (model.List, error) {
	return s.Reorder(ctx, l, index, index+delta)
}

// Edit replaces the content of the item with id. Blank text is ignored; an
// unknown id is logged and ignored. Neither writes.
func (s *Store) Edit(ctx context.Context, l model.List, id, text string) (model.List, error) {
	out, changed, err := list.Edit(l, id, text)
	if errors.Is(err, list.ErrNotFound) {
		s.log.Warn("edit target not found", "key", s.key, "id", id)
		return l, nil
	}
	if err != nil || !changed {
		return l, err
	}
	return s.commit(ctx, l, out)
}

// commit persists next. On failure the previous list is handed back so the
// caller keeps showing what is actually stored.
func (s *Store) commit(ctx context.Context, prev, next model.List) (model.List, error) {
	if err := s.Save(ctx, next); err != nil {
		return prev, err
	}
	return next, nil
}
