// Package list holds the pure transitions over a to-do list.
//
// Nothing here touches storage. Every function leaves its input untouched and
// reports whether the returned list differs, so the caller decides whether a
// write is needed.
package list

import (
	"errors"
	"strings"

	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/model"
)

// ErrNotFound is returned by Edit when no item carries the requested id.
var ErrNotFound = errors.New("item not found")

// Add appends a new item holding the trimmed text.
// Blank text is rejected: l is returned as-is with changed=false.
func Add(l model.List, text string, gen ids.Generator) (model.List, bool) {
	content := strings.TrimSpace(text)
	if content == "" {
		return l, false
	}
	if gen == nil {
		gen = ids.Sequential
	}
	out := make(model.List, 0, len(l)+1)
	out = append(out, l...)
	out = append(out, model.Item{ID: gen(l), Content: content})
	return out, true
}

// Remove drops every item whose id matches. Zero matches is legal and yields
// an equal copy.
func Remove(l model.List, id string) model.List {
	out := make(model.List, 0, len(l))
	for _, it := range l {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Reorder moves the item at from so that it ends up at to, counting to in the
// list with the source already taken out (remove, then insert).
//
// from == to is a no-op. A from outside the list is a no-op too; to is
// clamped into range.
func Reorder(l model.List, from, to int) (model.List, bool) {
	if from == to || from < 0 || from >= len(l) {
		return l, false
	}
	if to < 0 {
		to = 0
	}
	if to > len(l)-1 {
		to = len(l) - 1
	}
	if from == to {
		return l, false
	}

	moved := l[from]
	out := make(model.List, 0, len(l))
	out = append(out, l[:from]...)
	out = append(out, l[from+1:]...)
	out = append(out, model.Item{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, true
}

// Edit replaces the content of the item with the given id, keeping its id and
// position. Blank text is a silent no-op; an unknown id returns ErrNotFound.
func Edit(l model.List, id, text string) (model.List, bool, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return l, false, nil
	}
	i := l.Index(id)
	if i < 0 {
		return l, false, ErrNotFound
	}
	out := l.Clone()
	out[i] = model.Item{ID: id, Content: content}
	return out, true, nil
}
