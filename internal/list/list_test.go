package list

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

func abcd() model.List {
	return model.List{
		{ID: "id-0", Content: "a"},
		{ID: "id-1", Content: "b"},
		{ID: "id-2", Content: "c"},
		{ID: "id-3", Content: "d"},
	}
}

func contents(l model.List) string {
	s := ""
	for _, it := range l {
		s += it.Content
	}
	return s
}

func TestAdd(t *testing.T) {
	l := abcd()

	for _, blank := range []string{"", "   ", "\t\n"} {
		got, changed := Add(l, blank, nil)
		assert.False(t, changed, "blank %q", blank)
		assert.Equal(t, l, got)
	}

	got, changed := Add(l, " hello ", nil)
	require.True(t, changed)
	require.Len(t, got, len(l)+1)
	assert.Equal(t, model.Item{ID: "id-4", Content: "hello"}, got[len(got)-1])
	assert.Equal(t, abcd(), l, "input must not be mutated")
}

func TestAdd_UsesGenerator(t *testing.T) {
	got, _ := Add(nil, "x", func(model.List) string { return "fixed" })
	assert.Equal(t, model.List{{ID: "fixed", Content: "x"}}, got)
}

func TestRemove(t *testing.T) {
	l := abcd()
	assert.Equal(t, "acd", contents(Remove(l, "id-1")))
	assert.Equal(t, l, Remove(l, "id-99"))

	dup := model.List{{ID: "x", Content: "1"}, {ID: "y", Content: "2"}, {ID: "x", Content: "3"}}
	assert.Equal(t, model.List{{ID: "y", Content: "2"}}, Remove(dup, "x"))
}

func TestReorder_RemoveThenInsert(t *testing.T) {
	tests := []struct {
		from, to int
		want     string
	}{
		{0, 2, "bcad"},
		{0, 3, "bcda"},
		{3, 0, "dabc"},
		{1, 2, "acbd"},
		{2, 1, "acbd"},
	}
	for _, tt := range tests {
		got, changed := Reorder(abcd(), tt.from, tt.to)
		assert.True(t, changed)
		assert.Equal(t, tt.want, contents(got), "reorder %d->%d", tt.from, tt.to)
	}
}

func TestReorder_PreservesItems(t *testing.T) {
	l := abcd()
	for from := range l {
		for to := range l {
			got, _ := Reorder(l, from, to)
			require.Len(t, got, len(l))
			assert.Equal(t, l[from], got[to])
			assert.ElementsMatch(t, l, got)
		}
	}
	assert.Equal(t, abcd(), l, "input must not be mutated")
}

func TestReorder_NoOps(t *testing.T) {
	l := abcd()
	for _, c := range [][2]int{{1, 1}, {-1, 2}, {4, 0}, {3, 9}, {0, -5}} {
		got, changed := Reorder(l, c[0], c[1])
		assert.False(t, changed, "reorder %v", c)
		assert.Equal(t, l, got)
	}
}

func TestReorder_ClampsDestination(t *testing.T) {
	got, changed := Reorder(abcd(), 0, 10)
	require.True(t, changed)
	assert.Equal(t, "bcda", contents(got))

	got, changed = Reorder(abcd(), 2, -1)
	require.True(t, changed)
	assert.Equal(t, "cabd", contents(got))
}

func TestEdit(t *testing.T) {
	l := abcd()

	got, changed, err := Edit(l, "id-2", "  new text ")
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, model.Item{ID: "id-2", Content: "new text"}, got[2])
	assert.Equal(t, "abd", contents(got[:2])+got[3].Content)
	assert.Equal(t, "c", l[2].Content, "input must not be mutated")

	got, changed, err = Edit(l, "id-2", "  ")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, l, got)

	got, changed, err = Edit(l, "gone", "text")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, changed)
	assert.Equal(t, l, got)
}
