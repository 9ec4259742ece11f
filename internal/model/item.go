package model

// Item is a single to-do entry.
// Items are replaced, never mutated in place, once they are part of a List.
type Item struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// List is the ordered sequence of items shown to the user.
type List []Item

// Clone returns a copy that shares no backing array with l.
// A nil list clones to an empty, non-nil one.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Index returns the position of the first item with the given id, or -1.
func (l List) Index(id string) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}
