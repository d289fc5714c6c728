package document

// Range is a single selection range. Head is the offset the cursor logically
// sits at; Anchor is the fixed end. For a plain cursor, Anchor == Head.
type Range struct {
	Anchor int
	Head   int
}

// From returns the lower bound of the range.
func (r Range) From() int {
	if r.Head < r.Anchor {
		return r.Head
	}
	return r.Anchor
}

// To returns the upper bound of the range.
func (r Range) To() int {
	if r.Head > r.Anchor {
		return r.Head
	}
	return r.Anchor
}

// Empty returns true when the range is a bare cursor.
func (r Range) Empty() bool {
	return r.Anchor == r.Head
}

// Selection is an ordered set of ranges with one primary range.
// Owned by the host editor; the engine only reads it.
type Selection struct {
	Ranges  []Range
	Primary int
}

// Cursor creates a single-cursor selection at offset.
func Cursor(offset int) Selection {
	return Selection{
		Ranges:  []Range{{Anchor: offset, Head: offset}},
		Primary: 0,
	}
}

// Single creates a selection with one anchored range.
func Single(anchor, head int) Selection {
	return Selection{
		Ranges:  []Range{{Anchor: anchor, Head: head}},
		Primary: 0,
	}
}

// Main returns the primary range. An empty selection yields a zero range.
func (s Selection) Main() Range {
	if len(s.Ranges) == 0 {
		return Range{}
	}
	if s.Primary < 0 || s.Primary >= len(s.Ranges) {
		return s.Ranges[0]
	}
	return s.Ranges[s.Primary]
}

// Heads returns every range head, in order.
func (s Selection) Heads() []int {
	heads := make([]int, len(s.Ranges))
	for i, r := range s.Ranges {
		heads[i] = r.Head
	}
	return heads
}

// Equal reports whether two selections are identical.
func (s Selection) Equal(other Selection) bool {
	if s.Primary != other.Primary || len(s.Ranges) != len(other.Ranges) {
		return false
	}
	for i, r := range s.Ranges {
		if r != other.Ranges[i] {
			return false
		}
	}
	return true
}
