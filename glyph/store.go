package glyph

// Store holds the committed shapes of all 26 letters. Every letter is
// present from the start, clearing a letter sets it to an empty sequence.
// The order of shapes is the drawing order.
type Store struct {
	glyphs [LetterCount][]Shape
}

// NewStore returns a store with an empty glyph for every letter.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the shapes of l. Passing nil or an empty slice clears it.
// Set panics if l is not a letter A-Z.
func (s *Store) Set(l Letter, shapes []Shape) {
	i := l.index()
	if len(shapes) == 0 {
		s.glyphs[i] = nil
		return
	}
	s.glyphs[i] = append([]Shape(nil), shapes...)
}

// Get returns a copy of the shapes of l, empty if nothing was drawn for it.
// Get panics if l is not a letter A-Z.
func (s *Store) Get(l Letter) []Shape {
	return append([]Shape{}, s.glyphs[l.index()]...)
}

// Len is the number of shapes stored for l.
func (s *Store) Len(l Letter) int {
	return len(s.glyphs[l.index()])
}

// Count is the number of shapes over all letters.
func (s *Store) Count() int {
	n := 0
	for _, g := range s.glyphs {
		n += len(g)
	}
	return n
}

// Each calls fn for every letter in order, stopping early if fn returns
// false.
func (s *Store) Each(fn func(Letter, []Shape) bool) {
	for i, g := range s.glyphs {
		if !fn(First+Letter(i), append([]Shape{}, g...)) {
			return
		}
	}
}
