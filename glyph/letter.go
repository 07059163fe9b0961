package glyph

import (
	"fmt"
	"strings"
)

// Letter identifies one of the 26 glyphs, 'A' through 'Z'.
type Letter byte

const (
	First Letter = 'A'
	Last  Letter = 'Z'
)

// LetterCount is the number of letters in the alphabet.
const LetterCount = int(Last-First) + 1

// Letters returns all letters in order.
func Letters() []Letter {
	all := make([]Letter, 0, LetterCount)
	for l := First; l <= Last; l++ {
		all = append(all, l)
	}
	return all
}

func (l Letter) Valid() bool {
	return l >= First && l <= Last
}

// Prev returns the letter before l and false if l is the first letter.
func (l Letter) Prev() (Letter, bool) {
	if l <= First {
		return l, false
	}
	return l - 1, true
}

// Next returns the letter after l and false if l is the last letter.
func (l Letter) Next() (Letter, bool) {
	if l >= Last {
		return l, false
	}
	return l + 1, true
}

func (l Letter) String() string {
	return string(rune(l))
}

func (l Letter) index() int {
	if !l.Valid() {
		panic(fmt.Sprintf("glyph: invalid letter %q", rune(l)))
	}
	return int(l - First)
}

// ParseLetter accepts a single letter, upper or lower case.
func ParseLetter(s string) (Letter, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || !Letter(s[0]).Valid() {
		return 0, fmt.Errorf("glyph: %q is not a letter A-Z", s)
	}
	return Letter(s[0]), nil
}
