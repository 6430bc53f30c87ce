package exemplar

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/text/unicode/bidi"
)

// Set is an ordered, duplicate-free sequence of characters.
// The zero value is an empty set. Sets are immutable after parsing.
type Set struct {
	members *linkedhashset.Set // of rune, in insertion order
}

// Parse creates a set from a text block. Whitespace is dropped, every other
// code point is added on its first occurrence. An empty block results in an
// empty set.
func Parse(raw string) Set {
	if raw == "" {
		return Set{}
	}
	members := linkedhashset.New()
	for _, r := range raw {
		if IsSpace(r) {
			continue
		}
		members.Add(r)
	}
	tracer().Debugf("parsed exemplar set of %d characters", members.Size())
	return Set{members: members}
}

// IsSpace reports whether r separates exemplar characters. This is the case
// for Unicode space separators (Zs) and for characters of bidi class WS, B
// or S, which includes the information separators U+001C to U+001F.
func IsSpace(r rune) bool {
	if unicode.Is(unicode.Zs, r) {
		return true
	}
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.WS, bidi.B, bidi.S:
		return true
	}
	return false
}

// Len returns the number of characters in the set.
func (s Set) Len() int {
	if s.members == nil {
		return 0
	}
	return s.members.Size()
}

// Contains reports whether r is a member of the set.
func (s Set) Contains(r rune) bool {
	return s.members != nil && s.members.Contains(r)
}

// Runes returns the characters in order of first occurrence.
func (s Set) Runes() []rune {
	if s.members == nil {
		return []rune{}
	}
	values := s.members.Values()
	runes := make([]rune, len(values))
	for i, v := range values {
		runes[i] = v.(rune)
	}
	return runes
}

// Strings returns the characters in order, one string per character.
func (s Set) Strings() []string {
	runes := s.Runes()
	strs := make([]string, len(runes))
	for i, r := range runes {
		strs[i] = string(r)
	}
	return strs
}

// Outside returns the characters of s which are not covered by any of the
// range tables, in set order.
func (s Set) Outside(tables ...*unicode.RangeTable) []rune {
	var outside []rune
	for _, r := range s.Runes() {
		if !unicode.In(r, tables...) {
			outside = append(outside, r)
		}
	}
	return outside
}

// String returns the characters joined by single spaces, enclosed in brackets.
func (s Set) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}

// Blocks are the raw text blocks of the four exemplar slots.
// Any of them may be empty.
type Blocks struct {
	Main        string
	Auxiliary   string
	Index       string
	Punctuation string
}

// Characters holds the exemplar sets of a writing system.
type Characters struct {
	Main        Set
	Auxiliary   Set
	Index       Set
	Punctuation Set
}

// ParseBlocks parses each of the four slots.
func ParseBlocks(b Blocks) Characters {
	return Characters{
		Main:        Parse(b.Main),
		Auxiliary:   Parse(b.Auxiliary),
		Index:       Parse(b.Index),
		Punctuation: Parse(b.Punctuation),
	}
}

// EachSlot calls f for every slot, in the order main, auxiliary, index,
// punctuation.
func (c Characters) EachSlot(f func(slot string, set Set)) {
	f("main", c.Main)
	f("auxiliary", c.Auxiliary)
	f("index", c.Index)
	f("punctuation", c.Punctuation)
}
