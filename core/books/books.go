// Package books defines the canonical book table and its alias index.
//
// Book identity is a small positive integer in King James order (1-66).
// Every book carries an ordered list of lowercase aliases; aliases are
// unique across the whole set so that any alias resolves to exactly one
// book. Resolution is case-insensitive and whitespace-normalized.
package books

import (
	"fmt"
	"sort"
	"strings"

	"github.com/versewright/versed/core/errors"
)

// Testament identifies which testament a book belongs to. The value is
// stored verbatim in the compiled database.
type Testament string

const (
	// Old is the Old Testament.
	Old Testament = "OLD"
	// New is the New Testament.
	New Testament = "NEW"
)

// Book is one book of the corpus.
type Book struct {
	ID        int
	Name      string
	Chapters  int
	Testament Testament
	Aliases   []string
}

// Set is an immutable book table with alias lookup.
type Set struct {
	books   []Book
	byID    map[int]*Book
	byAlias map[string]*Book
	// aliases sorted longest first, for longest-prefix-wins matching.
	aliases []string
}

// NewSet builds a Set from the given books. The lowercase canonical name
// of each book is always an alias. Duplicate aliases across books are an
// error.
func NewSet(list []Book) (*Set, error) {
	s := &Set{
		books:   list,
		byID:    make(map[int]*Book, len(list)),
		byAlias: make(map[string]*Book),
	}
	for i := range s.books {
		b := &s.books[i]
		if b.ID <= 0 {
			return nil, errors.NewValidation("book", fmt.Sprintf("invalid id %d for %q", b.ID, b.Name))
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, errors.NewValidation("book", fmt.Sprintf("duplicate id %d", b.ID))
		}
		s.byID[b.ID] = b

		names := append([]string{strings.ToLower(b.Name)}, b.Aliases...)
		for _, a := range names {
			a = Normalize(a)
			if a == "" {
				return nil, errors.NewValidation("alias", fmt.Sprintf("empty alias for %q", b.Name))
			}
			if other, dup := s.byAlias[a]; dup {
				if other == b {
					continue
				}
				return nil, errors.NewValidation("alias",
					fmt.Sprintf("%q maps to both %q and %q", a, other.Name, b.Name))
			}
			s.byAlias[a] = b
			s.aliases = append(s.aliases, a)
		}
	}
	sort.Slice(s.aliases, func(i, j int) bool {
		if len(s.aliases[i]) != len(s.aliases[j]) {
			return len(s.aliases[i]) > len(s.aliases[j])
		}
		return s.aliases[i] < s.aliases[j]
	})
	return s, nil
}

// MustNewSet builds a Set and panics on error. Intended for the canonical
// table, whose data is fixed at compile time.
func MustNewSet(list []Book) *Set {
	s, err := NewSet(list)
	if err != nil {
		panic(fmt.Sprintf("books: invalid book table: %v", err))
	}
	return s
}

// Normalize lowercases s, trims surrounding whitespace, and collapses
// internal whitespace runs to a single space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// All returns the books in canonical order.
func (s *Set) All() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByID returns the book with the given id.
func (s *Set) ByID(id int) (*Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// Resolve looks up a book by exact alias. The input is normalized before
// lookup.
func (s *Set) Resolve(name string) (*Book, bool) {
	b, ok := s.byAlias[Normalize(name)]
	return b, ok
}

// MatchPrefix finds the longest alias that is a prefix of the normalized
// input, ending at a boundary (space, dot or colon, covering spellings
// like "jhn.3.16"). It returns the matched book and the remainder of the
// input after the boundary.
//
// Longest-match-wins disambiguates aliases that share a prefix: for
// "1 timothy 2" the alias "1 timothy" beats "1 tim", and "judges 2" can
// never be claimed by "jude".
func (s *Set) MatchPrefix(input string) (*Book, string, bool) {
	q := Normalize(input)
	if q == "" {
		return nil, "", false
	}
	for _, a := range s.aliases {
		if q == a {
			return s.byAlias[a], "", true
		}
		if strings.HasPrefix(q, a) && isBoundary(q[len(a)]) {
			return s.byAlias[a], strings.TrimSpace(q[len(a)+1:]), true
		}
	}
	return nil, "", false
}

func isBoundary(c byte) bool {
	return c == ' ' || c == '.' || c == ':'
}

// Aliases returns every alias in the set, longest first. The slice is a
// copy.
func (s *Set) Aliases() []string {
	out := make([]string, len(s.aliases))
	copy(out, s.aliases)
	return out
}

// Len returns the number of books in the set.
func (s *Set) Len() int {
	return len(s.books)
}
