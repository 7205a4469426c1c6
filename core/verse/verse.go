// Package verse compiles the word corpus into addressable verse records.
//
// A verse identifier packs (book, chapter, verse) into a single integer:
//
//	id = book*1_000_000 + chapter*1_000 + verse
//
// Chapter and verse each get three decimal digits, so ascending
// identifiers follow canonical reading order across the whole corpus and
// a contiguous reference maps to one integer range.
package verse

import "fmt"

const (
	// MaxChapter is the largest chapter number the identifier encoding
	// can carry.
	MaxChapter = 999
	// MaxVerse is the largest verse number the identifier encoding can
	// carry.
	MaxVerse = 999
	// MaxBook is the highest valid book id.
	MaxBook = 66
)

// Verse is the unit of display and search: one verse with both of its
// derived renderings.
type Verse struct {
	ID      int
	Book    int
	Chapter int
	Verse   int
	// Plain is the display text: words joined by single spaces, with
	// punctuation and parentheses applied. Never contains markup.
	Plain string
	// Annotated is identical to Plain except that words flagged as
	// translators' interpolations are wrapped in <em></em>.
	Annotated string
}

// EncodeID packs (book, chapter, verse) into a verse identifier. The
// caller must have validated the ranges; EncodeID does not.
func EncodeID(book, chapter, verse int) int {
	return book*1_000_000 + chapter*1_000 + verse
}

// DecodeID unpacks a verse identifier.
func DecodeID(id int) (book, chapter, verse int) {
	return id / 1_000_000, (id / 1_000) % 1_000, id % 1_000
}

// Ref returns the "book:chapter:verse" form used in error messages.
func (v Verse) Ref() string {
	return fmt.Sprintf("%d:%d:%d", v.Book, v.Chapter, v.Verse)
}
