// Package ref resolves free-form token sequences to scripture references.
//
// Resolution is two-staged: the book alias table claims the longest
// matching prefix, then a small grammar consumes the numeric tail
// ("chapter", "chapter:verse", "chapter:verse-end"; dots are accepted as
// colon separators). A string that fails either stage is simply "not a
// reference"; callers fall back to full-text search, never to an error.
//
// Resolution never checks that the chapter or verse exists in the corpus;
// that is the lookup layer's concern.
package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/versewright/versed/core/books"
	"github.com/versewright/versed/core/verse"
)

// Reference is a resolved partial-or-complete verse address.
type Reference struct {
	Book *books.Book
	// Chapter is 0 for book-only references.
	Chapter int
	// VerseStart and VerseEnd bound an inclusive verse range. Both are 0
	// for chapter-only references; a single verse has VerseStart ==
	// VerseEnd.
	VerseStart int
	VerseEnd   int
}

// refTail is the grammar for the numerals following a book alias.
// Examples: "3", "3:16", "3:16-18".
type refTail struct {
	Chapter  int  `parser:"@Number"`
	Verse    *int `parser:"( ':' @Number"`
	VerseEnd *int `parser:"( '-' @Number )? )?"`
}

var tailLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var tailParser = participle.MustBuild[refTail](
	participle.Lexer(tailLexer),
	participle.Elide("Whitespace"),
)

// Resolve attempts to read a reference from a raw query string. The
// boolean result is false when the string is not a reference; that is an
// expected outcome, not an error.
func Resolve(set *books.Set, raw string) (*Reference, bool) {
	book, rest, ok := set.MatchPrefix(raw)
	if !ok {
		return nil, false
	}
	if rest == "" {
		return &Reference{Book: book}, true
	}

	// "jhn.3.16" and "Joel 2:" are accepted reference spellings.
	rest = strings.ReplaceAll(rest, ".", ":")
	rest = strings.TrimSuffix(rest, ":")

	tail, err := tailParser.ParseString("", rest)
	if err != nil {
		return nil, false
	}
	if tail.Chapter < 1 {
		return nil, false
	}

	r := &Reference{Book: book, Chapter: tail.Chapter}
	if tail.Verse != nil {
		if *tail.Verse < 1 {
			return nil, false
		}
		r.VerseStart = *tail.Verse
		r.VerseEnd = *tail.Verse
		if tail.VerseEnd != nil {
			if *tail.VerseEnd < r.VerseStart {
				return nil, false
			}
			r.VerseEnd = *tail.VerseEnd
		}
	}
	return r, true
}

// String returns the canonical display label, e.g. "1 Timothy 2" or
// "John 3:16-18".
func (r *Reference) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book.Name)
	if r.Chapter > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(r.Chapter))
		if r.VerseStart > 0 {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(r.VerseStart))
			if r.VerseEnd > r.VerseStart {
				sb.WriteByte('-')
				sb.WriteString(strconv.Itoa(r.VerseEnd))
			}
		}
	}
	return sb.String()
}

// Path returns the public address of the reference: "/BookName" or
// "/BookName/Chapter", with a "#vN" fragment for verse references.
func (r *Reference) Path() string {
	if r.Chapter == 0 {
		return "/" + r.Book.Name
	}
	p := fmt.Sprintf("/%s/%d", r.Book.Name, r.Chapter)
	if r.VerseStart > 0 {
		p += fmt.Sprintf("#v%d", r.VerseStart)
	}
	return p
}

// IDRange returns the inclusive verse identifier range addressed by the
// reference. Identifier ordering matches reading order, so a contiguous
// reference is always one range.
func (r *Reference) IDRange() (lo, hi int) {
	b := r.Book.ID
	switch {
	case r.Chapter == 0:
		return verse.EncodeID(b, 0, 0), verse.EncodeID(b, verse.MaxChapter, verse.MaxVerse)
	case r.VerseStart == 0:
		return verse.EncodeID(b, r.Chapter, 0), verse.EncodeID(b, r.Chapter, verse.MaxVerse)
	default:
		return verse.EncodeID(b, r.Chapter, r.VerseStart), verse.EncodeID(b, r.Chapter, r.VerseEnd)
	}
}

// Label returns the canonical label for a single concrete verse, e.g.
// "John 3:16". Used to caption individual results.
func Label(b *books.Book, chapter, vs int) string {
	return fmt.Sprintf("%s %d:%d", b.Name, chapter, vs)
}
