// Package search is the top-level query entry point.
//
// A raw query string is first offered to the reference resolver; a
// reference that addresses at least one existing verse wins outright (an
// exact reference is always more useful than a keyword hit). Anything
// else falls back to the full-text index. Either way the caller gets an
// ordered, capped result list and never an error for bad input.
package search

import (
	"strings"

	"github.com/versewright/versed/core/books"
	"github.com/versewright/versed/core/ref"
	"github.com/versewright/versed/core/store"
)

const (
	// MaxResults bounds every result list. Excess matches are dropped,
	// never reported as an error.
	MaxResults = 30

	// snippetRunes bounds snippet length. Long verses are truncated at a
	// word boundary.
	snippetRunes = 160
)

// Result is one query match.
type Result struct {
	// VerseID identifies the matched verse.
	VerseID int
	// Label is the canonical reference string, e.g. "John 3:16".
	Label string
	// Path is the public address of the verse, e.g. "/John/3#v16".
	Path string
	// Snippet is the verse's plain text, truncated if long.
	Snippet string
}

// Resolver answers queries against an immutable compiled store. It holds
// no mutable state and is safe for concurrent use.
type Resolver struct {
	store *store.Store
	books *books.Set
}

// NewResolver builds a Resolver over an opened store.
func NewResolver(s *store.Store, set *books.Set) *Resolver {
	return &Resolver{store: s, books: set}
}

// Resolve classifies and answers a raw query string. Reference lookups
// return verses in ascending identifier order; full-text results follow
// the index's relevance ranking with identifier tie-breaks. An empty or
// unresolvable query yields an empty list.
func (r *Resolver) Resolve(raw string) ([]Result, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if reference, ok := ref.Resolve(r.books, raw); ok {
		verses, err := r.store.VersesByRef(reference, store.Plain)
		if err != nil {
			return nil, err
		}
		if len(verses) > 0 {
			return r.fromVerses(verses), nil
		}
		// Recognized but addresses nothing in the corpus; fall through
		// to full-text search.
	}

	hits, err := r.store.Search(raw, MaxResults)
	if err != nil {
		return nil, err
	}
	return r.fromHits(hits), nil
}

func (r *Resolver) fromVerses(verses []store.Verse) []Result {
	if len(verses) > MaxResults {
		verses = verses[:MaxResults]
	}
	out := make([]Result, 0, len(verses))
	for _, v := range verses {
		out = append(out, r.result(v.ID, v.Book, v.Chapter, v.Verse, v.Words))
	}
	return out
}

func (r *Resolver) fromHits(hits []store.Hit) []Result {
	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}
	out := make([]Result, 0, len(hits))
	for _, h := range hits {
		out = append(out, r.result(h.VerseID, h.Book, h.Chapter, h.Verse, h.Words))
	}
	return out
}

func (r *Resolver) result(id, book, chapter, vs int, words string) Result {
	b, _ := r.books.ByID(book)
	reference := ref.Reference{Book: b, Chapter: chapter, VerseStart: vs, VerseEnd: vs}
	return Result{
		VerseID: id,
		Label:   ref.Label(b, chapter, vs),
		Path:    reference.Path(),
		Snippet: snippet(words),
	}
}

// snippet truncates long verse text at a word boundary.
func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetRunes {
		return s
	}
	cut := string(runes[:snippetRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
