// Package corpus defines the word-level corpus model and its loader.
//
// The corpus is the read-only input of verse compilation: one record per
// word, carrying its address (book, chapter, verse, position) and the
// typographic flags needed to reconstruct verse text. Words are never
// created or mutated after load.
package corpus

import (
	"fmt"

	"github.com/versewright/versed/core/errors"
)

const (
	// MinBook and MaxBook bound valid book ids.
	MinBook = 1
	MaxBook = 66
	// MaxChapter and MaxVerse bound the fixed-width verse id encoding.
	MaxChapter = 999
	MaxVerse   = 999
)

// Word is the atomic unit of the corpus.
type Word struct {
	Book     int
	Chapter  int
	Verse    int
	Position int
	// Text is the literal word.
	Text string
	// Punct is optional trailing punctuation (",", ";", ".", ...).
	Punct string
	// Italic marks a translators' interpolation.
	Italic bool
	// Open and Close wrap the word in a literal parenthesis.
	Open  bool
	Close bool
}

// Ref returns the "book:chapter:verse" form used in error messages.
func (w Word) Ref() string {
	return fmt.Sprintf("%d:%d:%d", w.Book, w.Chapter, w.Verse)
}

// Validate checks the corpus input contract. Any violation is a fatal
// compilation error; the compiler never skips malformed words.
func (w Word) Validate() error {
	if w.Book < MinBook || w.Book > MaxBook {
		return errors.NewCompile("load", w.Ref(), fmt.Sprintf("book id %d out of range [%d,%d]", w.Book, MinBook, MaxBook))
	}
	if w.Chapter < 1 || w.Chapter > MaxChapter {
		return errors.NewCompile("load", w.Ref(), fmt.Sprintf("chapter %d out of range [1,%d]", w.Chapter, MaxChapter))
	}
	if w.Verse < 1 || w.Verse > MaxVerse {
		return errors.NewCompile("load", w.Ref(), fmt.Sprintf("verse %d out of range [1,%d]", w.Verse, MaxVerse))
	}
	if w.Position < 1 {
		return errors.NewCompile("load", w.Ref(), fmt.Sprintf("word position %d must be >= 1", w.Position))
	}
	if w.Text == "" {
		return errors.NewCompile("load", w.Ref(), "empty word text")
	}
	return nil
}
