// Package sitemap derives the navigation path list from the compiled
// verse set.
//
// The enumeration is purely derived: one path per distinct book, one per
// distinct (book, chapter) pair, plus the fixed about page. It is
// recomputed from the store on demand and never persisted separately.
package sitemap

import (
	"fmt"
	"strconv"

	"github.com/versewright/versed/core/books"
	"github.com/versewright/versed/core/errors"
	"github.com/versewright/versed/core/store"
)

// AboutPath is the fixed non-derived sitemap entry.
const AboutPath = "/about"

// Paths enumerates every valid navigation path in canonical order: the
// about page, then each book followed by its chapters. Duplicate (book,
// chapter) pairs in the verse set collapse to one entry.
func Paths(s *store.Store, set *books.Set) ([]string, error) {
	chapters, err := s.Chapters()
	if err != nil {
		return nil, err
	}

	out := []string{AboutPath}
	lastBook := 0
	for _, bc := range chapters {
		b, ok := set.ByID(bc.Book)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInternal, "verse set references unknown book %d", bc.Book)
		}
		if bc.Book != lastBook {
			out = append(out, "/"+b.Name)
			lastBook = bc.Book
		}
		out = append(out, "/"+b.Name+"/"+strconv.Itoa(bc.Chapter))
	}
	return out, nil
}

// ChapterPath returns the navigation path for one chapter.
func ChapterPath(b *books.Book, chapter int) string {
	return fmt.Sprintf("/%s/%d", b.Name, chapter)
}
