package verse

import (
	"encoding/hex"
	"sort"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/versewright/versed/core/corpus"
	"github.com/versewright/versed/core/errors"
)

// Emphasis markers wrapped around italic words in the annotated
// rendering. The full-text index only ever sees the plain rendering.
const (
	emOpen  = "<em>"
	emClose = "</em>"
)

// Compilation is the immutable result of compiling a word corpus: the
// complete verse set in ascending identifier order, plus a digest over
// all renderings for determinism checks.
type Compilation struct {
	Verses []Verse
	// Digest is the hex BLAKE3 hash of every rendering in verse id
	// order. Two compilations of the same corpus always agree on it.
	Digest string
}

// Compile groups the word corpus into verses and renders both text forms.
//
// Words are partitioned by (book, chapter, verse) and ordered by position
// within each partition; no other ordering key is applied. Any contract
// violation (out-of-range address, empty partition) aborts compilation:
// a partially compiled verse set is never returned.
func Compile(words []corpus.Word) (*Compilation, error) {
	if len(words) == 0 {
		return nil, errors.NewCompile("group", "", "corpus contains no words")
	}

	parts := make(map[int][]corpus.Word)
	for _, w := range words {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		id := EncodeID(w.Book, w.Chapter, w.Verse)
		parts[id] = append(parts[id], w)
	}

	ids := make([]int, 0, len(parts))
	for id := range parts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	verses := make([]Verse, 0, len(ids))
	for _, id := range ids {
		part := parts[id]
		if len(part) == 0 {
			// Unreachable by construction; fail loudly rather than emit
			// an empty verse.
			b, c, v := DecodeID(id)
			return nil, errors.NewCompile("group", Verse{Book: b, Chapter: c, Verse: v}.Ref(), "empty verse partition")
		}
		sort.SliceStable(part, func(i, j int) bool { return part[i].Position < part[j].Position })

		verses = append(verses, Verse{
			ID:        id,
			Book:      part[0].Book,
			Chapter:   part[0].Chapter,
			Verse:     part[0].Verse,
			Plain:     render(part, false),
			Annotated: render(part, true),
		})
	}

	return &Compilation{
		Verses: verses,
		Digest: digest(verses),
	}, nil
}

// render folds a verse partition into its text. Wrapping order per word:
// parenthesis outermost, emphasis innermost, punctuation after the word
// (and its emphasis wrapper) but inside the closing parenthesis.
func render(part []corpus.Word, annotated bool) string {
	var sb strings.Builder
	for i, w := range part {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if w.Open {
			sb.WriteByte('(')
		}
		if annotated && w.Italic {
			sb.WriteString(emOpen)
			sb.WriteString(w.Text)
			sb.WriteString(emClose)
		} else {
			sb.WriteString(w.Text)
		}
		sb.WriteString(w.Punct)
		if w.Close {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}

func digest(verses []Verse) string {
	h := blake3.New()
	for _, v := range verses {
		h.WriteString(v.Plain)
		h.WriteString("\x00")
		h.WriteString(v.Annotated)
		h.WriteString("\x00")
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
