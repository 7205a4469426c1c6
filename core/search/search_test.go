package search

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/versewright/versed/core/books"
	"github.com/versewright/versed/core/corpus"
	"github.com/versewright/versed/core/store"
	"github.com/versewright/versed/core/verse"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()

	mk := func(book, ch, vs int, text ...string) []corpus.Word {
		var out []corpus.Word
		for i, w := range text {
			out = append(out, corpus.Word{Book: book, Chapter: ch, Verse: vs, Position: i + 1, Text: w})
		}
		return out
	}
	var words []corpus.Word
	words = append(words, mk(1, 1, 1, "In", "the", "beginning", "God", "created")...)
	words = append(words, mk(1, 1, 2, "And", "the", "earth", "was", "without", "form")...)
	words = append(words, mk(43, 3, 16, "For", "God", "so", "loved", "the", "world")...)
	words = append(words, mk(43, 3, 17, "For", "God", "sent", "not", "his", "Son")...)
	words = append(words, mk(54, 2, 1, "I", "exhort", "therefore", "that", "prayers")...)
	words = append(words, mk(54, 2, 2, "For", "kings", "and", "all", "in", "authority")...)
	// One very long verse to exercise snippet truncation.
	long := make([]string, 60)
	for i := range long {
		long[i] = "stretched"
	}
	words = append(words, mk(19, 119, 105, long...)...)

	comp, err := verse.Compile(words)
	if err != nil {
		t.Fatal(err)
	}
	s, err := store.Create(filepath.Join(t.TempDir(), "search.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.SaveCompilation(books.Canonical(), comp); err != nil {
		t.Fatal(err)
	}
	return NewResolver(s, books.Canonical())
}

func TestResolveReferencePath(t *testing.T) {
	r := testResolver(t)

	results, err := r.Resolve("1tim 2")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].VerseID <= results[i-1].VerseID {
			t.Errorf("reference results not in ascending verse-id order")
		}
	}
	if results[0].Label != "1 Timothy 2:1" {
		t.Errorf("label = %q", results[0].Label)
	}
	if results[0].Path != "/1 Timothy/2#v1" {
		t.Errorf("path = %q", results[0].Path)
	}
	if results[0].Snippet != "I exhort therefore that prayers" {
		t.Errorf("snippet = %q", results[0].Snippet)
	}
}

func TestReferenceBeatsFullText(t *testing.T) {
	r := testResolver(t)

	// "john 3" is both a plausible keyword query and a reference; the
	// reference path must win.
	results, err := r.Resolve("john 3")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 reference results", len(results))
	}
	if results[0].Label != "John 3:16" || results[1].Label != "John 3:17" {
		t.Errorf("labels = %q, %q", results[0].Label, results[1].Label)
	}
}

func TestFullTextFallback(t *testing.T) {
	r := testResolver(t)

	t.Run("non-reference query", func(t *testing.T) {
		results, err := r.Resolve("loved the world")
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 {
			t.Fatalf("got %d results, want 1", len(results))
		}
		if results[0].Label != "John 3:16" {
			t.Errorf("label = %q", results[0].Label)
		}
	})

	t.Run("recognized reference with no verses falls back", func(t *testing.T) {
		// Genesis 40 parses as a reference but the test corpus has no
		// such chapter, and full text has no hits either.
		results, err := r.Resolve("genesis 40")
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 0 {
			t.Errorf("got %d results, want 0", len(results))
		}
	})

	t.Run("phrase query", func(t *testing.T) {
		results, err := r.Resolve(`"so loved the world"`)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 {
			t.Fatalf("got %d results, want 1", len(results))
		}
		if results[0].VerseID != verse.EncodeID(43, 3, 16) {
			t.Errorf("verse id = %d", results[0].VerseID)
		}
	})

	t.Run("embedded quote never errors", func(t *testing.T) {
		if _, err := r.Resolve(`he said "peace"`); err != nil {
			t.Errorf("Resolve() error: %v", err)
		}
	})
}

func TestEmptyAndUnmatchedQueries(t *testing.T) {
	r := testResolver(t)

	for _, q := range []string{"", "   ", "zebra quagga", `""`} {
		results, err := r.Resolve(q)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", q, err)
		}
		if len(results) != 0 {
			t.Errorf("Resolve(%q) = %d results, want 0", q, len(results))
		}
	}
}

func TestReferenceResultCap(t *testing.T) {
	// A whole-book lookup over more than MaxResults verses must be
	// truncated, never returned in full.
	var words []corpus.Word
	for v := 1; v <= MaxResults+5; v++ {
		words = append(words, corpus.Word{Book: 20, Chapter: 1, Verse: v, Position: 1, Text: "wisdom"})
	}
	comp, err := verse.Compile(words)
	if err != nil {
		t.Fatal(err)
	}
	s, err := store.Create(filepath.Join(t.TempDir(), "cap.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.SaveCompilation(books.Canonical(), comp); err != nil {
		t.Fatal(err)
	}
	r := NewResolver(s, books.Canonical())

	results, err := r.Resolve("proverbs")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != MaxResults {
		t.Fatalf("got %d results, want exactly %d", len(results), MaxResults)
	}
	if results[0].VerseID != verse.EncodeID(20, 1, 1) {
		t.Errorf("first result = %d, want %d", results[0].VerseID, verse.EncodeID(20, 1, 1))
	}
	if last := results[len(results)-1].VerseID; last != verse.EncodeID(20, 1, MaxResults) {
		t.Errorf("last result = %d, want %d", last, verse.EncodeID(20, 1, MaxResults))
	}
}

func TestSnippetTruncation(t *testing.T) {
	r := testResolver(t)

	results, err := r.Resolve("psalms 119:105")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	snip := results[0].Snippet
	if !strings.HasSuffix(snip, "...") {
		t.Errorf("long snippet should be truncated: %q", snip)
	}
	if len([]rune(snip)) > snippetRunes+3 {
		t.Errorf("snippet too long: %d runes", len([]rune(snip)))
	}
}

func TestSnippet(t *testing.T) {
	short := "In the beginning"
	if got := snippet(short); got != short {
		t.Errorf("snippet(%q) = %q", short, got)
	}

	long := strings.Repeat("word ", 64)
	got := snippet(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("snippet should end with ellipsis: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("snippet should not contain double spaces: %q", got)
	}
}
