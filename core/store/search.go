package store

import (
	"strings"

	"github.com/versewright/versed/core/errors"
)

// Hit is one full-text match, best rank first.
type Hit struct {
	VerseID int
	Book    int
	Chapter int
	Verse   int
	Words   string
	// Rank is the engine's native bm25 relevance (smaller is better).
	Rank float64
}

// Search runs a full-text query over the plain renderings and returns up
// to limit hits ordered by relevance, ties broken by verse identifier.
//
// The raw query is sanitized before it reaches the engine: surrounding
// whitespace is trimmed and the string is rewritten as quoted terms with
// embedded double quotes escaped by doubling, so user input can never
// produce a malformed MATCH expression. An empty sanitized query returns
// no hits without touching the index.
func (s *Store) Search(query string, limit int) ([]Hit, error) {
	expr := matchExpr(query)
	if expr == "" {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT rowid, book, chapter, verse, words, rank
		 FROM verses_fts WHERE verses_fts MATCH ?
		 ORDER BY rank, rowid LIMIT ?`,
		expr, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying index")
	}
	defer rows.Close()

	var out []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.VerseID, &h.Book, &h.Chapter, &h.Verse, &h.Words, &h.Rank); err != nil {
			return nil, errors.Wrap(err, "scanning hit")
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// matchExpr rewrites a raw query as an FTS5 MATCH expression. Quoted
// substrings become phrase terms; everything else becomes one keyword
// term per word. Every term is emitted as a quoted string literal, which
// neutralizes FTS5 operator syntax in user input.
func matchExpr(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var terms []string
	for i, seg := range strings.Split(raw, `"`) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if i%2 == 1 {
			// Inside a quote pair: a single phrase. An unbalanced
			// trailing quote still lands here, which degrades to a
			// phrase over the remainder rather than an engine error.
			terms = append(terms, quoteTerm(seg))
			continue
		}
		for _, w := range strings.Fields(seg) {
			terms = append(terms, quoteTerm(w))
		}
	}
	return strings.Join(terms, " ")
}

// quoteTerm wraps a term in an FTS5 string literal, doubling any embedded
// double quote.
func quoteTerm(t string) string {
	return `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
}
