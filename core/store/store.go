// Package store persists the compiled verse set in a single-file SQLite
// database and serves all query-time reads.
//
// The database is written exactly once, by the compile step, and opened
// read-only for serving. It carries the book table, both verse renderings
// and an FTS5 full-text index over the plain rendering. Verse rows are
// keyed by the packed verse identifier, so contiguous references resolve
// to a single BETWEEN range with no join.
package store

import (
	"database/sql"
	"fmt"

	"github.com/versewright/versed/core/books"
	"github.com/versewright/versed/core/errors"
	"github.com/versewright/versed/core/ref"
	"github.com/versewright/versed/core/sqlite"
	"github.com/versewright/versed/core/verse"
)

// Format selects which rendering a lookup returns.
type Format int

const (
	// Plain is the unmarked display text.
	Plain Format = iota
	// Annotated carries <em> markers around translators' interpolations.
	Annotated
)

// Verse is one verse row in the requested rendering.
type Verse struct {
	ID      int
	Book    int
	Chapter int
	Verse   int
	Words   string
}

// BookChapter is one distinct (book, chapter) pair present in the verse
// set.
type BookChapter struct {
	Book    int
	Chapter int
}

// Store wraps the compiled database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE books (
	id            INTEGER PRIMARY KEY,
	name          TEXT    NOT NULL,
	chapter_count INTEGER NOT NULL,
	testament     TEXT    NOT NULL
);
CREATE TABLE verses (
	id      INTEGER PRIMARY KEY,
	book    INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	words   TEXT    NOT NULL
);
CREATE TABLE verses_html (
	id      INTEGER PRIMARY KEY,
	book    INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	words   TEXT    NOT NULL
);
CREATE VIRTUAL TABLE verses_fts USING fts5(
	words,
	book    UNINDEXED,
	chapter UNINDEXED,
	verse   UNINDEXED
);
`

// Create creates a new compiled database at path and installs the schema.
func Create(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "installing schema")
	}
	return &Store{db: db}, nil
}

// Open opens an existing compiled database read-only. A database without
// the full-text index is refused: serving must never start on a partially
// built index.
func Open(path string) (*Store, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	s := &Store{db: db}
	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE name = 'verses_fts'`).Scan(&name)
	if err == sql.ErrNoRows {
		db.Close()
		return nil, errors.NewNotFound("search index", path)
	}
	if err != nil {
		db.Close()
		return nil, errors.NewIO("read", path, err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCompilation writes the book table, both renderings and the
// full-text index in a single transaction. It is the one write path; the
// database is read-only afterwards.
func (s *Store) SaveCompilation(set *books.Set, comp *verse.Compilation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	insBook, err := tx.Prepare(`INSERT INTO books (id, name, chapter_count, testament) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing book insert")
	}
	defer insBook.Close()
	for _, b := range set.All() {
		if _, err := insBook.Exec(b.ID, b.Name, b.Chapters, string(b.Testament)); err != nil {
			return errors.Wrapf(err, "inserting book %d", b.ID)
		}
	}

	insPlain, err := tx.Prepare(`INSERT INTO verses (id, book, chapter, verse, words) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing verse insert")
	}
	defer insPlain.Close()
	insHTML, err := tx.Prepare(`INSERT INTO verses_html (id, book, chapter, verse, words) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing annotated verse insert")
	}
	defer insHTML.Close()
	insFTS, err := tx.Prepare(`INSERT INTO verses_fts (rowid, words, book, chapter, verse) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing index insert")
	}
	defer insFTS.Close()

	for _, v := range comp.Verses {
		if _, err := insPlain.Exec(v.ID, v.Book, v.Chapter, v.Verse, v.Plain); err != nil {
			return errors.Wrapf(err, "inserting verse %s", v.Ref())
		}
		if _, err := insHTML.Exec(v.ID, v.Book, v.Chapter, v.Verse, v.Annotated); err != nil {
			return errors.Wrapf(err, "inserting annotated verse %s", v.Ref())
		}
		// The index only ever sees the plain rendering.
		if _, err := insFTS.Exec(v.ID, v.Plain, v.Book, v.Chapter, v.Verse); err != nil {
			return errors.Wrapf(err, "indexing verse %s", v.Ref())
		}
	}

	return tx.Commit()
}

// VersesByRef returns the verses addressed by a reference, ascending by
// verse identifier. A reference addressing no existing verse returns an
// empty slice, not an error.
func (s *Store) VersesByRef(r *ref.Reference, format Format) ([]Verse, error) {
	table := "verses"
	if format == Annotated {
		table = "verses_html"
	}
	lo, hi := r.IDRange()
	rows, err := s.db.Query(
		fmt.Sprintf(`SELECT id, book, chapter, verse, words FROM %s WHERE id BETWEEN ? AND ? ORDER BY id`, table),
		lo, hi,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying verses")
	}
	defer rows.Close()

	var out []Verse
	for rows.Next() {
		var v Verse
		if err := rows.Scan(&v.ID, &v.Book, &v.Chapter, &v.Verse, &v.Words); err != nil {
			return nil, errors.Wrap(err, "scanning verse")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Books returns the stored book table in canonical order.
func (s *Store) Books() ([]books.Book, error) {
	rows, err := s.db.Query(`SELECT id, name, chapter_count, testament FROM books ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying books")
	}
	defer rows.Close()

	var out []books.Book
	for rows.Next() {
		var b books.Book
		var testament string
		if err := rows.Scan(&b.ID, &b.Name, &b.Chapters, &testament); err != nil {
			return nil, errors.Wrap(err, "scanning book")
		}
		b.Testament = books.Testament(testament)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Chapters returns every distinct (book, chapter) pair present in the
// verse set, in canonical order.
func (s *Store) Chapters() ([]BookChapter, error) {
	rows, err := s.db.Query(`SELECT DISTINCT book, chapter FROM verses ORDER BY book, chapter`)
	if err != nil {
		return nil, errors.Wrap(err, "querying chapters")
	}
	defer rows.Close()

	var out []BookChapter
	for rows.Next() {
		var bc BookChapter
		if err := rows.Scan(&bc.Book, &bc.Chapter); err != nil {
			return nil, errors.Wrap(err, "scanning chapter")
		}
		out = append(out, bc)
	}
	return out, rows.Err()
}

// VerseCount returns the number of compiled verses.
func (s *Store) VerseCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting verses")
	}
	return n, nil
}
