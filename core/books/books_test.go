package books

import (
	"strings"
	"testing"
)

func TestCanonicalTable(t *testing.T) {
	s := Canonical()

	if s.Len() != 66 {
		t.Fatalf("Len() = %d, want 66", s.Len())
	}

	all := s.All()
	for i, b := range all {
		if b.ID != i+1 {
			t.Errorf("book %d has id %d, want %d", i, b.ID, i+1)
		}
		if b.Chapters < 1 {
			t.Errorf("book %q has chapter count %d", b.Name, b.Chapters)
		}
		if b.Testament != Old && b.Testament != New {
			t.Errorf("book %q has testament %q", b.Name, b.Testament)
		}
	}

	if all[0].Name != "Genesis" || all[65].Name != "Revelation" {
		t.Errorf("unexpected canonical ordering: %q ... %q", all[0].Name, all[65].Name)
	}
	if all[38].Testament != Old || all[39].Testament != New {
		t.Errorf("testament boundary should fall between Malachi and Matthew")
	}
}

func TestAliasCompleteness(t *testing.T) {
	s := Canonical()

	// Every configured alias resolves back to its own book.
	for _, b := range s.All() {
		names := append([]string{b.Name}, b.Aliases...)
		for _, a := range names {
			got, ok := s.Resolve(a)
			if !ok {
				t.Errorf("alias %q did not resolve", a)
				continue
			}
			if got.ID != b.ID {
				t.Errorf("alias %q resolved to %q, want %q", a, got.Name, b.Name)
			}
		}
	}
}

func TestResolveNormalization(t *testing.T) {
	s := Canonical()

	tests := []struct {
		in   string
		want int
	}{
		{"1tim", 54},
		{"1 Tim", 54},
		{" i timothy ", 54},
		{"1TIMOTHY", 54},
		{"  Song   of  Solomon ", 22},
		{"JHN", 43},
		{"psalms", 19},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, ok := s.Resolve(tt.in)
			if !ok {
				t.Fatalf("Resolve(%q) failed", tt.in)
			}
			if b.ID != tt.want {
				t.Errorf("Resolve(%q) = %d (%s), want %d", tt.in, b.ID, b.Name, tt.want)
			}
		})
	}

	if _, ok := s.Resolve("atlantis"); ok {
		t.Errorf("Resolve should fail for unknown book")
	}
}

func TestMatchPrefix(t *testing.T) {
	s := Canonical()

	tests := []struct {
		in       string
		wantID   int
		wantRest string
		wantOK   bool
	}{
		{"1tim 2", 54, "2", true},
		{"1 timothy 3:16-18", 54, "3:16-18", true},
		{"i timothy 2", 54, "2", true},
		{"song of solomon 1", 22, "1", true},
		{"John 3:16", 43, "3:16", true},
		{"jhn.3.16", 43, "3.16", true},
		{"john:3:16", 43, "3:16", true},
		{"genesis", 1, "", true},
		{"PSALMS   119", 19, "119", true},
		{"for god so loved", 0, "", false},
		{"", 0, "", false},
		{"johnson 3", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, rest, ok := s.MatchPrefix(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("MatchPrefix(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if b.ID != tt.wantID {
				t.Errorf("MatchPrefix(%q) book = %d (%s), want %d", tt.in, b.ID, b.Name, tt.wantID)
			}
			if rest != tt.wantRest {
				t.Errorf("MatchPrefix(%q) rest = %q, want %q", tt.in, rest, tt.wantRest)
			}
		})
	}
}

func TestLongestPrefixWins(t *testing.T) {
	s := Canonical()

	// "1 timothy" and "1 tim" are both aliases; the longer one must win so
	// the remainder holds only numerals.
	b, rest, ok := s.MatchPrefix("1 timothy 2")
	if !ok || b.ID != 54 {
		t.Fatalf("MatchPrefix(\"1 timothy 2\") = %v, %v", b, ok)
	}
	if rest != "2" {
		t.Errorf("rest = %q, want %q", rest, "2")
	}

	// "judges" must not be claimed by Jude's "jud" alias.
	b, rest, ok = s.MatchPrefix("judges 2")
	if !ok || b.Name != "Judges" {
		t.Fatalf("MatchPrefix(\"judges 2\") resolved to %v", b)
	}
	if rest != "2" {
		t.Errorf("rest = %q, want %q", rest, "2")
	}
}

func TestNewSetRejectsDuplicateAliases(t *testing.T) {
	_, err := NewSet([]Book{
		{ID: 1, Name: "Genesis", Chapters: 50, Testament: Old, Aliases: []string{"gen"}},
		{ID: 2, Name: "Exodus", Chapters: 40, Testament: Old, Aliases: []string{"gen"}},
	})
	if err == nil {
		t.Fatal("NewSet should reject an alias shared by two books")
	}
	if !strings.Contains(err.Error(), "gen") {
		t.Errorf("error should name the duplicate alias: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  1  Tim  ", "1 tim"},
		{"JOHN", "john"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
