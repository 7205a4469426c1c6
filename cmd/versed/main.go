// Command versed compiles a word corpus into a verse database and
// answers reference and full-text queries against it.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/versewright/versed/core/books"
	"github.com/versewright/versed/core/corpus"
	"github.com/versewright/versed/core/ref"
	"github.com/versewright/versed/core/search"
	"github.com/versewright/versed/core/sitemap"
	"github.com/versewright/versed/core/sqlite"
	"github.com/versewright/versed/core/store"
	"github.com/versewright/versed/core/verse"
	"github.com/versewright/versed/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for versed.
var CLI struct {
	// Global flags
	DB        string `name:"db" default:"versed.db" help:"Verse database path" type:"path"`
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Compile CompileCmd `cmd:"" help:"Compile a word corpus into a verse database"`
	Lookup  LookupCmd  `cmd:"" help:"Look up verses by reference"`
	Search  SearchCmd  `cmd:"" help:"Resolve a query (reference or full text)"`
	Sitemap SitemapCmd `cmd:"" help:"Print every navigation path in the compiled verse set"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func initLogging() {
	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

// CompileCmd builds the verse database from a corpus file.
type CompileCmd struct {
	Corpus string `arg:"" help:"Path to corpus file (XML, optionally xz-compressed)" type:"existingfile"`
	Force  bool   `help:"Overwrite an existing database"`
}

func (c *CompileCmd) Run() error {
	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	logging.DebugContext(ctx, "database driver",
		"name", sqlite.DriverName(),
		"type", sqlite.DriverType(),
	)

	logging.CompileStage(ctx, "load", "corpus", c.Corpus)
	words, err := corpus.LoadFile(c.Corpus)
	if err != nil {
		logging.CompileError(ctx, "load", err)
		return err
	}

	logging.CompileStage(ctx, "compile", "words", len(words))
	comp, err := verse.Compile(words)
	if err != nil {
		logging.CompileError(ctx, "compile", err)
		return err
	}

	logging.CompileStage(ctx, "store", "db", CLI.DB)
	if c.Force {
		logging.WarnContext(ctx, "overwriting existing database", "db", CLI.DB)
		if err := removeIfExists(CLI.DB); err != nil {
			logging.CompileError(ctx, "store", err)
			return err
		}
	}
	s, err := store.Create(CLI.DB)
	if err != nil {
		logging.CompileError(ctx, "store", err)
		return err
	}
	defer s.Close()
	if err := s.SaveCompilation(books.Canonical(), comp); err != nil {
		logging.CompileError(ctx, "store", err)
		return err
	}

	logging.CompileStage(ctx, "done",
		"verses", len(comp.Verses),
		"digest", comp.Digest,
	)
	fmt.Printf("Compiled %d verses into %s\n", len(comp.Verses), CLI.DB)
	fmt.Printf("  Digest: %s\n", comp.Digest)
	fmt.Printf("  Driver: %s\n", sqlite.DriverName())
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LookupCmd prints the verses a reference addresses.
type LookupCmd struct {
	Reference string `arg:"" help:"Verse reference, e.g. 'John 3:16-17' or '1tim 2'"`
	HTML      bool   `help:"Print the annotated rendering instead of plain text"`
}

func (c *LookupCmd) Run() error {
	s, err := store.Open(CLI.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	r, ok := ref.Resolve(books.Canonical(), c.Reference)
	if !ok {
		return fmt.Errorf("not a recognizable reference: %q", c.Reference)
	}
	format := store.Plain
	if c.HTML {
		format = store.Annotated
	}
	verses, err := s.VersesByRef(r, format)
	if err != nil {
		return err
	}

	fmt.Println(r.String())
	for _, v := range verses {
		fmt.Printf("  %d:%d  %s\n", v.Chapter, v.Verse, v.Words)
	}
	if len(verses) == 0 {
		fmt.Println("  (no verses)")
	}
	return nil
}

// SearchCmd resolves a query the way the public query surface does:
// reference first, full text second.
type SearchCmd struct {
	Query string `arg:"" help:"Reference or keyword query"`
}

func (c *SearchCmd) Run() error {
	s, err := store.Open(CLI.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	resolver := search.NewResolver(s, books.Canonical())
	start := time.Now()
	results, err := resolver.Resolve(c.Query)
	if err != nil {
		return err
	}
	topPath := ""
	if len(results) > 0 {
		topPath = results[0].Path
	}
	logging.QueryEvent(c.Query, topPath, len(results), time.Since(start))

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, res := range results {
		fmt.Printf("%s  (%s)\n", res.Label, res.Path)
		fmt.Printf("  %s\n", res.Snippet)
	}
	return nil
}

// SitemapCmd prints the navigation path list.
type SitemapCmd struct{}

func (c *SitemapCmd) Run() error {
	s, err := store.Open(CLI.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	paths, err := sitemap.Paths(s, books.Canonical())
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Printf("versed %s\n", version)
	fmt.Printf("  sqlite: %s (%s, %s)\n", info.DriverName, info.DriverType, info.Package)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("versed"),
		kong.Description("Verse corpus compiler and query resolver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
