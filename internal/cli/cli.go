// Package cli implements the mkcount command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/aglyzov/go-mktrie/trie"
)

// Context is passed to every command's Run method.
type Context struct {
	Out    io.Writer
	Logger *slog.Logger
}

// CLI is the kong grammar of mkcount.
type CLI struct {
	Verbose bool `short:"v" help:"Log diagnostics to stderr"`

	Ngrams NgramsCmd `cmd:"" help:"Print the most frequent word n-grams"`
	Stats  StatsCmd  `cmd:"" help:"Print n-gram statistics per file"`
}

// Context builds the run context and routes the library logs to stderr.
func (c *CLI) Context(stdout, stderr io.Writer) *Context {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	trie.SetLogHandler(handler)

	return &Context{
		Out:    stdout,
		Logger: slog.New(handler),
	}
}
