package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/aglyzov/go-mktrie/counter"
)

// Input holds the flags shared by the commands that read text files.
type Input struct {
	Files []string `arg:"" type:"existingfile" help:"Text files to read"`
	Size  int      `short:"n" help:"Number of words in an n-gram" default:"2"`
	Sep   string   `help:"Regexp separating words (default: white space)"`

	sep *regexp.Regexp
}

// Validate is called by kong after parsing.
func (in *Input) Validate() error {
	if in.Size < 1 {
		return fmt.Errorf("--size must be positive, got %d", in.Size)
	}
	if in.Sep != "" {
		re, err := regexp.Compile(in.Sep)
		if err != nil {
			return fmt.Errorf("--sep: %w", err)
		}
		in.sep = re
	}
	return nil
}

// Count tallies the n-grams of a single file.
func (in *Input) Count(ctx *Context, path string) (*counter.Counter[string], int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	ctr := counter.New[string]()
	words, err := in.count(ctr, f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	ctx.Logger.Debug("counted", "file", path, "words", words, "ngrams", ctr.Len(), "nodes", ctr.Nodes())

	return ctr, words, nil
}

func (in *Input) count(ctr *counter.Counter[string], r io.Reader) (int, error) {
	size := max(in.Size, 1)
	window := make([]string, 0, size)
	words := 0

	err := in.tokens(r, func(word string) {
		words++
		if len(window) == size {
			copy(window, window[1:])
			window = window[:size-1]
		}
		window = append(window, word)
		if len(window) == size {
			ctr.Inc(window)
		}
	})
	return words, err
}

// tokens calls fn for every normalized word of r.
func (in *Input) tokens(r io.Reader, fn func(string)) error {
	fold := cases.Fold()
	emit := func(raw string) {
		if word := strings.TrimFunc(raw, unicode.IsPunct); word != "" {
			fn(fold.String(word))
		}
	}

	scanner := bufio.NewScanner(r)
	if in.sep == nil {
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			emit(scanner.Text())
		}
		return scanner.Err()
	}

	for scanner.Scan() {
		for _, raw := range in.sep.Split(scanner.Text(), -1) {
			emit(strings.TrimSpace(raw))
		}
	}
	return scanner.Err()
}
