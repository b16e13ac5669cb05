package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aglyzov/go-mktrie/counter"
)

type NgramsCmd struct {
	Input

	Top int `short:"k" help:"Number of n-grams to print, all if negative" default:"10"`
}

// Run prints the most frequent n-grams of all files together.
func (cmd *NgramsCmd) Run(ctx *Context) error {
	total := counter.New[string]()
	for _, file := range cmd.Files {
		ctr, _, err := cmd.Count(ctx, file)
		if err != nil {
			return err
		}
		total.Merge(ctr)
	}

	out := newTable(ctx)
	out.AppendHeader(table.Row{"#", "N-gram", "Count"})
	for i, c := range total.Top(cmd.Top) {
		out.AppendRow(table.Row{i + 1, strings.Join(c.Keys, " "), c.Count})
	}
	if out.Length() != 0 {
		out.Render()
	}
	return nil
}

type StatsCmd struct {
	Input
}

// Run prints word and n-gram counts of every file and of all files together.
func (cmd *StatsCmd) Run(ctx *Context) error {
	out := newTable(ctx)
	out.AppendHeader(table.Row{"File", "Words", "Distinct", "Total", "Nodes"})

	total, words := counter.New[string](), 0
	for _, file := range cmd.Files {
		ctr, n, err := cmd.Count(ctx, file)
		if err != nil {
			return err
		}
		out.AppendRow(table.Row{file, n, ctr.Len(), ctr.Total(), ctr.Nodes()})
		total.Merge(ctr)
		words += n
	}
	out.AppendFooter(table.Row{"all", words, total.Len(), total.Total(), total.Nodes()})
	out.Render()

	return nil
}

func newTable(ctx *Context) table.Writer {
	out := table.NewWriter()
	out.SetOutputMirror(ctx.Out)
	out.SetStyle(table.StyleLight)
	return out
}
