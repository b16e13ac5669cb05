package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/aglyzov/go-mktrie/internal/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("mkcount"),
		kong.Description("Counts word n-grams of text files."),
		kong.UsageOnError(),
	)
	err := ctx.Run(c.Context(os.Stdout, os.Stderr))
	ctx.FatalIfErrorf(err)
}
