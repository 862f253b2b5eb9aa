package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/msanjuan/folio/renderer"
)

// classifyCmd holds the flags for the 'classify' subcommand.
type classifyCmd struct {
	ticker string
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "display the asset class and region of a fund" }
func (*classifyCmd) Usage() string {
	return `folio classify -s <ticker>

  Displays the inferred asset class and dominant region for a fund,
  together with the composition breakdown it was derived from.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "s", "", "security ticker to report on")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "-s <ticker> is required")
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding market: %v\n", err)
		return subcommands.ExitFailure
	}

	sec := market.Get(c.ticker)
	if sec == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown security %q\n", c.ticker)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ClassificationMarkdown(c.ticker, sec.Composition(), sec.Classification()))

	return subcommands.ExitSuccess
}
