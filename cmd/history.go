package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/msanjuan/folio/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	ticker string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the recorded price history of a security" }
func (*historyCmd) Usage() string {
	return `folio history -s <ticker>

  Displays every recorded closing price for a security, oldest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "s", "", "security ticker to report on")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.HistoryMarkdown(sec))

	return subcommands.ExitSuccess
}
