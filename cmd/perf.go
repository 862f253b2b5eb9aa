package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/msanjuan/folio/renderer"
)

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	ticker string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display trailing returns for one security" }
func (*perfCmd) Usage() string {
	return `folio perf -s <ticker>

  Displays the 1M, 3M, 6M, 1Y, YTD and Total returns for a security.
  Windows without enough price history are reported as n/a.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "s", "", "security ticker to report on")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.MetricsMarkdown(c.ticker, sec.Performance()))

	return subcommands.ExitSuccess
}
