package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/msanjuan/folio"
	"github.com/msanjuan/folio/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio dashboard summary" }
func (*summaryCmd) Usage() string {
	return `folio summary

  Displays one row per instrument with its latest price, position value,
  trailing returns and fund classification, plus portfolio totals.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding market: %v\n", err)
		return subcommands.ExitFailure
	}
	holdings, err := DecodeHoldingsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := folio.NewSummary(market, holdings)
	printMarkdown(renderer.SummaryMarkdown(summary))

	return subcommands.ExitSuccess
}
