package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/msanjuan/folio"
	"github.com/msanjuan/folio/agent"
	"github.com/msanjuan/folio/renderer"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the portfolio assistant"
}
func (*assistCmd) Usage() string {
	return `folio assist [question]

  Start an interactive session with the AI assistant. The assistant is
  primed with the current portfolio summary and answers questions about
  it. Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	summary := renderer.SummaryMarkdown(folio.NewSummary(market, holdings))
	analyst := agent.NewAnalyst(summary)
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
