// Package cmd implements the folio command-line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/msanjuan/folio"
)

// Register registers all folio subcommands on the commander.
// The main package calls Register() and then Execute() on the selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")
	c.Register(&classifyCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// As a CLI the application is short-lived, so file locations are plain
// global flags.

var marketFile = flag.String("market-file", "market.jsonl", "Path to the market snapshot file (JSONL format)")
var holdingsFile = flag.String("holdings-file", "holdings.jsonl", "Path to the holdings file (JSONL format)")

// DecodeMarketFile loads the market snapshot from the configured path.
// A missing file yields an empty market with a warning, not an error.
func DecodeMarketFile() (*folio.Market, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: market file %q does not exist, starting empty", *marketFile)
		return folio.NewMarket(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening market file %q: %w", *marketFile, err)
	}
	defer f.Close()
	return folio.DecodeMarket(*marketFile, f)
}

// DecodeHoldingsFile loads the recorded positions from the configured
// path. A missing file means no positions.
func DecodeHoldingsFile() ([]folio.Holding, error) {
	f, err := os.Open(*holdingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening holdings file %q: %w", *holdingsFile, err)
	}
	defer f.Close()
	return folio.DecodeHoldings(*holdingsFile, f)
}
