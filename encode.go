package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file handles the human-readable persistence format used by the CLI:
// JSONL, one instrument (or holding) per line, so the files diff cleanly
// and can live in a private git repo. It is the tool's input boundary; the
// analytics core never touches a file.

// jsecurity is the persisted form of a security, one JSON object per line.
type jsecurity struct {
	Ticker      string           `json:"ticker"`
	ID          string           `json:"id"`
	Currency    string           `json:"currency"`
	Description string           `json:"description,omitempty"`
	Prices      []PricePoint     `json:"prices,omitempty"`
	Composition *FundComposition `json:"composition,omitempty"`
}

// jholding is the persisted form of a recorded position.
type jholding struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"quantity"`
}

// DecodeMarket parses a JSONL market snapshot. filename is for error
// messages only.
func DecodeMarket(filename string, r io.Reader) (*Market, error) {
	m := NewMarket()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var js jsecurity
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}

		id, err := ParseID(js.ID)
		if err != nil {
			return nil, fmt.Errorf("format error in %q for ticker %q: %w", filename, js.Ticker, err)
		}
		sec := NewSecurity(id, js.Ticker, js.Currency, js.Description)
		for _, p := range js.Prices {
			sec.Prices().Append(p.On, p.Price)
		}
		sec.SetComposition(js.Composition)
		if err := m.Add(sec); err != nil {
			return nil, fmt.Errorf("format error in %q: %w", filename, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return m, nil
}

// EncodeMarket writes the market as JSONL, securities in ticker order so
// the output is stable.
func EncodeMarket(w io.Writer, m *Market) error {
	enc := json.NewEncoder(w)
	for sec := range m.Securities() {
		js := jsecurity{
			Ticker:      sec.Ticker(),
			ID:          sec.ID().String(),
			Currency:    sec.Currency(),
			Description: sec.Description(),
			Composition: sec.Composition(),
		}
		for on, price := range sec.Prices().Values() {
			js.Prices = append(js.Prices, PricePoint{On: on, Price: price})
		}
		if err := enc.Encode(js); err != nil {
			return fmt.Errorf("encoding security %q: %w", sec.Ticker(), err)
		}
	}
	return nil
}

// DecodeHoldings parses a JSONL holdings file. filename is for error
// messages only.
func DecodeHoldings(filename string, r io.Reader) ([]Holding, error) {
	var holdings []Holding
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jh jholding
		if err := json.Unmarshal(line, &jh); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}
		holdings = append(holdings, Holding{Ticker: jh.Ticker, Quantity: jh.Quantity})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return holdings, nil
}

// EncodeHoldings writes holdings as JSONL, one position per line.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	enc := json.NewEncoder(w)
	for _, h := range holdings {
		if err := enc.Encode(jholding{Ticker: h.Ticker, Quantity: h.Quantity}); err != nil {
			return fmt.Errorf("encoding holding %q: %w", h.Ticker, err)
		}
	}
	return nil
}
