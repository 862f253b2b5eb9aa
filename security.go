package folio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msanjuan/folio/date"
)

// isinRegex checks the basic ISIN structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// symbolRegex checks a plain ticker symbol: alphanumeric, dot or dash allowed.
var symbolRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.\-]*$`)

// ID is the unique identifier of an instrument, either an ISIN (ISO 6166)
// for funds and ETFs that have one, or a plain ticker symbol for everything
// else. An ID that validates as an ISIN is treated as one.
type ID string

// NewISIN validates a string as an ISIN and returns it as an ID.
func NewISIN(s string) (ID, error) {
	if err := ValidateISIN(s); err != nil {
		return "", fmt.Errorf("invalid ISIN: %w", err)
	}
	return ID(s), nil
}

// NewSymbol validates a plain symbol and returns it as an ID.
func NewSymbol(s string) (ID, error) {
	if s == "" {
		return "", fmt.Errorf("invalid symbol: empty")
	}
	if !symbolRegex.MatchString(s) {
		return "", fmt.Errorf("invalid symbol %q: must be alphanumeric with optional '.' or '-'", s)
	}
	return ID(s), nil
}

// ParseID accepts either a valid ISIN or a plain symbol.
func ParseID(s string) (ID, error) {
	if isinRegex.MatchString(s) {
		return NewISIN(s)
	}
	return NewSymbol(s)
}

// ISIN returns the ISIN of the identifier, or "" if the ID is not one.
func (id ID) ISIN() string {
	if ValidateISIN(string(id)) != nil {
		return ""
	}
	return string(id)
}

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// ValidateISIN checks whether a string is a validly formatted ISIN,
// including its check digit. It returns nil if valid.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// Expand letters to their two-digit values, then run the Luhn variation
	// over the resulting digit string.
	var numeric strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numeric.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numeric.WriteRune(char)
		}
	}

	sum := 0
	double := true
	digits := numeric.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if double {
			digit *= 2
		}
		sum += digit/10 + digit%10
		double = !double
	}

	expected := (10 - sum%10) % 10
	actual := int(isin[11] - '0')
	if expected != actual {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expected, actual)
	}
	return nil
}

// Security represents one tracked instrument: a fund or ETF with its
// identity, price history, and, when the provider reports one, its
// composition breakdown.
type Security struct {
	id          ID
	ticker      string // short human-friendly name used across the tool
	currency    string // the currency prices are quoted in
	description string
	prices      date.History[float64]
	composition *FundComposition
}

// NewSecurity creates a security with an empty price history.
func NewSecurity(id ID, ticker, currency, description string) *Security {
	return &Security{id: id, ticker: ticker, currency: currency, description: description}
}

// ID returns the unique identifier of the security.
func (s *Security) ID() ID { return s.id }

// Ticker returns the human-friendly ticker of the security.
func (s *Security) Ticker() string { return s.ticker }

// Currency returns the currency prices are quoted in.
func (s *Security) Currency() string { return s.currency }

// Description returns the user-provided description.
func (s *Security) Description() string { return s.description }

// Prices returns the security's price history, for reading and feeding.
func (s *Security) Prices() *date.History[float64] { return &s.prices }

// Composition returns the fund's composition breakdown, nil when the
// provider reported none.
func (s *Security) Composition() *FundComposition { return s.composition }

// SetComposition records the provider-reported breakdown.
func (s *Security) SetComposition(c *FundComposition) { s.composition = c }

// Performance computes the trailing returns of this security from its
// price history.
func (s *Security) Performance() PerformanceMetrics {
	return computeMetrics(&s.prices)
}

// Classification buckets this security from its composition breakdown.
func (s *Security) Classification() Classification {
	return Classify(s.composition)
}
