// Package folio provides the analytics core of a personal investment
// dashboard: users record holdings in funds and ETFs identified by ISIN or
// symbol, external collaborators supply price histories and fund composition
// breakdowns, and this package turns them into presentable judgments.
//
// The two computations at its heart are:
//   - Performance: trailing returns over fixed lookback windows (1 month,
//     3 months, 6 months, 1 year, year-to-date and since inception) over
//     sparse, irregular price series.
//   - Classification: a heuristic mapping of a fund's allocation and
//     regional weights into an asset-class and a region bucket.
//
// Both are pure and deterministic: every output depends only on the given
// input, every missing-data case resolves to an explicit unavailable value
// or a conservative default rather than an error. This makes results safe
// to cache and trivial to render, a missing figure shows as a placeholder.
//
// The surrounding types (Security, Market, Holding, Summary) model the
// in-memory data the dashboard operates on, and the encode functions read
// and write the JSONL files used by the folio command-line tool.
package folio
