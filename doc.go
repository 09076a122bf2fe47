// Package pnl computes the profit-and-loss decompositions of a trading
// book. The same position and market data is sliced through different
// accounting lenses: realized trading PnL, theoretical PnL, regulatory
// (Volcker) PnL, general-ledger PnL, funding and carry costs, and
// greek-sensitivity approximations.
//
// The core functionalities include:
//   - PnL Engine: a stateless set of pure computations over four
//     caller-owned datasets (trade ledger, position book, market data,
//     risk parameters), recomputed from scratch on every call.
//   - Exact arithmetic: every amount, size and rate is decimal-backed,
//     so results are bit-identical across repeated invocations.
//   - Dataset codecs: decoding and encoding the datasets to and from a
//     human-readable JSONL format.
//   - Feed extraction: lifting mark prices out of arbitrary provider
//     JSON documents with jsonpath expressions.
//
// This package serves as the foundational logic for the `plc`
// command-line tool. Composite views (general ledger, finance) call the
// base computations internally, so every view is derived from a single
// source of truth.
package pnl
