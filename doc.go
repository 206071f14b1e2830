// Package stockmarket provides the types and functions modelling the
// Global Beverage Corporation Exchange: a small catalog of tradable
// securities, an append-only trade ledger, and the valuation metrics
// derived from both.
//
// The core functionalities include:
//   - Security Catalog: an immutable table of reference data (type, last
//     dividend, fixed dividend, par value) keyed by symbol.
//   - Trade Ledger: recording buy and sell trades with insertion
//     timestamps, and selecting the subset falling inside a trailing
//     time window.
//   - Metrics Engine: a stateless engine computing dividend yield, P/E
//     ratio, volume-weighted stock price, and the geometric all-share
//     index from the ledger and the catalog.
//   - Data Codecs: encoding and decoding of catalogs and trade journals
//     to and from a human-readable JSONL format, plus an importer for
//     vendor reference-data exports.
//
// This package serves as the foundational logic for the `gbce`
// command-line tool; the cmd package provides the presentation layer on
// top of it.
package stockmarket
