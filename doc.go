// Package bkper provides the domain types and client used by the `bkper`
// command-line tool to work with the Bkper double-entry bookkeeping
// platform.
//
// The core functionalities include:
//   - Book Management: books carry the formatting rules (decimal
//     separator, fraction digits, date pattern) that govern how amounts
//     and dates are rendered for humans.
//   - Transactions: drafts and posted transactions with descriptions,
//     exact decimal amounts, account references, attachments, remote ids,
//     urls and custom properties.
//   - Merge Reconciliation: a pure, deterministic algorithm that combines
//     two duplicate transactions into one, deciding which record survives,
//     fusing their metadata without loss or duplication, and handling
//     monetary conflicts without ever silently changing a ledger amount.
//   - API Client: a thin HTTP client for the Bkper REST API, passed
//     explicitly to callers rather than held as process-wide state.
//
// This package serves as the foundational logic for the `bkper`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth: the book.
package bkper
