// Package lifeplan projects the finances of a household over a multi-decade
// plan: account balances, asset holdings, dividends and the year a financial
// independence (FIRE) target is reached.
//
// The core functionalities include:
//   - Transactions: persisted Records are decoded into a closed set of
//     variants (Expense, Income, Transfer, Buy, Sell, Dividend) and
//     collected in a Book, one chronological list per plan year.
//   - Classification: Classify gives the signed yearly effect of a
//     transaction on one account or one asset. Every projector relies on it.
//   - Projectors: ProjectAccount, TrackHolding and AccumulateDividends
//     compute year-indexed series; NetWorth and DetectGoal combine them.
//   - Reports: Aggregate ranks transactions by category or event.
//
// Everything is a pure function of its inputs: calling a projector twice
// yields the same series, inputs are never modified, and conditions such as
// missing prices or malformed records are returned as Diagnostics instead of
// aborting the projection.
//
// This package serves as the foundational logic for the `lpc` command-line
// tool.
package lifeplan
