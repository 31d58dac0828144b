// Package moneymoved implements the currency-normalization and
// fiscal-aggregation pipeline behind the One for the World "money moved"
// reports.
//
// The pipeline is a pure batch transformation: it fetches daily exchange-rate
// series (package fred), loads payment and pledge feeds (package feed),
// left-joins every payment to the rates active on its date, converts native
// amounts to USD through an explicit per-currency conversion table, buckets
// dates into July-start fiscal years, and derives the KPI reports consumed by
// the presentation layer. Each run reads immutable snapshots and returns a
// fresh Result; no state survives between runs.
package moneymoved
