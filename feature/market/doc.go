// Package market aggregates uploaded listings and sales and serves them back.
//
// # Records
//
// Data is kept per item and datacenter: every world of a datacenter shares one
// MarketRecord and one HistoryRecord, each entry tagged with its world. Worlds
// that belong to no datacenter get records of their own (see KeyFor).
//
// # Writes
//
// ApplyListings replaces the uploading world's slice of listings and re-sorts
// the record by unit price. ApplyHistory appends sales and keeps the newest
// HistoryStoreLimit of them. Both run under a per-record lock inside a
// transaction that also row-locks the record on MySQL.
//
// # Reads
//
// CurrentState and History answer multi-item queries for a world or a
// datacenter. Missing items become empty placeholders listed in
// UnresolvedItems, and a single requested item is returned as a bare document
// (Response.Body). Uploader and source attribution are stripped, and creator
// hashes equal to the "no creator" sentinels are hidden with isCrafted false.
package market
