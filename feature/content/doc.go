// Package content maps hashed character and retainer IDs to display names.
//
// Raw content IDs are hashed with sha256 before they are stored. Writes are
// plain inserts: Observe skips IDs it already knows, but two concurrent
// observers can both insert, and Get then returns the oldest record.
package content
