// Package stats tracks which items were updated recently and how many uploads
// were accepted per day.
//
// Touch upserts one row per (item, world). The most and least recently updated
// rankings are read through a TTL cache keyed by (kind, scope, size); entries
// only expire, they are never invalidated, so rankings may lag uploads by up to
// stats.cache_ttl_seconds. Daily counts are bucketed by UTC calendar day.
package stats
