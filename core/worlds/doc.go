// Package worlds maps user supplied world and datacenter tokens onto a
// canonical Selector.
//
// # Tables
//
// The world-ID to world-name table and the datacenter membership table are
// loaded once at startup from the reference data source (see core/reference)
// and are read-only afterwards. Refreshing them means restarting the process.
//
// # Resolution
//
//   - "74"        -> ByWorld(74), no lookup
//   - "gilgamesh" -> ByWorld(63), after casing normalization
//   - "Aether"    -> ByDataCenter("Aether"), unknown names pass through verbatim
//
// Datacenter names are not enumerable from the world table, so an unknown
// token is never an error.
package worlds
