package worlds

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Resolver turns request tokens into Selectors.
type Resolver struct {
	tables *Tables
}

// NewResolver creates a resolver over the loaded tables.
func NewResolver(tables *Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Tables exposes the underlying lookup tables.
func (r *Resolver) Tables() *Tables {
	return r.tables
}

// Resolve maps a world ID, world name or datacenter name onto a Selector.
// Integers are taken as world IDs without lookup. Other tokens are matched
// against the world table after casing normalization and fall back to a
// datacenter selector carrying the token verbatim.
func (r *Resolver) Resolve(token string) Selector {
	token = strings.TrimSpace(token)
	if token == "" {
		return Selector{}
	}
	if id, err := strconv.Atoi(token); err == nil {
		return ByWorld(id)
	}
	if id, ok := r.tables.WorldID(normalizeName(token)); ok {
		return ByWorld(id)
	}
	return ByDataCenter(token)
}

// ResolveScope combines a world token and a datacenter hint coming from two
// separate parameters. A world that resolves to a non-zero ID wins and the hint
// is discarded; a world resolving to 0 yields the hint instead.
func (r *Resolver) ResolveScope(worldToken, dcName string) Selector {
	dcName = strings.TrimSpace(dcName)
	world := r.Resolve(worldToken)

	if id, ok := world.WorldID(); ok {
		switch {
		case id != 0:
			return world
		case dcName != "":
			return ByDataCenter(dcName)
		default:
			return Selector{}
		}
	}
	if dcName != "" {
		return ByDataCenter(dcName)
	}
	return world
}

// Locate returns the storage placement of a world.
func (r *Resolver) Locate(worldID int) Location {
	return r.tables.Locate(worldID)
}

// normalizeName upper-cases the first letter and lower-cases the rest.
func normalizeName(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
