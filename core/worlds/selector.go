package worlds

import "strconv"

// Selector identifies the scope of a query or index entry: a single world or a
// whole datacenter. The zero value is unscoped. A Selector never carries both a
// world and a datacenter.
type Selector struct {
	worldID int
	dcName  string
	isWorld bool
}

// ByWorld scopes to a single world.
func ByWorld(id int) Selector {
	return Selector{worldID: id, isWorld: true}
}

// ByDataCenter scopes to a datacenter.
func ByDataCenter(name string) Selector {
	return Selector{dcName: name}
}

// WorldID returns the world ID and whether the selector is world scoped.
func (s Selector) WorldID() (int, bool) {
	return s.worldID, s.isWorld
}

// DataCenter returns the datacenter name and whether the selector is datacenter scoped.
func (s Selector) DataCenter() (string, bool) {
	return s.dcName, !s.isWorld && s.dcName != ""
}

// IsZero reports whether the selector is unscoped.
func (s Selector) IsZero() bool {
	return !s.isWorld && s.dcName == ""
}

// String renders the selector for logs.
func (s Selector) String() string {
	switch {
	case s.isWorld:
		return "world:" + strconv.Itoa(s.worldID)
	case s.dcName != "":
		return "dc:" + s.dcName
	default:
		return "all"
	}
}
