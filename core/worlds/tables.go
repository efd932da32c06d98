package worlds

import (
	"sort"
	"strconv"
)

// World is a single game world.
type World struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location is the storage placement of a world: its display name and the
// datacenter whose record holds its data. DCName is empty for worlds outside
// any datacenter, whose records are keyed by WorldID instead.
type Location struct {
	WorldID   int    `json:"worldID"`
	WorldName string `json:"worldName"`
	DCName    string `json:"dcName,omitempty"`
}

// Tables holds the reference lookups. It is immutable after construction.
type Tables struct {
	names       map[int]string
	ids         map[string]int
	dcOfWorld   map[string]string
	dataCenters map[string][]string
}

// NewTables builds the lookup tables from a world-ID to name map and a
// datacenter to member world names map.
func NewTables(worldNames map[int]string, dataCenters map[string][]string) *Tables {
	t := &Tables{
		names:       make(map[int]string, len(worldNames)),
		ids:         make(map[string]int, len(worldNames)),
		dcOfWorld:   make(map[string]string),
		dataCenters: make(map[string][]string, len(dataCenters)),
	}
	for id, name := range worldNames {
		if name == "" {
			continue
		}
		t.names[id] = name
		t.ids[name] = id
	}
	for dc, members := range dataCenters {
		list := make([]string, len(members))
		copy(list, members)
		sort.Strings(list)
		t.dataCenters[dc] = list
		for _, w := range members {
			t.dcOfWorld[w] = dc
		}
	}
	return t
}

// WorldName returns the display name of a world.
func (t *Tables) WorldName(id int) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// WorldID returns the ID of a world by its exact display name.
func (t *Tables) WorldID(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// DataCenterOf returns the datacenter a world belongs to.
func (t *Tables) DataCenterOf(worldName string) (string, bool) {
	dc, ok := t.dcOfWorld[worldName]
	return dc, ok
}

// DataCenterWorlds returns the member world names of a datacenter, sorted.
func (t *Tables) DataCenterWorlds(dc string) []string {
	return t.dataCenters[dc]
}

// Locate returns the storage placement of a world. Worlds missing from the
// name table are named by their numeric ID and are not grouped.
func (t *Tables) Locate(worldID int) Location {
	name, ok := t.names[worldID]
	if !ok {
		return Location{WorldID: worldID, WorldName: strconv.Itoa(worldID)}
	}
	dc := t.dcOfWorld[name]
	return Location{WorldID: worldID, WorldName: name, DCName: dc}
}

// Worlds returns all known worlds ordered by ID.
func (t *Tables) Worlds() []World {
	out := make([]World, 0, len(t.names))
	for id, name := range t.names {
		out = append(out, World{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
