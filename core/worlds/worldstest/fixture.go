// Package worldstest provides reference tables for tests.
package worldstest

import "market-board/core/worlds"

// WorldCSV is a world table in the reference CSV layout.
const WorldCSV = `key,0,1
#,InternalName,Name
int32,str,str
0,,
21,Ravana,Ravana
23,Asura,Asura
34,Brynhildr,Brynhildr
40,Jenova,Jenova
54,Faerie,Faerie
63,Gilgamesh,Gilgamesh
65,Midgardsormr,Midgardsormr
74,Coeurl,Coeurl
79,Cactuar,Cactuar
99,Sargatanas,Sargatanas
`

// DataCentersJSON is a datacenter table matching WorldCSV. Asura is left
// ungrouped on purpose.
const DataCentersJSON = `{
  "Aether": ["Faerie", "Gilgamesh", "Midgardsormr", "Sargatanas", "Jenova", "Cactuar"],
  "Primal": ["Brynhildr", "Coeurl"],
  "Materia": ["Ravana"]
}`

// Tables returns lookup tables built from the fixtures.
func Tables() *worlds.Tables {
	names, err := worlds.ParseWorldCSV([]byte(WorldCSV))
	if err != nil {
		panic(err)
	}
	dcs, err := worlds.ParseDataCenters([]byte(DataCentersJSON))
	if err != nil {
		panic(err)
	}
	return worlds.NewTables(names, dcs)
}

// Resolver returns a resolver over Tables.
func Resolver() *worlds.Resolver {
	return worlds.NewResolver(Tables())
}
