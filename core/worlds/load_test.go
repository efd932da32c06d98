package worlds_test

import (
	"context"
	"errors"
	"testing"

	"market-board/core/worlds"
	"market-board/core/worlds/worldstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]string

func (m mapSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, errors.New("not found: " + name)
	}
	return []byte(data), nil
}

func TestLoad(t *testing.T) {
	src := mapSource{
		"World.csv": worldstest.WorldCSV,
		"dc.json":   worldstest.DataCentersJSON,
	}

	tables, err := worlds.Load(context.Background(), src, "World.csv", "dc.json")
	require.NoError(t, err)

	name, ok := tables.WorldName(74)
	assert.True(t, ok)
	assert.Equal(t, "Coeurl", name)

	dc, ok := tables.DataCenterOf("Gilgamesh")
	assert.True(t, ok)
	assert.Equal(t, "Aether", dc)

	assert.Equal(t, []string{"Brynhildr", "Coeurl"}, tables.DataCenterWorlds("Primal"))
	assert.Len(t, tables.Worlds(), 10)
	assert.Equal(t, 21, tables.Worlds()[0].ID)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("MissingWorldFile", func(t *testing.T) {
		_, err := worlds.Load(context.Background(), mapSource{}, "World.csv", "dc.json")
		assert.Error(t, err)
	})

	t.Run("BadDataCenterJSON", func(t *testing.T) {
		src := mapSource{"World.csv": worldstest.WorldCSV, "dc.json": "{"}
		_, err := worlds.Load(context.Background(), src, "World.csv", "dc.json")
		assert.ErrorContains(t, err, "datacenter table")
	})

	t.Run("EmptyWorldTable", func(t *testing.T) {
		_, err := worlds.ParseWorldCSV([]byte("key,0,1\n#,a,b\nint32,str,str\n"))
		assert.ErrorContains(t, err, "no worlds")
	})
}

func TestParseWorldCSV_SkipsHeadersAndBlankNames(t *testing.T) {
	names, err := worlds.ParseWorldCSV([]byte(worldstest.WorldCSV))
	require.NoError(t, err)

	_, hasZero := names[0]
	assert.False(t, hasZero)
	assert.Equal(t, "Gilgamesh", names[63])
}
