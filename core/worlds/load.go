package worlds

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeaderRows is the number of header lines (keys, column names, types)
// preceding the data rows in the world table.
const csvHeaderRows = 3

// Source provides reference files by name.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Load fetches and parses the world and datacenter tables.
func Load(ctx context.Context, src Source, worldsFile, dataCentersFile string) (*Tables, error) {
	rawWorlds, err := src.Fetch(ctx, worldsFile)
	if err != nil {
		return nil, err
	}
	names, err := ParseWorldCSV(rawWorlds)
	if err != nil {
		return nil, err
	}

	rawDCs, err := src.Fetch(ctx, dataCentersFile)
	if err != nil {
		return nil, err
	}
	dcs, err := ParseDataCenters(rawDCs)
	if err != nil {
		return nil, err
	}

	return NewTables(names, dcs), nil
}

// ParseWorldCSV parses the world table. Data rows carry the world ID in the
// first column and its name in the second. Rows with a non-numeric ID or an
// empty name are skipped.
func ParseWorldCSV(data []byte) (map[int]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	names := make(map[int]string)
	for row := 0; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse world table: %w", err)
		}
		if row < csvHeaderRows || len(rec) < 2 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(rec[1])
		if name == "" {
			continue
		}
		names[id] = name
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("world table contains no worlds")
	}
	return names, nil
}

// ParseDataCenters parses the datacenter membership table, a JSON object
// mapping datacenter names to arrays of world names.
func ParseDataCenters(data []byte) (map[string][]string, error) {
	var dcs map[string][]string
	if err := json.Unmarshal(data, &dcs); err != nil {
		return nil, fmt.Errorf("failed to parse datacenter table: %w", err)
	}
	return dcs, nil
}
