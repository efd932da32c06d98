package reference

// Config holds configuration for the reference data source.
type Config struct {
	// Source selects the backend: "http", "s3" or "file".
	Source string `mapstructure:"source" default:"http"`
	// BaseURL is the HTTP base URL the files are served from.
	BaseURL string `mapstructure:"base_url" default:"https://raw.githubusercontent.com/xivapi/ffxiv-datamining/master/csv"`
	// Prefix is prepended to object names (s3) or used as directory (file).
	Prefix string `mapstructure:"prefix" default:"reference"`
	// WorldsFile is the world table CSV name.
	WorldsFile string `mapstructure:"worlds_file" default:"World.csv"`
	// DataCentersFile is the datacenter membership JSON name.
	DataCentersFile string `mapstructure:"datacenters_file" default:"dc.json"`
	// TimeoutSeconds bounds each fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	SourceHTTP = "http"
	SourceS3   = "s3"
	SourceFile = "file"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceHTTP, SourceS3, SourceFile:
		return true
	default:
		return false
	}
}
