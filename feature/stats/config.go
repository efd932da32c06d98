package stats

// Config holds the recency index and upload statistics settings.
type Config struct {
	// CacheTTLSeconds is how long recency rankings are served from memory.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
	// DefaultEntries is the ranking size when none is requested.
	DefaultEntries int `mapstructure:"default_entries" default:"50"`
	// MaxEntries caps the requested ranking size.
	MaxEntries int `mapstructure:"max_entries" default:"200"`
	// UploadHistoryDays is the default number of days of upload counts.
	UploadHistoryDays int `mapstructure:"upload_history_days" default:"30"`
}

// maxUploadHistoryDays caps the upload history window.
const maxUploadHistoryDays = 366

func (c Config) withDefaults() Config {
	if c.DefaultEntries <= 0 {
		c.DefaultEntries = 50
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = 200
	}
	if c.DefaultEntries > c.MaxEntries {
		c.DefaultEntries = c.MaxEntries
	}
	if c.UploadHistoryDays <= 0 {
		c.UploadHistoryDays = 30
	}
	return c
}

// clampEntries maps a requested ranking size onto [1, MaxEntries].
func (c Config) clampEntries(n int) int {
	switch {
	case n <= 0:
		return c.DefaultEntries
	case n > c.MaxEntries:
		return c.MaxEntries
	default:
		return n
	}
}

// clampDays maps a requested day count onto [1, maxUploadHistoryDays].
func (c Config) clampDays(days int) int {
	switch {
	case days <= 0:
		return c.UploadHistoryDays
	case days > maxUploadHistoryDays:
		return maxUploadHistoryDays
	default:
		return days
	}
}
