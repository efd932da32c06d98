package market

// Config holds the aggregation and query limits.
type Config struct {
	// HistoryStoreLimit is the number of newest sales kept per record on write.
	HistoryStoreLimit int `mapstructure:"history_store_limit" default:"5000"`
	// HistoryMaxEntries caps the sales returned by the history endpoint.
	HistoryMaxEntries int `mapstructure:"history_max_entries" default:"500"`
	// RecentHistoryEntries is the default recentHistory size of current-state documents.
	RecentHistoryEntries int `mapstructure:"recent_history_entries" default:"5"`
	// MaxItemsPerQuery caps the comma separated item list.
	MaxItemsPerQuery int `mapstructure:"max_items_per_query" default:"100"`
}

// withDefaults fills zero limits so a zero Config behaves like the defaults.
func (c Config) withDefaults() Config {
	if c.HistoryStoreLimit <= 0 {
		c.HistoryStoreLimit = 5000
	}
	if c.HistoryMaxEntries <= 0 {
		c.HistoryMaxEntries = 500
	}
	if c.RecentHistoryEntries < 0 {
		c.RecentHistoryEntries = 5
	}
	if c.MaxItemsPerQuery <= 0 {
		c.MaxItemsPerQuery = 100
	}
	// The store must always be able to serve a full read window.
	if c.HistoryStoreLimit < c.HistoryMaxEntries {
		c.HistoryStoreLimit = c.HistoryMaxEntries
	}
	return c
}
