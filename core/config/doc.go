// Package config loads the market board configuration.
//
// Values come from a .env file (if present), then environment variables, then
// the `default` struct tags. Nested keys map to upper-case variables joined by
// underscores, so server.port is SERVER_PORT and market.history_store_limit is
// MARKET_HISTORY_STORE_LIMIT.
//
// # Configuration Structure
//
//   - Server: port, body limit, timeouts, docs toggle
//   - Database: driver (mysql or sqlite) and connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Reference: where World.csv and dc.json are fetched from
//   - Market: history retention and query limits
//   - Stats: recency cache TTL and entry limits
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
