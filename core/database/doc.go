// Package database opens the relational store behind the market board.
//
// Connect wraps GORM and picks the dialect from Config.Driver: MySQL for
// deployments and sqlite for local runs and tests (":memory:" is supported
// and pinned to a single connection). Migrate runs AutoMigrate over the
// models contributed by the features.
//
// # Schema Inspection
//
// GetTableColumns and DescribeModels read back the live column layout so the
// migrate command can print what it created.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
//	err = database.Migrate(db, models...)
package database
