// Package loader provides the feature loading system.
//
// Each feature (upload, market, stats, content, sources) implements Feature
// and is registered on a Manager in the start command.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
//   - Register adds a feature, duplicate names panic
//   - LoadAll mounts the routes of enabled features in registration order
//   - Models gathers the gorm models of features implementing Migrator, which
//     the migrate and start commands pass to database.Migrate
package loader
