package cmd

import (
	"fmt"

	"market-board/core/database"
	"market-board/core/worlds"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var describeFlag bool

// migrateCmd creates or updates the tables of every feature.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Runs the schema migration of every feature without starting the server. With --describe the resulting columns are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		db, err := rt.connect()
		if err != nil {
			return err
		}

		// The schema does not depend on the reference tables.
		mgr := features(rt.logger, db, worlds.NewResolver(worlds.NewTables(nil, nil)), rt.cfg)
		models := mgr.Models()
		if err := database.Migrate(db, models...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		rt.logger.Info("Database migrated", zap.Int("tables", len(models)))

		if !describeFlag {
			return nil
		}
		schemas, err := database.DescribeModels(db, models...)
		if err != nil {
			return err
		}
		for _, schema := range schemas {
			fmt.Printf("\n=== %s ===\n", schema.Table)
			for _, col := range schema.Columns {
				fmt.Printf("%-20s %-16s null=%-4s key=%s\n", col.Field, col.Type, col.Null, col.Key)
			}
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&describeFlag, "describe", false, "Print the migrated table columns")
	RootCmd.AddCommand(migrateCmd)
}
