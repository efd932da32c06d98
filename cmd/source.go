package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"market-board/core/database"
	"market-board/feature/sources"

	"github.com/spf13/cobra"
)

// sourceCmd groups trusted source administration.
var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage trusted upload sources",
}

var sourceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Provision a trusted source and print its API key",
	Long:  `Creates a trusted source. The API key is printed once; only its hash is stored.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := sourcesService()
		if err != nil {
			return err
		}
		key, src, err := svc.AddSource(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Source:  %s (id %d)\n", src.SourceName, src.ID)
		fmt.Printf("API key: %s\n", key)
		return nil
	},
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trusted sources and their upload counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := sourcesService()
		if err != nil {
			return err
		}
		list, err := svc.ListSources(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tUPLOADS\tCREATED")
		for _, src := range list {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", src.ID, src.SourceName, src.UploadCount, src.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

// sourcesService connects and makes sure the credential tables exist.
func sourcesService() (*sources.Service, error) {
	rt, err := bootstrap()
	if err != nil {
		return nil, err
	}
	db, err := rt.connect()
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, sources.Models()...); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return sources.NewService(rt.logger, db), nil
}

func init() {
	sourceCmd.AddCommand(sourceAddCmd)
	sourceCmd.AddCommand(sourceListCmd)
	RootCmd.AddCommand(sourceCmd)
}

