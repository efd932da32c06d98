package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"market-board/core/reference"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// referenceCmd groups the world and datacenter table tooling.
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect and mirror the world reference tables",
}

// referenceMirrorCmd copies the tables from the HTTP source into the bucket so
// the server can run with REFERENCE_SOURCE=s3.
var referenceMirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy the reference tables from the HTTP source into object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		ref := rt.cfg.Reference

		client, err := rt.storageClient(true)
		if err != nil {
			return err
		}
		src := reference.NewHTTPFetcher(ref.BaseURL, time.Duration(ref.TimeoutSeconds)*time.Second)

		written, err := reference.Mirror(cmd.Context(), src, client, rt.cfg.Storage.Bucket, ref.Prefix, rt.logger,
			ref.WorldsFile, ref.DataCentersFile)
		if err != nil {
			return fmt.Errorf("mirror failed after %d files: %w", len(written), err)
		}
		rt.logger.Info("Reference tables mirrored", zap.String("bucket", rt.cfg.Storage.Bucket), zap.Strings("objects", written))
		return nil
	},
}

var referenceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the reference tables from the configured source and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		resolver, err := rt.resolver(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWORLD\tDATACENTER")
		for _, world := range resolver.Tables().Worlds() {
			loc := resolver.Locate(world.ID)
			dc := loc.DCName
			if dc == "" {
				dc = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", world.ID, world.Name, dc)
		}
		return w.Flush()
	},
}

var referenceResolveCmd = &cobra.Command{
	Use:   "resolve <world|datacenter>",
	Short: "Show how a query token is scoped",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		resolver, err := rt.resolver(cmd.Context())
		if err != nil {
			return err
		}

		sel := resolver.Resolve(args[0])
		fmt.Printf("Scope: %s\n", sel)
		if id, ok := sel.WorldID(); ok {
			loc := resolver.Locate(id)
			fmt.Printf("World: %s, datacenter: %q\n", loc.WorldName, loc.DCName)
		}
		if dc, ok := sel.DataCenter(); ok {
			fmt.Printf("Members: %v\n", resolver.Tables().DataCenterWorlds(dc))
		}
		return nil
	},
}

func init() {
	referenceCmd.AddCommand(referenceMirrorCmd)
	referenceCmd.AddCommand(referenceCheckCmd)
	referenceCmd.AddCommand(referenceResolveCmd)
	RootCmd.AddCommand(referenceCmd)
}
