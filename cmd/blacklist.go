package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var yesConfirm bool

// blacklistCmd groups uploader bans.
var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Manage banned uploaders",
}

var blacklistAddCmd = &cobra.Command{
	Use:   "add <uploaderID>",
	Short: "Ban an uploader ID",
	Long: `Bans an uploader. Every later upload carrying this uploader ID is
rejected as unauthorized, whichever trusted source relays it.

Examples:
  # Ban with interactive confirmation
  blacklist add 10001234

  # Ban without prompting
  blacklist add 10001234 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := sourcesService()
		if err != nil {
			return err
		}
		if !confirmAction(fmt.Sprintf("ban uploader %s", args[0])) {
			fmt.Println("Aborted.")
			return nil
		}

		hash, err := svc.Ban(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Banned uploader (hash %s)\n", hash)
		return nil
	},
}

// confirmAction prompts the user for confirmation or uses the --yes flag.
func confirmAction(action string) bool {
	if yesConfirm {
		return true
	}

	fmt.Printf("Type 'yes' to %s: ", action)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func init() {
	blacklistAddCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Skip the confirmation prompt")
	blacklistCmd.AddCommand(blacklistAddCmd)
	RootCmd.AddCommand(blacklistCmd)
}
