package cmd

import (
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search podcasts by free text",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	podcasts, err := client.SearchPodcasts(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPodcasts(cmd.OutOrStdout(), podcasts)
	return nil
}
