package cmd

import (
	"github.com/spf13/cobra"
)

// categoryCmd represents the category command
var categoryCmd = &cobra.Command{
	Use:   "category <id>",
	Short: "List the top podcasts of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategory,
}

func init() {
	rootCmd.AddCommand(categoryCmd)

	categoryCmd.Flags().Bool("originals", false, "only list Podplay original shows")
}

func runCategory(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args, "category")
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	originals, _ := cmd.Flags().GetBool("originals")

	podcasts, err := client.GetPodcastsByCategory(cmd.Context(), ids[0], originals)
	if err != nil {
		return err
	}

	printPodcasts(cmd.OutOrStdout(), podcasts)
	return nil
}
