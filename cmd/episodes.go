package cmd

import (
	"github.com/killallgit/podplay-go/pkg/podplay"
	"github.com/spf13/cobra"
)

// episodesCmd represents the episodes command
var episodesCmd = &cobra.Command{
	Use:   "episodes <podcast-id>",
	Short: "List the episodes of a podcast",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodes,
}

func init() {
	rootCmd.AddCommand(episodesCmd)

	episodesCmd.Flags().Int("pages", 0, "number of pages to fetch (default: all)")
	episodesCmd.Flags().Int("page-size", 0, "results per page")
	episodesCmd.Flags().Bool("asc", false, "list oldest episodes first")
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args, "podcast")
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	pages, _ := cmd.Flags().GetInt("pages")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	ascending, _ := cmd.Flags().GetBool("asc")

	opts := &podplay.EpisodePageOptions{
		Pages:    pages,
		PageSize: pageSize,
	}
	if ascending {
		opts.Order = podplay.OrderAscending
	}

	episodes, err := client.GetPodcastEpisodes(cmd.Context(), ids[0], opts)
	if err != nil {
		return err
	}

	printEpisodes(cmd.OutOrStdout(), episodes)
	return nil
}
