package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// podcastCmd represents the podcast command
var podcastCmd = &cobra.Command{
	Use:   "podcast <id>...",
	Short: "Show metadata for one or more podcasts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPodcast,
}

func init() {
	rootCmd.AddCommand(podcastCmd)
}

func parseIDs(args []string, what string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid %s id %q", what, arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runPodcast(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args, "podcast")
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	if len(ids) == 1 {
		podcast, err := client.GetPodcast(cmd.Context(), ids[0])
		if err != nil {
			return err
		}
		printPodcastDetail(cmd.OutOrStdout(), podcast)
		return nil
	}

	podcasts, err := client.GetPodcasts(cmd.Context(), ids)
	if err != nil {
		return err
	}
	printPodcasts(cmd.OutOrStdout(), podcasts)
	return nil
}
