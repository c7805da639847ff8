package cmd

import (
	"github.com/spf13/cobra"
)

// episodeCmd represents the episode command
var episodeCmd = &cobra.Command{
	Use:   "episode <id>...",
	Short: "Show one or more episodes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEpisode,
}

func init() {
	rootCmd.AddCommand(episodeCmd)
}

func runEpisode(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args, "episode")
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	if len(ids) == 1 {
		episode, err := client.GetEpisode(cmd.Context(), ids[0])
		if err != nil {
			return err
		}
		printEpisodeDetail(cmd.OutOrStdout(), episode)
		return nil
	}

	episodes, err := client.GetEpisodes(cmd.Context(), ids)
	if err != nil {
		return err
	}
	printEpisodes(cmd.OutOrStdout(), episodes)
	return nil
}
