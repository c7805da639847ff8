package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/killallgit/podplay-go/pkg/podplay"
)

// formatDuration renders a duration in seconds as 01h02m03s, dropping
// leading zero components.
func formatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%02dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%02dm", minutes)
	}
	fmt.Fprintf(&b, "%02ds", secs)
	return b.String()
}

func categoryNames(categories []*podplay.Category) string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return strings.Join(names, ", ")
}

func printPodcasts(out io.Writer, podcasts []*podplay.Podcast) {
	if len(podcasts) == 0 {
		fmt.Fprintln(out, "No results")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPOPULARITY\tCATEGORIES")
	for _, podcast := range podcasts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\n",
			podcast.ID, podcast.Title, podcast.Author, podcast.Popularity,
			categoryNames(podcast.Categories))
	}
	_ = w.Flush()
}

func printPodcastDetail(out io.Writer, podcast *podplay.Podcast) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", podcast.ID)
	fmt.Fprintf(w, "Title:\t%s\n", podcast.Title)
	fmt.Fprintf(w, "Author:\t%s\n", podcast.Author)
	fmt.Fprintf(w, "Language:\t%s\n", podcast.LanguageISO)
	fmt.Fprintf(w, "Popularity:\t%.1f\n", podcast.Popularity)
	if len(podcast.Categories) > 0 {
		fmt.Fprintf(w, "Categories:\t%s\n", categoryNames(podcast.Categories))
	}
	if podcast.RSS != "" {
		fmt.Fprintf(w, "RSS:\t%s\n", podcast.RSS)
	}
	if podcast.Link != "" {
		fmt.Fprintf(w, "Link:\t%s\n", podcast.Link)
	}
	if podcast.Type != "" {
		fmt.Fprintf(w, "Type:\t%s\n", podcast.Type)
	}
	if len(podcast.Images) > 0 {
		fmt.Fprintf(w, "Artwork:\t%s\n", podcast.Images[0].URL)
	}
	fmt.Fprintf(w, "Description:\t%s\n", podcast.Description)
	_ = w.Flush()
}

func printEpisodes(out io.Writer, episodes []*podplay.Episode) {
	if len(episodes) == 0 {
		fmt.Fprintln(out, "No results")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPUBLISHED\tDURATION\tTYPE\tTITLE")
	for _, episode := range episodes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			episode.ID,
			episode.Published.Time().Format("2006-01-02"),
			formatDuration(episode.Duration),
			episode.Type,
			episode.Title)
	}
	_ = w.Flush()
}

func printEpisodeDetail(out io.Writer, episode *podplay.Episode) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", episode.ID)
	fmt.Fprintf(w, "Podcast:\t%d\n", episode.PodcastID)
	fmt.Fprintf(w, "Title:\t%s\n", episode.Title)
	fmt.Fprintf(w, "Published:\t%s\n", episode.Published.Time().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Duration:\t%s\n", formatDuration(episode.Duration))
	fmt.Fprintf(w, "Type:\t%s\n", episode.Type)
	fmt.Fprintf(w, "Audio:\t%s\n", episode.URL)
	fmt.Fprintf(w, "Description:\t%s\n", episode.Description)
	_ = w.Flush()
}

func printCategoryTree(out io.Writer, categories []*podplay.Category) {
	for _, category := range categories {
		fmt.Fprintf(out, "%d\t%s\n", category.ID, category.Name)
		for _, child := range category.Children {
			fmt.Fprintf(out, "  %d\t%s\n", child.ID, child.Name)
		}
	}
}
