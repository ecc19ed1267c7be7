package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kerbaras/podscan/pkg/config"
	"github.com/kerbaras/podscan/pkg/data"
	"github.com/kerbaras/podscan/pkg/services"
	"github.com/kerbaras/podscan/pkg/sources"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "podscan",
	Short: "Identify duplicate podcast episodes in the PodcastIndex directory",
	Long:  "Look up a podcast feed on PodcastIndex, list its episodes, and report episodes that share a title or an episode number",
	Run: func(cmd *cobra.Command, args []string) {
		opts := options{}
		opts.feedURL, _ = cmd.Flags().GetString("feed-url")
		opts.feedID, _ = cmd.Flags().GetInt64("feed-id")
		opts.list, _ = cmd.Flags().GetBool("list")
		opts.findDuplicates, _ = cmd.Flags().GetBool("find-duplicates")
		opts.exportOnly, _ = cmd.Flags().GetBool("export-only")
		opts.max, _ = cmd.Flags().GetInt("max")
		opts.exportDir = "."
		opts.now = time.Now

		// Usage errors are caught before any credential or network access.
		if opts.feedURL == "" && opts.feedID == 0 {
			cobra.CheckErr(errors.New("either --feed-url or --feed-id is required"))
		}
		if opts.feedURL != "" && opts.feedID != 0 {
			cobra.CheckErr(errors.New("--feed-url and --feed-id are mutually exclusive"))
		}

		store := config.NewFileStore(config.DefaultPath)
		creds, err := store.Credentials()
		cobra.CheckErr(err)

		directory := sources.NewPodcastIndex(creds.Key, creds.Secret)
		cobra.CheckErr(run(directory, cmd.OutOrStdout(), opts))
	},
}

type options struct {
	feedURL        string
	feedID         int64
	list           bool
	findDuplicates bool
	exportOnly     bool
	max            int
	exportDir      string
	now            func() time.Time
}

// run performs the whole inspection sequentially: feed lookup, episode
// fetch, then the requested reports. Any failure aborts immediately.
func run(directory sources.Directory, out io.Writer, opts options) error {
	var podcast *data.Podcast
	var err error
	if opts.feedURL != "" {
		fmt.Fprintf(out, "Getting podcast information for feed URL: %s\n", opts.feedURL)
		podcast, err = directory.PodcastByFeedURL(opts.feedURL)
	} else {
		fmt.Fprintf(out, "Getting podcast information for feed ID: %d\n", opts.feedID)
		podcast, err = directory.PodcastByFeedID(opts.feedID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nPodcast: %s\n", podcast.Title)
	fmt.Fprintf(out, "Feed ID: %d\n", podcast.ID)
	fmt.Fprintf(out, "URL: %s\n", podcast.URL)

	fmt.Fprintf(out, "\nGetting episodes for feed ID: %d\n", podcast.ID)
	episodes, err := directory.EpisodesByFeedID(podcast.ID, opts.max)
	if err != nil {
		return err
	}

	if opts.list {
		printEpisodes(out, episodes)
	}

	if opts.findDuplicates {
		duplicates := services.FindDuplicates(episodes)
		printDuplicates(out, duplicates)

		if opts.exportOnly {
			if err := exportDuplicates(out, duplicates, opts.exportDir, opts.now()); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	rootCmd.Flags().String("feed-url", "", "URL of the podcast feed to inspect")
	rootCmd.Flags().Int64("feed-id", 0, "PodcastIndex ID of the feed to inspect")
	rootCmd.Flags().Bool("list", false, "List all episodes for the podcast")
	rootCmd.Flags().Bool("find-duplicates", false, "Find duplicate episodes")
	rootCmd.Flags().Bool("export-only", false, "Export duplicate episodes to a JSON file")
	rootCmd.Flags().Int("max", sources.DefaultMaxEpisodes, "Maximum number of episodes to fetch")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
