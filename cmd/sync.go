package cmd

import (
	"fmt"

	"world-crawler/feature/favorite/crawler"

	"github.com/spf13/cobra"
)

var fromCacheFlag bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one crawl cycle",
	Long:  `Fetches the favorited worlds (or reads the latest archived payload) and reconciles them with the store.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), migrates(cmd))
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		summary, err := a.crawler.Run(cmd.Context(), crawler.RunOptions{FromCache: fromCacheFlag})
		if err != nil {
			return err
		}

		fmt.Println("\n--- Crawl Summary ---")
		fmt.Printf("Source:     %s\n", sourceLabel(summary))
		fmt.Printf("Fetched:    %d\n", summary.Fetched)
		fmt.Printf("Discarded:  %d\n", summary.Discarded)
		fmt.Printf("Inserted:   %d\n", summary.Inserted)
		fmt.Printf("Updated:    %d\n", summary.Updated)
		fmt.Printf("Skipped:    %d\n", summary.Skipped)
		fmt.Printf("Cleared:    %d\n", summary.Cleared)
		fmt.Println("---------------------")
		return nil
	},
}

func sourceLabel(s *crawler.Summary) string {
	switch {
	case s.FromCache:
		return "archive " + s.Archive
	case s.Archive != "":
		return "api (archived as " + s.Archive + ")"
	default:
		return "api"
	}
}

func init() {
	syncCmd.Flags().BoolVar(&fromCacheFlag, "from-cache", false, "Read the latest archived payload instead of calling the API")
	RootCmd.AddCommand(syncCmd)
}
