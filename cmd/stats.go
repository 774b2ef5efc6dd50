package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show site-wide listing statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	stats, err := client.GetStatistics(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Bots:       %d (%d approved, %d pending)\n", stats.Bots, stats.ApprovedBots, stats.UnapprovedBots)
	fmt.Printf("Users:      %d\n", stats.Users)
	fmt.Printf("Tags:       %d\n", stats.Tags)

	return nil
}
