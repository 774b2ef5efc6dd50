package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	postServers int
	postShards  string
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Push your bot's server count to the listing",
	Long: `Push your bot's server count, either as a single total or split
per shard:

  spacelist post --servers 150
  spacelist post --shards 50,50,50`,
	RunE: runPost,
}

func init() {
	postCmd.Flags().IntVar(&postServers, "servers", -1, "total server count")
	postCmd.Flags().StringVar(&postShards, "shards", "", "comma-separated per-shard server counts")

	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if postShards != "" {
		if cmd.Flags().Changed("servers") {
			return fmt.Errorf("--servers and --shards are mutually exclusive")
		}

		var shards []int
		for _, part := range strings.Split(postShards, ",") {
			count, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("invalid shard count '%s': must be an integer", part)
			}
			shards = append(shards, count)
		}

		if err := client.PostShardCounts(ctx, shards); err != nil {
			return err
		}
		fmt.Printf("Posted %d shard counts.\n", len(shards))
		return nil
	}

	if !cmd.Flags().Changed("servers") {
		return fmt.Errorf("either --servers or --shards is required")
	}

	if err := client.PostServerCount(ctx, postServers); err != nil {
		return err
	}
	fmt.Printf("Posted server count %d.\n", postServers)
	return nil
}
