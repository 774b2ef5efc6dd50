package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacelist/go-spacelist/spacelist"
)

var (
	upvotesPage int
	upvotesAll  bool
	checkUserID string
)

// upvotesCmd represents the upvotes command
var upvotesCmd = &cobra.Command{
	Use:   "upvotes",
	Short: "List your bot's upvotes, or check whether a user has upvoted",
	RunE:  runUpvotes,
}

func init() {
	upvotesCmd.Flags().IntVarP(&upvotesPage, "page", "p", 1, "page of the upvote listing to fetch")
	upvotesCmd.Flags().BoolVarP(&upvotesAll, "all", "a", false, "fetch every page")
	upvotesCmd.Flags().StringVar(&checkUserID, "check", "", "check whether the given user ID has upvoted")

	rootCmd.AddCommand(upvotesCmd)
}

func runUpvotes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if checkUserID != "" {
		voted, err := client.HasUpvoted(ctx, checkUserID)
		if err != nil {
			return err
		}
		if voted {
			fmt.Printf("User %s has upvoted your bot.\n", checkUserID)
		} else {
			fmt.Printf("User %s has not upvoted your bot.\n", checkUserID)
		}
		return nil
	}

	var votes []spacelist.Upvote
	var summary string
	if upvotesAll {
		all, err := client.GetAllUpvotes(ctx)
		if err != nil {
			return err
		}
		votes = all.Values()
	} else {
		page, err := client.GetUpvotes(ctx, upvotesPage)
		if err != nil {
			return err
		}
		votes = page.Values()
		summary = fmt.Sprintf("\nPage %d of %d (%d upvotes total)\n", page.CurrentPage(), page.PageCount(), page.Total())
	}

	if len(votes) == 0 {
		fmt.Println("No upvotes yet.")
		return nil
	}

	for _, vote := range votes {
		fmt.Printf("• %s (%s) at %s\n", vote.User.Tag(), vote.User.ID, vote.Voted().Format("2006-01-02 15:04"))
	}
	if summary != "" {
		fmt.Print(summary)
	}

	return nil
}
