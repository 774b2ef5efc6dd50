package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userBots     bool
	userBotsPage int
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a user, or the bots they own",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

func init() {
	userCmd.Flags().BoolVar(&userBots, "bots", false, "list the user's bots instead of their profile")
	userCmd.Flags().IntVarP(&userBotsPage, "page", "p", 1, "page of the user's bot listing")

	rootCmd.AddCommand(userCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	if userBots {
		page, err := client.GetUserBots(ctx, id, userBotsPage)
		if err != nil {
			return err
		}
		if page.Len() == 0 {
			fmt.Println("No bots found.")
			return nil
		}
		renderBotTable(page.Values())
		fmt.Printf("\nPage %d of %d (%d bots total)\n", page.CurrentPage(), page.PageCount(), page.Total())
		return nil
	}

	user, err := client.GetUser(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", user.Tag(), user.ID)
	if user.ShortDescription != "" {
		fmt.Printf("  %s\n", user.ShortDescription)
	}
	fmt.Printf("  Joined:   %s\n", user.Created().Format("2006-01-02"))
	fmt.Printf("  Page:     %s\n", user.PageURL())
	if user.Links.Website != "" {
		fmt.Printf("  Website:  %s\n", user.Links.Website)
	}
	if user.Links.GitHub != "" {
		fmt.Printf("  GitHub:   %s\n", user.Links.GitHub)
	}

	return nil
}
