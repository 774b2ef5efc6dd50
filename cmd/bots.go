package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/spacelist/go-spacelist/filter"
	"github.com/spacelist/go-spacelist/spacelist"
)

var (
	botsPage   int
	botsAll    bool
	filterExpr string
)

// botsCmd represents the bots command
var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List bots from the public listing",
	Long: `List one page of the public bot listing, optionally narrowed down
with a filter expression, e.g.:

  spacelist bots --filter 'server_count > 100 and approved'
  spacelist bots --page 3 --filter 'contains(username, "music")'`,
	RunE: runBots,
}

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot [id]",
	Short: "Show one bot, or your own bot when no ID is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBot,
}

func init() {
	botsCmd.Flags().IntVarP(&botsPage, "page", "p", 1, "page of the listing to fetch")
	botsCmd.Flags().BoolVarP(&botsAll, "all", "a", false, "fetch every page")
	botsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")

	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(botCmd)
}

func runBots(cmd *cobra.Command, args []string) error {
	var match *filter.Filter
	if filterExpr != "" {
		var err error
		match, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	var bots []spacelist.Bot
	var summary string
	if botsAll {
		all, err := client.GetAllBots(cmd.Context())
		if err != nil {
			return err
		}
		bots = all.Values()
		summary = fmt.Sprintf("\n%d bots total\n", all.Len())
	} else {
		page, err := client.GetBots(cmd.Context(), botsPage)
		if err != nil {
			return err
		}
		bots = page.Values()
		summary = fmt.Sprintf("\nPage %d of %d (%d bots total)\n", page.CurrentPage(), page.PageCount(), page.Total())
	}

	if match != nil {
		var kept []spacelist.Bot
		for _, bot := range bots {
			ok, err := match.Match(bot)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, bot)
			}
		}
		bots = kept
	}

	if len(bots) == 0 {
		fmt.Println("No bots found.")
		return nil
	}

	renderBotTable(bots)
	fmt.Print(summary)

	return nil
}

func runBot(cmd *cobra.Command, args []string) error {
	var bot *spacelist.Bot
	var err error

	if len(args) == 0 {
		bot, err = client.GetSelfBot(cmd.Context())
	} else {
		bot, err = client.GetBot(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", bot.Tag(), bot.ID)
	fmt.Printf("  %s\n", bot.ShortDescription)
	fmt.Printf("  Prefix:   %s\n", bot.Prefix)
	if bot.Library != "" {
		fmt.Printf("  Library:  %s\n", bot.Library)
	}
	fmt.Printf("  Servers:  %d", bot.ServerCount)
	if len(bot.Shards) > 0 {
		fmt.Printf(" across %d shards", len(bot.Shards))
	}
	fmt.Println()
	fmt.Printf("  Listed:   %s\n", bot.Created().Format("2006-01-02"))
	fmt.Printf("  Page:     %s\n", bot.PageURL())

	owners := bot.OwnerMap()
	if owners.Len() > 0 {
		fmt.Printf("  Owners:\n")
		for _, owner := range owners.Values() {
			fmt.Printf("    - %s (%s)\n", owner.Tag(), owner.ID)
		}
	}

	return nil
}

func renderBotTable(bots []spacelist.Bot) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Tag", "Prefix", "Servers", "Approved"})

	for _, bot := range bots {
		approved := ""
		if bot.Approved {
			approved = "yes"
		}
		t.AppendRow(table.Row{bot.ID, bot.Tag(), bot.Prefix, bot.ServerCount, approved})
	}

	t.Render()
}
