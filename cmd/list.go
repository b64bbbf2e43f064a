package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"world-crawler/feature/favorite/models"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var favoritedFlag bool

// listColumns are the headers of the list table.
var listColumns = []any{"World ID", "Name", "Status", "Favorited", "Star", "Visit", "Registered At"}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored favorite worlds",
	Args:  cobra.NoArgs,
	Annotations: map[string]string{
		migrateAnnotation: "false",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), migrates(cmd))
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		var filter *bool
		if cmd.Flags().Changed("favorited") {
			filter = &favoritedFlag
		}
		rows, err := a.service.List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if err := renderWorlds(os.Stdout, rows); err != nil {
			return err
		}
		fmt.Printf("\n%d world(s)\n", len(rows))
		return nil
	},
}

// renderWorlds writes the stored rows as a table.
func renderWorlds(w io.Writer, rows []models.FavoriteWorld) error {
	// Counters read better right aligned.
	align := []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignCenter, tw.AlignRight, tw.AlignRight, tw.AlignLeft}
	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	table.Header(listColumns...)
	for _, row := range rows {
		err := table.Append(
			row.WorldID,
			row.WorldName,
			row.ReleaseStatus,
			strconv.FormatBool(row.IsFavorited),
			strconv.Itoa(row.Star),
			strconv.Itoa(row.Visit),
			row.RegisteredAt,
		)
		if err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	listCmd.Flags().BoolVar(&favoritedFlag, "favorited", true, "Only worlds with this favorited flag (filter applies when the flag is set)")
	RootCmd.AddCommand(listCmd)
}
