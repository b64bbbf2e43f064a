package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the stored table against the model",
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

		report, err := a.service.Schema(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Table:    %s\n", report.Table)
		if report.OK {
			fmt.Println("Status:   OK")
			return nil
		}
		fmt.Println("Status:   missing columns")
		for _, col := range report.Missing {
			fmt.Printf("  - %s\n", col)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
