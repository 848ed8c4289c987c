package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-faq-matcher/internal/render"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List the FAQ table as loaded",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := newProvider(settings).Load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Entries(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entriesCmd)
}
