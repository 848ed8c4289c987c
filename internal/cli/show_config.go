package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-faq-matcher/internal/logging"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Show the merged configuration",
	Long:  `Show the configuration after the config file, FAQ_* environment variables and flags are merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if file := viper.ConfigFileUsed(); file == "" {
			fmt.Fprintln(out, "No config file loaded (using defaults).")
		} else {
			fmt.Fprintf(out, "Config file: %s\n", file)
		}
		if path := logging.Path(); path != "" {
			fmt.Fprintf(out, "Log file: %s (also on stderr)\n", path)
		} else {
			fmt.Fprintln(out, "Logging to stderr.")
		}
		fmt.Fprintln(out)

		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
