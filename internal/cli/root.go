// Package cli wires the FAQ matcher's cobra commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gcbaptista/go-faq-matcher/config"
	"github.com/gcbaptista/go-faq-matcher/internal/dataset"
	"github.com/gcbaptista/go-faq-matcher/internal/logging"
)

const envPrefix = "FAQ"

var (
	cfgFile  string
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "faq_matcher",
	Short: "FAQ matcher - recommend standard questions for a free-text query",
	Long: `faq_matcher loads a table of standard questions and answers and ranks
them against a user's query by character overlap.

Example usage:
  faq_matcher serve --port 9000           # Start the HTTP service
  faq_matcher query -q "学费" -n 3        # Rank from the terminal
  faq_matcher entries --data-file faq.csv # List the loaded table`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadSettings(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		settings = loaded

		if err := logging.Init(settings.LogFile); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("data-file", config.DefaultDataFile, "FAQ table (.xlsx, .csv, .tsv, .json, .yaml)")
	rootCmd.PersistentFlags().String("sheet", "", "workbook sheet (first sheet when empty)")
	rootCmd.PersistentFlags().String("data-dir", config.DefaultDataDir, "directory for the snapshot cache and feedback database")
	rootCmd.PersistentFlags().String("log-file", "", "also append log output to this file")

	_ = viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))
	_ = viper.BindPFlag("sheet", rootCmd.PersistentFlags().Lookup("sheet"))
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// loadSettings merges defaults, the config file, FAQ_* environment variables
// and bound flags into Settings, then validates the result.
func loadSettings(v *viper.Viper, path string) (config.Settings, error) {
	defaults := config.Default()
	v.SetDefault("data_file", defaults.DataFile)
	v.SetDefault("sheet", defaults.Sheet)
	v.SetDefault("question_column", defaults.QuestionColumn)
	v.SetDefault("answer_column", defaults.AnswerColumn)
	v.SetDefault("default_top_n", defaults.DefaultTopN)
	v.SetDefault("max_top_n", defaults.MaxTopN)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("port", defaults.Port)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("snapshot_cache", defaults.SnapshotCache)
	v.SetDefault("max_request_bytes", defaults.MaxRequestBytes)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("faq_matcher")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var s config.Settings
	if err := v.Unmarshal(&s); err != nil {
		return config.Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	s.ApplyDefaults()
	if problems := s.Validate(); len(problems) > 0 {
		return config.Settings{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return s, nil
}

func newProvider(s config.Settings) *dataset.FileProvider {
	return dataset.NewFileProvider(dataset.Source{
		Path:           s.DataFile,
		Sheet:          s.Sheet,
		QuestionColumn: s.QuestionColumn,
		AnswerColumn:   s.AnswerColumn,
	})
}
