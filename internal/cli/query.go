package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-faq-matcher/api"
	"github.com/gcbaptista/go-faq-matcher/internal/render"
	"github.com/gcbaptista/go-faq-matcher/internal/snapshot"
	"github.com/gcbaptista/go-faq-matcher/services"
)

var (
	queryText    string
	queryTopN    int
	queryAnswers bool
	queryJSON    bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Rank the FAQ table against a query",
	Long: `Rank the standard questions against a query and print the recommendations.

Examples:
  faq_matcher query -q "学费是多少"
  faq_matcher query -q "宿舍" -n 3 --answers
  faq_matcher query -q "奖学金" --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "search query (required)")
	queryCmd.Flags().IntVarP(&queryTopN, "top-n", "n", 0, "number of recommendations (default from config)")
	queryCmd.Flags().BoolVar(&queryAnswers, "answers", false, "print the answer under each recommendation")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
	_ = queryCmd.MarkFlagRequired("query")
}

func runQuery(cmd *cobra.Command, args []string) error {
	matcher, err := snapshot.NewService(newProvider(settings),
		snapshot.WithCachePath(settings.SnapshotCachePath()),
		snapshot.WithMaxTopN(settings.MaxTopN),
		snapshot.WithSourceName(settings.DataFile),
	)
	if err != nil {
		return err
	}
	if err := matcher.Start(cmd.Context()); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), render.NoData())
		return err
	}

	var requested *int
	if cmd.Flags().Changed("top-n") {
		requested = &queryTopN
	}
	topN := api.ResolveTopN(requested, settings.DefaultTopN, settings.MaxTopN)

	result, info, err := matcher.Query(queryText, topN)
	if err != nil {
		return err
	}

	if queryJSON {
		response := services.SearchResponse{
			QueryResult: result,
			Query:       queryText,
			TopN:        topN,
			QueryID:     uuid.New().String(),
			SnapshotID:  info.ID,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Result(result, render.Options{ShowAnswers: queryAnswers}))
	return nil
}
