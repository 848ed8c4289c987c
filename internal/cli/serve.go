package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gcbaptista/go-faq-matcher/api"
	"github.com/gcbaptista/go-faq-matcher/internal/analytics"
	"github.com/gcbaptista/go-faq-matcher/internal/feedback"
	"github.com/gcbaptista/go-faq-matcher/internal/logging"
	"github.com/gcbaptista/go-faq-matcher/internal/snapshot"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Load the FAQ table and serve search, reload and feedback over HTTP.

Examples:
  faq_matcher serve
  faq_matcher serve --port 9000 --data-file faq.csv`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "8080", "port to run the server on")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Using data file: %s", settings.DataFile)
	log.Printf("Using data directory: %s", settings.DataDir)

	matcher, err := snapshot.NewService(newProvider(settings),
		snapshot.WithCachePath(settings.SnapshotCachePath()),
		snapshot.WithMaxTopN(settings.MaxTopN),
		snapshot.WithSourceName(settings.DataFile),
	)
	if err != nil {
		return err
	}
	if err := matcher.Start(ctx); err != nil {
		// The service still starts so POST /reload can recover once the source is fixed.
		log.Printf("Warning: No FAQ data loaded at startup: %v", err)
	}

	store, err := feedback.Open(settings.FeedbackDBPath())
	if err != nil {
		return fmt.Errorf("failed to open feedback store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: Failed to close feedback store: %v", err)
		}
	}()

	gin.DefaultWriter = logging.Writer()
	gin.DefaultErrorWriter = logging.Writer()
	router := gin.Default()
	router.Use(api.CORSMiddleware())
	api.SetupRoutes(router, api.NewAPI(matcher, store, analytics.NewService(), settings))

	server := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", settings.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Info: Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
