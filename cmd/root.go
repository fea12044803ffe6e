package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geoquery-cli/internal/config"
	"github.com/sells-group/geoquery-cli/internal/session"
	"github.com/sells-group/geoquery-cli/internal/state"
	"github.com/sells-group/geoquery-cli/pkg/geosql"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geoquery",
	Short: "Natural-language geospatial query client",
	Long:  "Sends natural-language questions to the geo-SQL query service and renders the returned features as map content: markers, styled shapes, and a fitted viewport.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newClient builds the service client from config.
func newClient() geosql.Client {
	opts := []geosql.Option{
		geosql.WithBaseURL(cfg.API.BaseURL),
		geosql.WithTimeout(cfg.API.Timeout()),
	}
	if cfg.API.RatePerSec > 0 {
		opts = append(opts, geosql.WithRateLimit(cfg.API.RatePerSec, 1))
	}
	return geosql.NewClient(opts...)
}

// newSession builds a session seeded with the configured initial viewport.
func newSession() *session.Session {
	store := state.NewStore(state.Initial(cfg.Map.Center(), cfg.Map.Zoom))
	return session.New(store, newClient())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
