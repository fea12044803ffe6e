package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geoquery-cli/internal/mockserver"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a local stub of the query service",
	Long:  "Serves /health, /schema, and /query from canned fixtures so the client can be exercised without the real service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures := mockserver.DefaultFixtures()
		if cfg.Mock.Fixtures != "" {
			loaded, err := mockserver.LoadFixtures(cfg.Mock.Fixtures)
			if err != nil {
				return err
			}
			fixtures = loaded
		}

		addr := fmt.Sprintf(":%d", cfg.Mock.Port)
		zap.L().Info("mock: listening",
			zap.String("addr", addr),
			zap.Int("fixtures", len(fixtures)),
		)
		return http.ListenAndServe(addr, mockserver.New(fixtures).Handler())
	},
}

func init() { rootCmd.AddCommand(mockCmd) }
