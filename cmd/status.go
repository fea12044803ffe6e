package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/geoquery-cli/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service health and data inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		var (
			health *model.HealthResponse
			schema *model.SchemaResponse
		)

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			h, err := client.Health(ctx)
			health = h
			return err
		})
		g.Go(func() error {
			s, err := client.Schema(ctx)
			schema = s
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		p := message.NewPrinter(language.English)
		fmt.Printf("service %s (%s), database %s\n", health.Version, health.Environment, health.Database)
		p.Printf("%d tables, %d records\n", len(schema.Tables), schema.TotalRecords)
		return nil
	},
}

func init() { rootCmd.AddCommand(statusCmd) }
