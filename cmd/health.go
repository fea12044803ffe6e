package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the query service's health",
	RunE: func(cmd *cobra.Command, args []string) error {
		health, err := newClient().Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("status: %s  database: %s  version: %s  environment: %s\n",
			health.Status, health.Database, health.Version, health.Environment)
		return nil
	},
}

func init() { rootCmd.AddCommand(healthCmd) }
