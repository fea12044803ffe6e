package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/geoquery-cli/internal/model"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the query service's database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := newSession()
		schema, err := sess.LoadSchema(cmd.Context())
		if err != nil {
			return err
		}
		printSchema(schema)
		return nil
	},
}

func printSchema(schema *model.SchemaResponse) {
	p := message.NewPrinter(language.English)

	names := make([]string, 0, len(schema.Tables))
	for name := range schema.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := schema.Tables[name]
		p.Printf("%s (%d rows, %s)\n", name, t.Count, t.GeometryType)
		if t.Description != "" {
			fmt.Printf("    %s\n", t.Description)
		}
		fmt.Printf("    columns: %s\n", strings.Join(t.Columns, ", "))
	}
	p.Printf("total records: %d\n", schema.TotalRecords)
}

func init() { rootCmd.AddCommand(schemaCmd) }
