// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/qcdecode/internal/catalog"
	"github.com/pdiddy/qcdecode/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [id]",
	Short: "List or fetch archived results from the catalog",
	Long: `Query lists archived results, most recent first, optionally filtered
by program and calctype. With an id argument it prints that single
archived result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer cat.Close()

	if len(args) == 1 {
		rec, err := cat.Get(args[0])
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	program, _ := cmd.Flags().GetString("program")
	calctype, _ := cmd.Flags().GetString("calctype")
	limit, _ := cmd.Flags().GetInt("limit")

	recs, err := cat.List(catalog.QueryOptions{
		Program:  types.Program(program),
		CalcType: types.CalcType(calctype),
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	for _, rec := range recs {
		fmt.Printf("%s  %-8s %-12s %s\n",
			rec.ID, rec.Program, rec.CalcType,
			rec.ArchivedAt.Format("2006-01-02 15:04:05"))
	}
	if len(recs) == 0 {
		fmt.Println("no archived results")
	}
	return nil
}

func init() {
	queryCmd.Flags().String("program", "", "filter by program")
	queryCmd.Flags().String("calctype", "", "filter by calctype")
	queryCmd.Flags().Int("limit", 0, "maximum results (default from config)")

	rootCmd.AddCommand(queryCmd)
}
