// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qcdecode/internal/catalog"
	"github.com/pdiddy/qcdecode/internal/codec"
	"github.com/pdiddy/qcdecode/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Decode program output and archive the result in the catalog",
	Long: `Archive runs the same decode as the decode command, then stores the
canonical result in the local SQLite catalog. Archiving an identical
result twice is idempotent.`,
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	program, _ := cmd.Flags().GetString("program")
	calctype, _ := cmd.Flags().GetString("calctype")
	fieldNames, _ := cmd.Flags().GetStringSlice("fields")
	stdoutFile, _ := cmd.Flags().GetString("stdout-file")
	dir, _ := cmd.Flags().GetString("dir")

	req, err := buildRequest(program, calctype, fieldNames, stdoutFile, dir)
	if err != nil {
		return err
	}

	res, err := codec.Decode(parserRegistry, req)
	if err != nil {
		return err
	}

	cat, err := catalog.Open(catalogConfig())
	if err != nil {
		return err
	}
	defer cat.Close()

	id, err := cat.Put(res)
	if err != nil {
		return err
	}
	fmt.Printf("archived %s\n", id)
	return nil
}

// catalogConfig reads catalog settings from viper.
func catalogConfig() types.CatalogConfig {
	dir := viper.GetString("catalog_dir")
	if dir == "" {
		dir = "catalog"
	}
	return types.CatalogConfig{
		CatalogDir: dir,
		MaxResults: viper.GetInt("max_results"),
	}
}

func init() {
	archiveCmd.Flags().String("program", "", "program that produced the output (orca, molpro, mopac)")
	archiveCmd.Flags().String("calctype", "energy", "calculation type (energy, gradient, hessian, optimization)")
	archiveCmd.Flags().StringSlice("fields", nil, "fields to extract (default: all declared for the calctype)")
	archiveCmd.Flags().String("stdout-file", "", "file holding the program's console output")
	archiveCmd.Flags().String("dir", "", "program output directory")
	archiveCmd.MarkFlagRequired("program")

	rootCmd.AddCommand(archiveCmd)
}
