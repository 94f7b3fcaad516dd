// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the qcdecode CLI.
// Implements: prd002-decode, prd004-catalog (CLI surface);
// docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qcdecode/internal/codec"
	"github.com/pdiddy/qcdecode/internal/registry"
)

// version is set at build time via ldflags.
var version = "dev"

// parserRegistry is populated once in PersistentPreRunE, before any
// command runs, and is read-only afterwards.
var parserRegistry *registry.Registry

// rootCmd is the base command for the qcdecode CLI.
var rootCmd = &cobra.Command{
	Use:   "qcdecode",
	Short: "Decode quantum-chemistry program output into canonical results",
	Long: `qcdecode extracts typed results (energies, gradients, hessians,
structures) from the output of external quantum-chemistry programs and
emits one canonical result shape regardless of which program produced
the output.

Supported programs: orca, molpro, mopac.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		reg, err := codec.NewDefaultRegistry()
		if err != nil {
			return err
		}
		parserRegistry = reg
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./qcdecode.yaml or ~/.config/qcdecode/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("qcdecode")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "qcdecode"))
		}
	}

	viper.SetEnvPrefix("QCDECODE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
