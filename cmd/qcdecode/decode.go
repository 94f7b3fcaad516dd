// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/qcdecode/internal/codec"
	"github.com/pdiddy/qcdecode/pkg/types"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode program output into a canonical result",
	Long: `Decode reads a program's console output and/or output directory and
extracts the fields declared for the calculation type, printing the
canonical result to stdout.

Console output is read from --stdout-file; auxiliary files (Orca .engrad
and .hess, Mopac .aux) are found in --dir. At least one source is
required for anything to be extractable.`,
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
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

	return writeResult(os.Stdout, res)
}

// buildRequest assembles a decode request from CLI flags.
func buildRequest(program, calctype string, fieldNames []string, stdoutFile, dir string) (codec.Request, error) {
	req := codec.Request{
		Program:  types.Program(program),
		CalcType: types.CalcType(calctype),
		Dir:      dir,
	}

	for _, f := range fieldNames {
		req.Fields = append(req.Fields, types.Field(f))
	}

	if stdoutFile != "" {
		raw, err := os.ReadFile(stdoutFile)
		if err != nil {
			return codec.Request{}, fmt.Errorf("reading stdout file: %w", err)
		}
		text := string(raw)
		req.Stdout = &text
	}

	if stdoutFile == "" && dir == "" {
		return codec.Request{}, fmt.Errorf("supply --stdout-file and/or --dir")
	}
	return req, nil
}

// writeResult serializes a result in the configured output format.
func writeResult(w *os.File, res *types.Result) error {
	format := types.OutputFormat(viper.GetString("format"))
	if format == "" {
		format = types.OutputYAML
	}

	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case types.OutputYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func init() {
	decodeCmd.Flags().String("program", "", "program that produced the output (orca, molpro, mopac)")
	decodeCmd.Flags().String("calctype", "energy", "calculation type (energy, gradient, hessian, optimization)")
	decodeCmd.Flags().StringSlice("fields", nil, "fields to extract (default: all declared for the calctype)")
	decodeCmd.Flags().String("stdout-file", "", "file holding the program's console output")
	decodeCmd.Flags().String("dir", "", "program output directory")
	decodeCmd.MarkFlagRequired("program")

	rootCmd.AddCommand(decodeCmd)
}
