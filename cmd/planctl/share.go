package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lifeplan/entities"
	"lifeplan/pkg/codec"
	"lifeplan/pkg/export"
)

func init() {
	encodeCmd := &cobra.Command{
		Use:   "encode ARTIFACT_JSON",
		Short: "Print the share token for a plan artifact file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Print the plan artifact carried by a share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(decodeCmd)

	var out string
	exportCmd := &cobra.Command{
		Use:   "export TOKEN",
		Short: "Write the latest version of a shared plan as an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], out)
		},
	}
	exportCmd.Flags().StringVarP(&out, "output", "o", "plan.xlsx", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func runEncode(path string, w io.Writer) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var p entities.PlanArtifact
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	token, err := codec.Encode(&p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

func runDecode(token string, w io.Writer) error {
	p, err := codec.Decode(token)
	if err != nil {
		return err
	}
	return writeJSON(w, p)
}

func runExport(token, path string) error {
	p, err := codec.Decode(token)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WritePlanWorkbook(f, p); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
