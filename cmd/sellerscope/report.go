package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellerscope/sellerscope/internal/report"
	"github.com/sellerscope/sellerscope/pkg/decision"
)

func newReportCmd() *cobra.Command {
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "report <result.json>",
		Short: "Rebuild a report from a saved evaluation result",
		Long:  `Reads a result previously saved with "decide --output json" and renders the markdown report, optionally as PDF.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], pdfPath)
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a PDF report to this path instead of printing markdown")

	return cmd
}

func runReport(cmd *cobra.Command, resultPath, pdfPath string) error {
	data, err := os.ReadFile(resultPath)
	if err != nil {
		return err
	}
	var res decision.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("parse %s: %w", resultPath, err)
	}

	md := report.Markdown(&res)
	if pdfPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	pdf, err := report.NewPDFRenderer().Render(cmd.Context(), md)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", pdfPath)
	return nil
}
