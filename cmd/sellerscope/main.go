// Package main provides the sellerscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "sellerscope",
		Short: "Product decision engine for marketplace sellers",
		Long: `Sellerscope evaluates marketplace listings: it extracts signals from
noisy product data, runs a discard-rule pipeline, and scores survivors
into APPROVED, BORDERLINE or DISCARDED verdicts.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newDecideCmd(),
		newDiscoverCmd(),
		newReportCmd(),
		newRunsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
