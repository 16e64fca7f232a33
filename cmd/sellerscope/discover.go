package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellerscope/sellerscope/pkg/discovery"
	"github.com/sellerscope/sellerscope/pkg/request"
)

func newDiscoverCmd() *cobra.Command {
	var (
		marketplace string
		count       int
		language    string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "discover <category>",
		Short: "Generate candidate product ideas for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := discovery.Request{
				Marketplace: request.Marketplace(marketplace),
				Category:    args[0],
				Count:       count,
				Language:    request.Language(language),
			}
			if errs := req.Validate(); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(os.Stderr, "error:", e)
				}
				return fmt.Errorf("invalid request")
			}

			res := discovery.Run(req)
			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Printf("%s — %d candidates (%s)\n\n", res.Category, res.Total, res.Marketplace)
			for _, c := range res.Candidates {
				fmt.Printf("  • %s  %s\n    %s\n", c.Product, c.PriceRange, c.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&marketplace, "marketplace", "UK", "Marketplace: UK or USA")
	cmd.Flags().IntVar(&count, "count", 10, "Number of candidates (5-50)")
	cmd.Flags().StringVar(&language, "language", "EN", "Output language: EN or ES")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
