package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sellerscope/sellerscope/internal/runlog"
)

func newRunsCmd() *cobra.Command {
	var (
		limit      int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent evaluations from the local run log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			store, err := runlog.NewSQLiteStore(cfg.Database.SQLitePath)
			if err != nil {
				return fmt.Errorf("open run log: %w", err)
			}
			defer store.Close()

			recs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tASIN\tMARKET\tVERDICT\tSCORE")
			for _, r := range recs {
				score := "-"
				if r.TotalScore != nil {
					score = fmt.Sprintf("%d", *r.TotalScore)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.CreatedAt.Local().Format(time.DateTime), r.ASIN, r.Marketplace, r.Verdict, score)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: search for .sellerscope/config.yaml)")

	return cmd
}
