package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellerscope/sellerscope/internal/archive"
	"github.com/sellerscope/sellerscope/internal/keepa"
	"github.com/sellerscope/sellerscope/internal/report"
	"github.com/sellerscope/sellerscope/internal/runlog"
	"github.com/sellerscope/sellerscope/pkg/config"
	"github.com/sellerscope/sellerscope/pkg/decision"
	"github.com/sellerscope/sellerscope/pkg/request"
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
	"github.com/sellerscope/sellerscope/pkg/surface"
)

func newDecideCmd() *cobra.Command {
	var (
		marketplace string
		capital     string
		phase       string
		strategy    string
		language    string
		outputFmt   string
		pdfPath     string
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "decide <listing-url>",
		Short: "Evaluate one product listing end to end",
		Long:  `Fetches the listing, runs the discard-rule pipeline, scores survivors, and renders the verdict.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecide(cmd.Context(), decideOpts{
				url:         args[0],
				marketplace: marketplace,
				capital:     capital,
				phase:       phase,
				strategy:    strategy,
				language:    language,
				outputFmt:   outputFmt,
				pdfPath:     pdfPath,
				configPath:  configPath,
			})
		},
	}

	cmd.Flags().StringVar(&marketplace, "marketplace", "UK", "Marketplace: UK or USA")
	cmd.Flags().StringVar(&capital, "capital", "medium", "Capital profile: low, medium, high or scale")
	cmd.Flags().StringVar(&phase, "phase", "white_label", "Product phase: white_label, private_label or brand")
	cmd.Flags().StringVar(&strategy, "strategy", "conservative", "Entry strategy: conservative or aggressive")
	cmd.Flags().StringVar(&language, "language", "EN", "Output language: EN or ES")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a PDF report to this path")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: search for .sellerscope/config.yaml)")

	return cmd
}

type decideOpts struct {
	url         string
	marketplace string
	capital     string
	phase       string
	strategy    string
	language    string
	outputFmt   string
	pdfPath     string
	configPath  string
}

func runDecide(ctx context.Context, opts decideOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cfg.Keepa.APIKey == "" {
		return fmt.Errorf("no Keepa API key: set KEEPA_API_KEY or keepa.api_key in config")
	}

	req := decision.Request{
		URL: opts.url,
		Context: request.Context{
			Marketplace:    request.Marketplace(opts.marketplace),
			CapitalProfile: request.CapitalProfile(opts.capital),
			ProductPhase:   request.ProductPhase(opts.phase),
			EntryStrategy:  request.EntryStrategy(opts.strategy),
			Language:       request.Language(opts.language),
		},
	}
	if errs := req.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		return fmt.Errorf("invalid request")
	}

	engineOpts, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	client := keepa.NewClient(cfg.Keepa.APIKey).WithStatsDays(cfg.Keepa.StatsDays)
	engine := decision.New(client, engineOpts...)

	res, err := engine.Decide(ctx, req)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", opts.url, err)
	}

	appendRunLog(ctx, cfg, res)

	var renderer surface.Renderer
	switch opts.outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	case "text":
		renderer = &surface.TerminalRenderer{}
	default:
		return fmt.Errorf("unknown output format %q", opts.outputFmt)
	}
	if err := renderer.Render(os.Stdout, res); err != nil {
		return err
	}

	if opts.pdfPath != "" {
		pdf, err := report.NewPDFRenderer().Render(ctx, report.Markdown(res))
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		if err := os.WriteFile(opts.pdfPath, pdf, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", opts.pdfPath)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = config.FindConfigFile(cwd)
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// engineOptions builds orchestrator options from config: weight and
// threshold overrides and the optional raw-payload archive.
func engineOptions(cfg *config.Config) ([]decision.Option, error) {
	var opts []decision.Option

	if len(cfg.Engine.Weights) > 0 {
		composer, err := scoring.NewComposer(cfg.Engine.ScoreWeights())
		if err != nil {
			return nil, fmt.Errorf("config weights: %w", err)
		}
		opts = append(opts, decision.WithComposer(composer))
	}

	if len(cfg.Engine.Thresholds) > 0 {
		pipeline := rules.NewPipeline(rules.DefaultRules(cfg.Engine.RuleThresholds())...)
		opts = append(opts, decision.WithPipeline(pipeline))
	}

	if store, err := buildArchive(cfg); err != nil {
		return nil, err
	} else if store != nil {
		opts = append(opts, decision.WithArchiver(store))
	}
	return opts, nil
}

func buildArchive(cfg *config.Config) (archive.Storage, error) {
	switch cfg.Archive.Backend {
	case "":
		return nil, nil
	case "local":
		dir := cfg.Archive.LocalDir
		if dir == "" {
			dir = config.CacheDir() + "/archive"
		}
		return archive.NewLocalStorage(dir), nil
	case "s3":
		return archive.NewS3Storage(context.Background(), archive.S3Config{
			Bucket:    cfg.Archive.Bucket,
			Region:    cfg.Archive.Region,
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
		})
	case "gcs":
		return archive.NewGCSStorage(context.Background(), cfg.Archive.Bucket)
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Archive.Backend)
	}
}

// appendRunLog records the evaluation in the local run log. Failures
// are logged but never fail the command.
func appendRunLog(ctx context.Context, cfg *config.Config, res *decision.Result) {
	store, err := runlog.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("run log: %v", err)
		return
	}
	defer store.Close()

	payload, err := json.Marshal(res)
	if err != nil {
		log.Printf("run log: marshal: %v", err)
		return
	}
	rec := runlog.Record{
		ID:          res.Request.EvaluationID,
		ASIN:        res.Request.ASIN,
		Marketplace: string(res.Request.Context.Marketplace),
		Verdict:     string(res.Verdict),
		Result:      payload,
	}
	if res.StarScore != nil {
		score := res.StarScore.TotalScore
		rec.TotalScore = &score
	}
	if err := store.Append(ctx, rec); err != nil {
		log.Printf("run log: %v", err)
	}
}
