package decision

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
)

// Fetcher retrieves the raw listing record for a marketplace/ASIN pair.
type Fetcher interface {
	FetchProduct(ctx context.Context, marketplace request.Marketplace, asin string) (*product.RawRecord, error)
}

// Archiver stores the raw upstream payload for a completed fetch.
// Archiving is best effort: a failure never fails the evaluation.
type Archiver interface {
	Put(ctx context.Context, marketplace, asin, evaluationID string, payload []byte) error
}

// Orchestrator wires the evaluation stages together. The zero value is
// not usable; construct with New.
type Orchestrator struct {
	fetcher  Fetcher
	pipeline *rules.Pipeline
	composer *scoring.Composer

	// archive, when set, receives the raw payload of every successful
	// fetch keyed by the evaluation identity.
	archive Archiver

	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithPipeline replaces the default discard-rule pipeline.
func WithPipeline(p *rules.Pipeline) Option {
	return func(o *Orchestrator) { o.pipeline = p }
}

// WithComposer replaces the default score composer.
func WithComposer(c *scoring.Composer) Option {
	return func(o *Orchestrator) { o.composer = c }
}

// WithArchiver enables raw-payload archiving.
func WithArchiver(a Archiver) Option {
	return func(o *Orchestrator) { o.archive = a }
}

// New creates an Orchestrator over the given fetcher with the default
// pipeline and composer.
func New(f Fetcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:  f,
		pipeline: rules.DefaultPipeline(),
		composer: scoring.DefaultComposer(),
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Decide runs one full evaluation. It returns an error only when the
// upstream fetch fails; every analyzable input, including a URL that
// carries no listing ID, produces a Result.
func (o *Orchestrator) Decide(ctx context.Context, req Request) (*Result, error) {
	lang := string(req.Language)
	info := RequestInfo{
		Context:      req.Context,
		URL:          req.URL,
		EvaluationID: o.newID(),
		Timestamp:    o.now().UTC(),
	}

	asin := product.ASINFromURL(req.URL)
	if asin == "" {
		return &Result{
			Verdict:  VerdictDiscarded,
			Summary:  i18n.T(lang, i18n.MsgSummaryInvalidURL),
			Outcomes: []rules.Outcome{},
			Request:  info,
		}, nil
	}
	info.ASIN = asin

	raw, err := o.fetcher.FetchProduct(ctx, req.Marketplace, asin)
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", req.Marketplace, asin, err)
	}
	o.archiveRaw(ctx, info, raw)

	sig := product.Normalize(raw)
	eval := o.pipeline.Run(sig, req.Context)

	if failed := eval.FirstFailure(); failed != nil {
		return &Result{
			Verdict:          VerdictDiscarded,
			Summary:          i18n.T(lang, i18n.MsgSummaryDiscarded, failed.Rule),
			Outcomes:         eval.Outcomes,
			ExtractedSignals: &sig,
			Request:          info,
		}, nil
	}

	score := o.composer.Compose(sig, req.Context, eval.Derived.Margin)
	verdict := tier(score.TotalScore)
	return &Result{
		Verdict:          verdict,
		Summary:          i18n.T(lang, i18n.MsgSummaryScored, string(verdict), score.TotalScore),
		Outcomes:         eval.Outcomes,
		StarScore:        &score,
		ExtractedSignals: &sig,
		Request:          info,
	}, nil
}

func tier(total int) Verdict {
	switch {
	case total >= scoring.PassThreshold:
		return VerdictApproved
	case total >= BorderlineThreshold:
		return VerdictBorderline
	default:
		return VerdictDiscarded
	}
}

func (o *Orchestrator) archiveRaw(ctx context.Context, info RequestInfo, raw *product.RawRecord) {
	if o.archive == nil {
		return
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		log.Printf("archive %s: marshal: %v", info.ASIN, err)
		return
	}
	if err := o.archive.Put(ctx, string(info.Context.Marketplace), info.ASIN, info.EvaluationID.String(), payload); err != nil {
		log.Printf("archive %s: %v", info.ASIN, err)
	}
}
