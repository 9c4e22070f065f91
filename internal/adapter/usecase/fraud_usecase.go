package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/fraud"
	"traffic-exchange/internal/core/port"
)

// FraudOptions bounds the data a fraud report looks at.
type FraudOptions struct {
	Window   time.Duration
	RowLimit int
}

// FraudUseCase builds the admin fraud report from recent activity. The
// report is advisory: nothing here changes balances or blocks users.
type FraudUseCase struct {
	repo   port.FraudRepository
	cache  port.ReportCache
	opts   FraudOptions
	passes []fraud.Pass
	logger *slog.Logger

	now func() time.Time
}

// NewFraudUseCase wires the fraud report. cache may be nil, in which case
// every call runs the full analysis.
func NewFraudUseCase(repo port.FraudRepository, cache port.ReportCache, opts FraudOptions, logger *slog.Logger) *FraudUseCase {
	if opts.Window <= 0 {
		opts.Window = 30 * 24 * time.Hour
	}
	if opts.RowLimit <= 0 {
		opts.RowLimit = 500
	}
	return &FraudUseCase{
		repo:   repo,
		cache:  cache,
		opts:   opts,
		passes: fraud.DefaultPasses,
		logger: logger,
		now:    time.Now,
	}
}

// Analyze returns the current fraud report. The activity and review reads run
// concurrently and any failure fails the whole report; partial results are
// never returned.
func (u *FraudUseCase) Analyze(ctx context.Context) (report *port.FraudReport, err error) {
	ctx, span := tracer.Start(ctx, "fraud.Analyze")
	defer func() { finishSpan(span, err) }()

	if u.cache != nil {
		cached, err := u.cache.Get(ctx)
		if err != nil {
			u.logger.WarnContext(ctx, "fraud report cache read failed", slog.Any("error", err))
		} else if cached != nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}

	now := u.now().UTC()
	since := now.Add(-u.opts.Window)
	ds := fraud.Dataset{Now: now}
	var reviews []domain.FraudReview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.Visits, err = u.repo.RecentVisits(gctx, since, u.opts.RowLimit)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Profiles, err = u.repo.RecentProfiles(gctx, since, u.opts.RowLimit)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Transactions, err = u.repo.RecentTransactions(gctx, since, u.opts.RowLimit)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = u.repo.ListReviews(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		err = fmt.Errorf("analyze: %w: %w", port.ErrAnalysisUnavailable, err)
		return nil, err
	}

	findings := fraud.Analyze(ds, u.passes...)
	fraud.ApplyReviews(findings, reviews)
	report = &port.FraudReport{
		Findings:    findings,
		Stats:       fraud.Summarize(findings, now),
		WindowStart: since,
		GeneratedAt: now,
	}
	span.SetAttributes(attribute.Int("fraud.findings", len(findings)))

	if u.cache != nil {
		if err := u.cache.Set(ctx, report); err != nil {
			u.logger.WarnContext(ctx, "fraud report cache write failed", slog.Any("error", err))
		}
	}
	u.logger.InfoContext(ctx, "fraud report generated",
		slog.Int("findings", len(findings)),
		slog.Int("visits", len(ds.Visits)),
		slog.Int("profiles", len(ds.Profiles)),
		slog.Int("transactions", len(ds.Transactions)),
	)
	return report, nil
}

// ReviewFinding records an admin disposition for the findings of one user
// in one category. The cached report is dropped so the next Analyze shows
// it.
func (u *FraudUseCase) ReviewFinding(ctx context.Context, adminID string, req port.ReviewFindingReq) (*domain.FraudReview, error) {
	if strings.TrimSpace(req.UserID) == "" || !req.Category.Valid() || !req.Status.Valid() {
		return nil, fmt.Errorf("review finding: %w", port.ErrInvalidInput)
	}
	review := domain.FraudReview{
		UserID:     req.UserID,
		Category:   req.Category,
		Status:     req.Status,
		Note:       req.Note,
		ReviewedBy: adminID,
		ReviewedAt: u.now().UTC(),
	}
	if err := u.repo.SaveReview(ctx, review); err != nil {
		return nil, fmt.Errorf("review finding: %w", err)
	}
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx); err != nil {
			u.logger.WarnContext(ctx, "fraud report cache invalidate failed", slog.Any("error", err))
		}
	}
	u.logger.InfoContext(ctx, "fraud finding reviewed",
		slog.String("user_id", req.UserID),
		slog.String("category", string(req.Category)),
		slog.String("status", string(req.Status)),
		slog.String("admin_id", adminID),
	)
	return &review, nil
}
