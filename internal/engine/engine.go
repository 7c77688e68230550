// Package engine orchestrates a context-space analysis end to end: region
// resolution, grid expansion, parallel per-cell tensor synthesis, action
// recommendation, aggregation, and dispatch to the configured renderer.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hexsight/contextspace/internal/domain"
	"github.com/hexsight/contextspace/internal/observability"
)

// Request defaults applied when a field is absent or out of range.
const (
	DefaultYearOffset = 5
	DefaultScenario   = "SSP2-4.5"
)

// ErrInvalidRequest marks requests the engine refuses outright. Callers
// distinguish it from internal failures with errors.Is.
var ErrInvalidRequest = errors.New("invalid analysis request")

// Renderer receives the finished analysis for visualization. Implementations
// must not mutate the payload.
type Renderer interface {
	Render(ctx context.Context, payload domain.RenderPayload) error
}

// Request describes one analysis invocation.
type Request struct {
	RegionName string `json:"region_name"`
	YearOffset int    `json:"year_offset"`
	Scenario   string `json:"scenario"`
	Scale      string `json:"scale"`
}

// Result pairs the full analysis with its caller-facing summary.
type Result struct {
	Summary  string              `json:"summary"`
	Analysis domain.GridAnalysis `json:"analysis"`
}

// Config tunes the engine.
type Config struct {
	// Workers bounds per-cell parallelism; zero means one per CPU.
	Workers int
}

// Engine computes context-space analyses. Safe for concurrent use.
type Engine struct {
	index    domain.SpatialIndex
	provider domain.DimensionProvider
	renderer Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
	workers  int
}

// New builds an engine. Provider and renderer may be nil, in which case
// tensors are synthesized procedurally and no render dispatch happens.
func New(cfg Config, index domain.SpatialIndex, provider domain.DimensionProvider, renderer Renderer, logger *slog.Logger, metrics *observability.Metrics) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		index:    index,
		provider: provider,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
		workers:  workers,
	}
}

// CheckReadiness reports whether the engine can serve requests.
func (e *Engine) CheckReadiness(ctx context.Context) error {
	if e.index == nil {
		return errors.New("no spatial index configured")
	}
	return domain.ValidateCatalog()
}

// AnalyzeContextSpace runs one full analysis. Unknown regions resolve to the
// default center and unknown scales to city scale, so the only rejected
// request is one with an empty region name.
func (e *Engine) AnalyzeContextSpace(ctx context.Context, req Request) (Result, error) {
	if req.RegionName == "" {
		return Result{}, fmt.Errorf("%w: region_name is required", ErrInvalidRequest)
	}

	yearOffset := req.YearOffset
	if yearOffset <= 0 {
		yearOffset = DefaultYearOffset
	}
	scenario := req.Scenario
	if scenario == "" {
		scenario = DefaultScenario
	}
	scale := domain.ParseScale(req.Scale)

	start := domain.Now()

	plan, err := domain.GenerateGrid(e.index, req.RegionName, scale)
	if err != nil {
		return Result{}, fmt.Errorf("generate grid for %q: %w", req.RegionName, err)
	}

	cells := make([]domain.HexCell, len(plan.Cells))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, desc := range plan.Cells {
		g.Go(func() error {
			boundary, err := domain.CellBoundary(e.index, desc.ID)
			if err != nil {
				return err
			}
			tensor := domain.ResolveTensor(gctx, e.provider, desc.Center, plan.Center, scale, e.logger)
			cells[i] = domain.HexCell{
				ID:         desc.ID,
				Resolution: plan.Resolution,
				Center:     desc.Center,
				Boundary:   boundary,
				Tensor:     tensor,
				Actions:    domain.RecommendActions(tensor),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("resolve cells for %q: %w", req.RegionName, err)
	}

	analysis := domain.GridAnalysis{
		ID:          uuid.New(),
		RegionName:  req.RegionName,
		Scenario:    scenario,
		TargetYear:  domain.Now().Year() + yearOffset,
		Scale:       scale,
		GridCenter:  plan.Center,
		Cells:       cells,
		Stats:       domain.AggregateStats(cells),
		GeneratedAt: domain.Now(),
	}

	e.metrics.AnalysesTotal.Inc()
	e.metrics.CellsComputed.Add(float64(len(cells)))
	e.metrics.CellsPerAnalysis.Observe(float64(len(cells)))
	for _, c := range cells {
		e.metrics.TensorSources.WithLabelValues(c.Tensor.Source).Inc()
	}
	e.metrics.AnalysisDuration.Observe(domain.Now().Sub(start).Seconds())

	e.dispatch(ctx, analysis)

	e.logger.Info("analysis complete",
		"analysis_id", analysis.ID,
		"region", analysis.RegionName,
		"scale", analysis.Scale,
		"cells", len(analysis.Cells),
		"avg_risk", analysis.Stats.AvgRisk,
	)

	return Result{Summary: domain.Summarize(analysis), Analysis: analysis}, nil
}

// dispatch hands the analysis to the renderer. Render failures are logged
// and swallowed; the analysis result is already complete and must reach the
// caller regardless.
func (e *Engine) dispatch(ctx context.Context, analysis domain.GridAnalysis) {
	if e.renderer == nil {
		return
	}
	payload := domain.RenderPayload{
		Location:     analysis.RegionName,
		GridAnalysis: analysis,
	}
	if err := e.renderer.Render(ctx, payload); err != nil {
		e.metrics.RendererDispatches.WithLabelValues("error").Inc()
		e.logger.Error("renderer dispatch failed",
			"analysis_id", analysis.ID,
			"region", analysis.RegionName,
			"error", err,
		)
		return
	}
	e.metrics.RendererDispatches.WithLabelValues("success").Inc()
}
