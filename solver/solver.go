// Package solver runs the full pipeline for one board: damage field, then
// route search, with tracing and structured logging around each stage.
package solver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/damage"
	"github.com/vythor777/towerdefense/search"
	"github.com/vythor777/towerdefense/telemetry"
)

// ErrNilBoard indicates Solve was called without a board.
var ErrNilBoard = errors.New("solver: board is nil")

// Solution is everything one run produced. The renderer consumes Board,
// Field and Result.Route; the sink consumes the whole value.
type Solution struct {
	RunID   string
	Board   *board.Board
	Field   *damage.Field
	Result  search.Result
	Elapsed time.Duration
}

// Solver is safe for concurrent use; each Solve call owns its own state.
type Solver struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	damageOpts []damage.Option
	searchOpts []search.Option
	newRunID   func() string
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// WithTracer sets the tracer. Defaults to telemetry.NoopTracer().
func WithTracer(t trace.Tracer) Option {
	return func(s *Solver) { s.tracer = t }
}

// WithTowerDamage overrides the per-tower damage of the field.
func WithTowerDamage(d int) Option {
	return func(s *Solver) { s.damageOpts = append(s.damageOpts, damage.WithTowerDamage(d)) }
}

// WithMaxDamage caps the accumulated route damage.
func WithMaxDamage(limit int) Option {
	return func(s *Solver) { s.searchOpts = append(s.searchOpts, search.WithMaxDamage(limit)) }
}

// New builds a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   telemetry.NoopTracer(),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve computes the damage field of b and the minimum-damage route across it.
// An unreachable goal is reported through Result.Reached, not as an error.
func (s *Solver) Solve(ctx context.Context, b *board.Board) (*Solution, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	runID := s.newRunID()
	log := s.logger.With("run_id", runID)
	started := time.Now()

	ctx, span := s.tracer.Start(ctx, "solver.Solve")
	defer span.End()
	span.SetAttributes(
		attribute.String("run.id", runID),
		attribute.Int("board.size", b.Size()),
	)

	field, err := s.computeField(ctx, b)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	log.Debug("damage field ready", "size", field.Size, "towers", len(field.Towers), "max_damage", field.Max())

	res, err := s.findRoute(ctx, field)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	sol := &Solution{
		RunID:   runID,
		Board:   b,
		Field:   field,
		Result:  res,
		Elapsed: time.Since(started),
	}
	span.SetAttributes(
		attribute.Bool("route.reached", res.Reached),
		attribute.Int("route.damage", res.Damage),
	)
	if res.Reached {
		log.Info("route found", "route", string(res.Route), "damage", res.Damage, "moves", res.Route.Len(), "dur", sol.Elapsed)
	} else {
		log.Warn("goal unreachable", "expanded", res.Expanded, "dur", sol.Elapsed)
	}

	return sol, nil
}

func (s *Solver) computeField(ctx context.Context, b *board.Board) (*damage.Field, error) {
	_, span := s.tracer.Start(ctx, "damage.Compute")
	defer span.End()

	f, err := damage.Compute(b, s.damageOpts...)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("damage.towers", len(f.Towers)),
		attribute.Int("damage.max", f.Max()),
	)
	return f, nil
}

func (s *Solver) findRoute(ctx context.Context, f *damage.Field) (search.Result, error) {
	_, span := s.tracer.Start(ctx, "search.Run")
	defer span.End()

	res, err := search.FromField(f, s.searchOpts...)
	if err != nil {
		return search.Result{}, err
	}
	span.SetAttributes(
		attribute.Int("search.expanded", res.Expanded),
		attribute.Int("search.route_length", res.Route.Len()),
	)
	return res, nil
}
