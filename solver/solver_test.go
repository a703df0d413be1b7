package solver

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/search"
)

func mustBoard(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := board.FromRows(rows)
	require.NoError(t, err)
	return b
}

func TestSolve_NilBoard(t *testing.T) {
	_, err := New().Solve(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilBoard)
}

func TestSolve_CentreTower(t *testing.T) {
	sol, err := New().Solve(context.Background(), mustBoard(t, "...", ".T.", "..."))
	require.NoError(t, err)

	assert.NotEmpty(t, sol.RunID)
	assert.Equal(t, search.Route("LLSS"), sol.Result.Route)
	assert.Equal(t, 30, sol.Result.Damage)
	assert.True(t, sol.Result.Reached)
	assert.Len(t, sol.Field.Towers, 1)
	assert.Equal(t, 3, sol.Board.Size())
}

func TestSolve_Options(t *testing.T) {
	b := mustBoard(t, "...", ".T.", "...")

	sol, err := New(WithTowerDamage(3)).Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 9, sol.Result.Damage)

	sol, err = New(WithMaxDamage(10)).Solve(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, sol.Result.Reached)
	assert.Empty(t, sol.Result.Route)
}

func TestSolve_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	s := New(WithTracer(tp.Tracer("test")))
	s.newRunID = func() string { return "run-1" }

	_, err := s.Solve(context.Background(), mustBoard(t, ".T", ".."))
	require.NoError(t, err)

	var names []string
	for _, sp := range rec.Ended() {
		names = append(names, sp.Name())
	}
	assert.ElementsMatch(t, []string{"solver.Solve", "damage.Compute", "search.Run"}, names)

	for _, sp := range rec.Ended() {
		if sp.Name() != "solver.Solve" {
			assert.Equal(t, "solver.Solve", parentName(rec.Ended(), sp), "span %s", sp.Name())
			continue
		}
		attrs := map[string]interface{}{}
		for _, kv := range sp.Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsInterface()
		}
		assert.Equal(t, "run-1", attrs["run.id"])
		assert.Equal(t, int64(2), attrs["board.size"])
		assert.Equal(t, int64(10), attrs["route.damage"])
		assert.Equal(t, true, attrs["route.reached"])
	}
}

func parentName(spans []sdktrace.ReadOnlySpan, child sdktrace.ReadOnlySpan) string {
	for _, sp := range spans {
		if sp.SpanContext().SpanID() == child.Parent().SpanID() {
			return sp.Name()
		}
	}
	return ""
}

func TestSolve_LogsWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger(logger))
	s.newRunID = func() string { return "abc" }

	_, err := s.Solve(context.Background(), mustBoard(t, "..T", ".T.", "T.."))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run_id=abc")
	assert.Contains(t, out, "damage field ready")
	assert.Contains(t, out, "goal unreachable")
}
