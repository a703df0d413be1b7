// Command towerdefense reads a tower-defense board, finds the minimum-damage
// route from the top-left to the bottom-right cell, and writes it to a file.
//
//	towerdefense [flags] instXX.in solXX.out
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/render"
	"github.com/vythor777/towerdefense/sink"
	"github.com/vythor777/towerdefense/solver"
	"github.com/vythor777/towerdefense/telemetry"
)

func main() {
	// A missing .env is fine; the variables may be set directly.
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	opts := []solver.Option{
		solver.WithLogger(logger),
		solver.WithTowerDamage(cfg.TowerDamage),
	}
	if cfg.MaxDamage > 0 {
		opts = append(opts, solver.WithMaxDamage(cfg.MaxDamage))
	}
	if cfg.Trace {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without traces", "err", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown", "err", err)
				}
			}()
			opts = append(opts, solver.WithTracer(telemetry.Tracer("solver")))
		}
	}

	b, err := readBoard(cfg.Input)
	if err != nil {
		return err
	}
	sol, err := solver.New(opts...).Solve(ctx, b)
	if err != nil {
		return err
	}

	out := sink.NewFS(filepath.Dir(cfg.Output))
	name := filepath.Base(cfg.Output)
	if err := out.SaveRoute(ctx, name, sol); err != nil {
		return err
	}
	if cfg.Report {
		if err := out.SaveReport(ctx, name, sol); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Solution: %s\n", sol.Result.Route)
	fmt.Fprintf(stdout, "Total damage: %d\n", sol.Result.Damage)

	if cfg.View {
		screen, err := render.NewScreen()
		if err != nil {
			return err
		}
		return render.View(screen, sol.Field, sol.Result.Route)
	}
	return nil
}

func readBoard(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := board.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
