// Package sink emits solver results: the bare route string the original
// output format expects, and an optional JSON report.
package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/search"
	"github.com/vythor777/towerdefense/solver"
)

// ErrNoSolution indicates a nil solution was handed to a sink.
var ErrNoSolution = errors.New("sink: solution is nil")

// WriteRoute writes r with no trailing newline.
func WriteRoute(w io.Writer, r search.Route) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Report is the JSON form of a solution.
type Report struct {
	RunID   string   `json:"run_id"`
	Size    int      `json:"size"`
	Route   string   `json:"route"`
	Damage  int      `json:"damage"`
	Reached bool     `json:"reached"`
	Towers  [][2]int `json:"towers"`
	Field   [][]int  `json:"field"` // -1 marks a tower
	Board   []string `json:"board"`
}

// NewReport flattens sol into a Report.
func NewReport(sol *solver.Solution) (*Report, error) {
	if sol == nil || sol.Board == nil || sol.Field == nil {
		return nil, ErrNoSolution
	}
	n := sol.Field.Size
	rep := &Report{
		RunID:   sol.RunID,
		Size:    n,
		Route:   string(sol.Result.Route),
		Damage:  sol.Result.Damage,
		Reached: sol.Result.Reached,
		Towers:  [][2]int{},
		Field:   make([][]int, n),
		Board:   sol.Board.Rows(),
	}
	for _, t := range sol.Board.Towers() {
		rep.Towers = append(rep.Towers, [2]int{t.Row, t.Col})
	}
	for r := 0; r < n; r++ {
		rep.Field[r] = make([]int, n)
		for c := 0; c < n; c++ {
			cell := board.Coordinate{Row: r, Col: c}
			if sol.Field.IsTower(cell) {
				rep.Field[r][c] = -1
				continue
			}
			rep.Field[r][c] = sol.Field.At(cell)
		}
	}
	return rep, nil
}

// WriteReport writes sol as indented JSON.
func WriteReport(w io.Writer, sol *solver.Solution) error {
	rep, err := NewReport(sol)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// FS writes results as files under a directory.
type FS struct{ dir string }

// NewFS returns an FS rooted at dir. The directory is created on first write.
func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(name string) string {
	return filepath.Join(s.dir, strings.TrimSpace(name))
}

// SaveRoute writes the route of sol to <dir>/<name>.
func (s *FS) SaveRoute(ctx context.Context, name string, sol *solver.Solution) error {
	if sol == nil {
		return ErrNoSolution
	}
	return s.write(name, func(w io.Writer) error { return WriteRoute(w, sol.Result.Route) })
}

// SaveReport writes the JSON report of sol to <dir>/<name>.json.
func (s *FS) SaveReport(ctx context.Context, name string, sol *solver.Solution) error {
	return s.write(name+".json", func(w io.Writer) error { return WriteReport(w, sol) })
}

func (s *FS) write(name string, fill func(io.Writer) error) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("sink: missing file name")
	}
	target := s.pathFor(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("sink: write %s: %w", target, err)
	}
	return f.Close()
}
