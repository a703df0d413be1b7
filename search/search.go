package search

import (
	"container/heap"
	"fmt"

	"github.com/vythor777/towerdefense/board"
	"github.com/vythor777/towerdefense/damage"
)

// moves is the fixed expansion order: south, north, east, west.
var moves = [4]Direction{South, North, East, West}

// Search runs the minimum-damage search on an n×n grid from (0,0) to
// (n-1,n-1), avoiding towers and paying dmg[B] for every move into B except
// the final move into the goal.
//
// Preconditions and validation (in order):
//  1. n must be ≥ 1 (ErrInvalidSize).
//  2. No damage entry may be negative (ErrNegativeDamage).
//
// An unreachable goal is not an error: the result is the empty route with
// zero damage and Reached == false.
func Search(n int, towers damage.TowerSet, dmg damage.Map, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n <= 0 {
		return Result{}, ErrInvalidSize
	}
	for c, d := range dmg {
		if d < 0 {
			return Result{}, fmt.Errorf("%w: cell %v damage=%d", ErrNegativeDamage, c, d)
		}
	}

	r := &runner{
		n:       n,
		towers:  towers,
		dmg:     dmg,
		options: cfg,
		goal:    board.Coordinate{Row: n - 1, Col: n - 1},
		visited: make(map[board.Coordinate]bool, n*n),
		pq:      make(entryPQ, 0, n),
	}

	return r.run(), nil
}

// FromField runs Search on the output of damage.Compute.
func FromField(f *damage.Field, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilField
	}

	return Search(f.Size, f.Towers, f.Damage, opts...)
}

// runner holds the transient state of one search.
type runner struct {
	n       int
	towers  damage.TowerSet
	dmg     damage.Map
	options Options
	goal    board.Coordinate
	visited map[board.Coordinate]bool
	pq      entryPQ
}

// run drives the frontier until the goal is popped or the frontier empties.
func (r *runner) run() Result {
	start := board.Coordinate{}
	if r.towers.Has(start) || r.towers.Has(r.goal) {
		return Result{}
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{})

	expanded := 0
	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(*entry)
		at := board.Coordinate{Row: e.row, Col: e.col}

		// The goal check precedes the visited check, matching a pop-time settle.
		if at == r.goal {
			return Result{Route: Route(e.route), Damage: e.damage, Reached: true, Expanded: expanded}
		}
		if r.visited[at] {
			continue
		}
		r.visited[at] = true
		expanded++

		r.expand(e, at)
	}

	return Result{Expanded: expanded}
}

// expand pushes every open, in-bounds, unsettled neighbour of at.
func (r *runner) expand(e *entry, at board.Coordinate) {
	for _, d := range moves {
		dr, dc, _ := d.Delta()
		next := at.Add(dr, dc)
		if !r.inBounds(next) || r.towers.Has(next) || r.visited[next] {
			continue
		}

		cost := e.damage
		if next != r.goal {
			cost += r.dmg[next]
		}
		if cost > r.options.MaxDamage {
			continue
		}

		heap.Push(&r.pq, &entry{
			damage: cost,
			row:    next.Row,
			col:    next.Col,
			route:  e.route + string(rune(d)),
		})
	}
}

func (r *runner) inBounds(c board.Coordinate) bool {
	return c.Row >= 0 && c.Row < r.n && c.Col >= 0 && c.Col < r.n
}

// entry is one frontier item: a cell reached by a given route at a given damage.
type entry struct {
	damage   int
	row, col int
	route    string
}

// less orders entries by (damage, row, col, route).
func (a *entry) less(b *entry) bool {
	if a.damage != b.damage {
		return a.damage < b.damage
	}
	if a.row != b.row {
		return a.row < b.row
	}
	if a.col != b.col {
		return a.col < b.col
	}
	return a.route < b.route
}

// entryPQ is a min-heap of *entry under entry.less. Stale entries for settled
// cells stay in the heap and are dropped when popped.
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less reports whether item i sorts before item j.
func (pq entryPQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be an *entry. Called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
