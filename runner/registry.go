package runner

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Solution solves both parts of a puzzle for a given input
type Solution interface {
	Part1(input string) (any, error)
	Part2(input string) (any, error)
}

// Solver solves a single puzzle part
type Solver func(input string) (any, error)

// Parts adapts a pair of solvers to Solution, a nil solver means the part is not solved yet
type Parts struct {
	One Solver
	Two Solver
}

// ErrUnsolved is returned for a part without a solver
var ErrUnsolved = errors.New("part not solved")

// Part1 runs One, ErrUnsolved when it is nil
func (p Parts) Part1(input string) (any, error) {
	if p.One == nil {
		return nil, ErrUnsolved
	}
	return p.One(input)
}

// Part2 runs Two, ErrUnsolved when it is nil
func (p Parts) Part2(input string) (any, error) {
	if p.Two == nil {
		return nil, ErrUnsolved
	}
	return p.Two(input)
}

// Key identifies a puzzle
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%02d", k.Year, k.Day)
}

// Registry holds solutions by puzzle
type Registry struct {
	mux       sync.RWMutex
	solutions map[Key]Solution
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{solutions: map[Key]Solution{}}
}

// Register adds a solution, it panics on duplicates as registration happens at init time
func (r *Registry) Register(year, day int, solution Solution) {
	r.mux.Lock()
	defer r.mux.Unlock()
	key := Key{Year: year, Day: day}
	if _, ok := r.solutions[key]; ok {
		panic(fmt.Sprintf("solution %v already registered", key))
	}
	r.solutions[key] = solution
}

// Lookup returns a registered solution
func (r *Registry) Lookup(year, day int) (Solution, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	solution, ok := r.solutions[Key{Year: year, Day: day}]
	return solution, ok
}

// Days returns the sorted registered days of year
func (r *Registry) Days(year int) []int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	var days []int
	for key := range r.solutions {
		if key.Year == year {
			days = append(days, key.Day)
		}
	}
	sort.Ints(days)
	return days
}

// Years returns the sorted years with at least one solution
func (r *Registry) Years() []int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	unique := map[int]bool{}
	for key := range r.solutions {
		unique[key.Year] = true
	}
	years := make([]int, 0, len(unique))
	for year := range unique {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

var registry = NewRegistry()

// Default returns the process wide registry used by Register
func Default() *Registry {
	return registry
}

// Register adds a solution to the default registry
func Register(year, day int, solution Solution) {
	registry.Register(year, day, solution)
}
