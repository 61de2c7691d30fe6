package cycle

import (
	"errors"
	"fmt"
)

// ErrNoCycle is returned when no state repeats within the step limit
var ErrNoCycle = errors.New("no cycle detected")

// Sequence holds the states observed until the first repetition
type Sequence[S any] struct {
	States []S
	// Start is the index of the first state that belongs to the cycle
	Start int
	// Length is the number of states in the cycle
	Length int
}

// Detect applies step to initial until a state key repeats, at most limit steps.
// Each call to step must return a new state, not mutate its argument.
func Detect[S any, K comparable](initial S, step func(S) S, key func(S) K, limit int) (*Sequence[S], error) {
	seen := map[K]int{key(initial): 0}
	states := []S{initial}
	current := initial
	for i := 1; i <= limit; i++ {
		current = step(current)
		k := key(current)
		if first, ok := seen[k]; ok {
			return &Sequence[S]{States: states, Start: first, Length: i - first}, nil
		}
		seen[k] = i
		states = append(states, current)
	}
	return nil, fmt.Errorf("%w after %d steps", ErrNoCycle, limit)
}

// Nth returns the state after n steps
func (s *Sequence[S]) Nth(n int) S {
	if n < len(s.States) {
		return s.States[n]
	}
	return s.States[s.Start+(n-s.Start)%s.Length]
}
