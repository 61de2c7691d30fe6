// Package y2015 contains solutions for the 2015 event.
package y2015

import (
	"github.com/viant/aoc/runner"
	"github.com/viant/aoc/spatial"
)

func init() {
	runner.Register(2015, 3, runner.Parts{One: day03Part1, Two: day03Part2})
}

// day03Part1 counts houses visited by Santa following arrow directions
func day03Part1(input string) (any, error) {
	return len(deliver(input, 1)), nil
}

// day03Part2 counts houses visited by Santa and Robo-Santa taking turns
func day03Part2(input string) (any, error) {
	return len(deliver(input, 2)), nil
}

func deliver(input string, couriers int) map[spatial.Pos[int]]bool {
	positions := make([]spatial.Pos[int], couriers)
	visited := map[spatial.Pos[int]]bool{{}: true}
	moves := 0
	for i := 0; i < len(input); i++ {
		if !spatial.IsDir(input[i]) {
			continue
		}
		courier := moves % couriers
		positions[courier] = positions[courier].Add(spatial.Dir[int](input[i]))
		visited[positions[courier]] = true
		moves++
	}
	return visited
}
