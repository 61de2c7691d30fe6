// Package y2024 contains solutions for the 2024 event.
package y2024

import (
	"fmt"

	"github.com/viant/aoc/parse"
	"github.com/viant/aoc/runner"
	"github.com/viant/aoc/spatial"
)

func init() {
	runner.Register(2024, 6, runner.Parts{One: day06Part1, Two: day06Part2})
}

type guardState struct {
	pos     spatial.Pos[int]
	heading spatial.Pos[int]
}

func parseLab(input string) (*spatial.Grid[byte], spatial.Pos[int], error) {
	grid := parse.Grid(input)
	start, ok := grid.Find(func(b byte) bool { return b == '^' })
	if !ok {
		return nil, start, fmt.Errorf("guard not found")
	}
	return grid, start, nil
}

// patrol walks the guard until it leaves the lab, it returns visited positions or false if the guard loops
func patrol(grid *spatial.Grid[byte], start spatial.Pos[int]) (map[spatial.Pos[int]]bool, bool) {
	visited := map[spatial.Pos[int]]bool{start: true}
	seen := map[guardState]bool{}
	state := guardState{pos: start, heading: spatial.Up}
	for {
		if seen[state] {
			return visited, false
		}
		seen[state] = true
		next := state.pos.Add(state.heading)
		cell, ok := grid.Get(next)
		if !ok {
			return visited, true
		}
		if cell == '#' {
			state.heading = state.heading.TurnRight()
			continue
		}
		state.pos = next
		visited[next] = true
	}
}

// day06Part1 counts distinct positions the guard visits before leaving
func day06Part1(input string) (any, error) {
	grid, start, err := parseLab(input)
	if err != nil {
		return nil, err
	}
	visited, _ := patrol(grid, start)
	return len(visited), nil
}

// day06Part2 counts positions where a single new obstruction traps the guard in a loop
func day06Part2(input string) (any, error) {
	grid, start, err := parseLab(input)
	if err != nil {
		return nil, err
	}
	visited, _ := patrol(grid, start)
	count := 0
	for candidate := range visited {
		if candidate == start {
			continue
		}
		grid.Set(candidate, '#')
		if _, escaped := patrol(grid, start); !escaped {
			count++
		}
		grid.Set(candidate, '.')
	}
	return count, nil
}
