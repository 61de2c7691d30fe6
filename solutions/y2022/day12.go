// Package y2022 contains solutions for the 2022 event.
package y2022

import (
	"fmt"

	"github.com/viant/aoc/parse"
	"github.com/viant/aoc/runner"
	"github.com/viant/aoc/search"
	"github.com/viant/aoc/spatial"
)

func init() {
	runner.Register(2022, 12, runner.Parts{One: day12Part1, Two: day12Part2})
}

type heightmap struct {
	grid  *spatial.Grid[byte]
	start spatial.Pos[int]
	end   spatial.Pos[int]
}

func parseHeightmap(input string) (*heightmap, error) {
	grid := parse.Grid(input)
	start, ok := grid.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return nil, fmt.Errorf("start not found")
	}
	end, ok := grid.Find(func(b byte) bool { return b == 'E' })
	if !ok {
		return nil, fmt.Errorf("end not found")
	}
	grid.Set(start, 'a')
	grid.Set(end, 'z')
	return &heightmap{grid: grid, start: start, end: end}, nil
}

// climbable returns neighbours reachable from p, reversed walks downhill from the summit
func (h *heightmap) climbable(reversed bool) func(spatial.Pos[int]) []spatial.Pos[int] {
	return func(p spatial.Pos[int]) []spatial.Pos[int] {
		var result []spatial.Pos[int]
		height := int(h.grid.At(p))
		for _, n := range h.grid.Neighbours(p) {
			next := int(h.grid.At(n))
			if (!reversed && next <= height+1) || (reversed && height <= next+1) {
				result = append(result, n)
			}
		}
		return result
	}
}

// day12Part1 returns the fewest steps from S to E
func day12Part1(input string) (any, error) {
	h, err := parseHeightmap(input)
	if err != nil {
		return nil, err
	}
	result := search.BFS(h.start, h.climbable(false), func(p spatial.Pos[int]) bool { return p == h.end })
	if !result.Found {
		return nil, fmt.Errorf("no path to summit")
	}
	return result.Cost, nil
}

// day12Part2 returns the fewest steps from any lowest square to E
func day12Part2(input string) (any, error) {
	h, err := parseHeightmap(input)
	if err != nil {
		return nil, err
	}
	result := search.BFS(h.end, h.climbable(true), func(p spatial.Pos[int]) bool { return h.grid.At(p) == 'a' })
	if !result.Found {
		return nil, fmt.Errorf("no trail found")
	}
	return result.Cost, nil
}
