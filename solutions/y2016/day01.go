// Package y2016 contains solutions for the 2016 event.
package y2016

import (
	"fmt"

	"github.com/viant/aoc/parse"
	"github.com/viant/aoc/runner"
	"github.com/viant/aoc/spatial"
)

func init() {
	runner.Register(2016, 1, runner.Parts{One: day01Part1, Two: day01Part2})
}

type instruction struct {
	turn   byte
	blocks int
}

func parseInstructions(input string) ([]instruction, error) {
	var result []instruction
	for _, token := range parse.Fields(input, ", \n") {
		if len(token) < 2 || (token[0] != 'L' && token[0] != 'R') {
			return nil, fmt.Errorf("invalid instruction: %q", token)
		}
		blocks, err := parse.Int[int](token[1:])
		if err != nil {
			return nil, err
		}
		result = append(result, instruction{turn: token[0], blocks: blocks})
	}
	return result, nil
}

func turn(heading spatial.Pos[int], side byte) spatial.Pos[int] {
	if side == 'R' {
		return heading.TurnRight()
	}
	return heading.TurnLeft()
}

// day01Part1 returns the taxicab distance to the end of the instructions
func day01Part1(input string) (any, error) {
	instructions, err := parseInstructions(input)
	if err != nil {
		return nil, err
	}
	var position spatial.Pos[int]
	heading := spatial.Up
	for _, instr := range instructions {
		heading = turn(heading, instr.turn)
		position = position.Add(heading.Mul(instr.blocks))
	}
	return position.Manhattan(spatial.Pos[int]{}), nil
}

// day01Part2 returns the distance to the first block visited twice
func day01Part2(input string) (any, error) {
	instructions, err := parseInstructions(input)
	if err != nil {
		return nil, err
	}
	var position spatial.Pos[int]
	heading := spatial.Up
	visited := map[spatial.Pos[int]]bool{position: true}
	for _, instr := range instructions {
		heading = turn(heading, instr.turn)
		for i := 0; i < instr.blocks; i++ {
			position = position.Add(heading)
			if visited[position] {
				return position.Manhattan(spatial.Pos[int]{}), nil
			}
			visited[position] = true
		}
	}
	return nil, fmt.Errorf("no location visited twice")
}
