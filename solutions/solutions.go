// Package solutions registers every worked puzzle with the default runner registry.
package solutions

import (
	_ "github.com/viant/aoc/solutions/y2015"
	_ "github.com/viant/aoc/solutions/y2016"
	_ "github.com/viant/aoc/solutions/y2022"
	_ "github.com/viant/aoc/solutions/y2024"
)
