package sim

import (
	"fmt"
	"sort"

	"syncscope/core"
)

// Pattern reports whether column col of row is lit
type Pattern func(row, col int) bool

// Checker lights alternating squares of size columns by size rows
func Checker(size int) Pattern {
	if size <= 0 {
		size = 1
	}
	return func(row, col int) bool {
		return (row/size+col/size)%2 == 0
	}
}

// Bars lights vertical bars of width columns every 2*width columns
func Bars(width int) Pattern {
	if width <= 0 {
		width = 1
	}
	return func(row, col int) bool {
		return (col/width)%2 == 0
	}
}

// Circle lights a filled ellipse centred on the raster
func Circle() Pattern {
	cx, cy := float64(core.VisWidth)/2, float64(core.LineCount)/2
	rx, ry := cx*0.8, cy*0.8
	return func(row, col int) bool {
		dx := (float64(col) - cx) / rx
		dy := (float64(row) - cy) / ry
		return dx*dx+dy*dy <= 1
	}
}

var patterns = map[string]func() Pattern{
	"checker": func() Pattern { return Checker(20) },
	"bars":    func() Pattern { return Bars(40) },
	"circle":  Circle,
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	mk, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %v)", name, PatternNames())
	}
	return mk(), nil
}

// PatternNames lists the built-in patterns
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runs splits one row of a pattern into lit column ranges [from, to)
func Runs(p Pattern, row int) [][2]int {
	var runs [][2]int
	start := -1
	for col := 0; col < core.VisWidth; col++ {
		lit := p(row, col)
		switch {
		case lit && start < 0:
			start = col
		case !lit && start >= 0:
			runs = append(runs, [2]int{start, col})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, core.VisWidth})
	}
	return runs
}
