package snakepit

import (
	"fmt"
	"strings"
)

// Cell is one grid point: a drawn symbol plus the color of the snake
// owning it (ColorNone for everything that is not a snake)
type Cell struct {
	Char  byte
	Color int
}

// World is a snapshot of the whole grid. During one decision it is
// treated as immutable and shared by reference across every game state
// clone; only the server (or the local game loop) redraws it between
// frames.
type World struct {
	width, height int
	cells         []Cell
}

// NewWorld creates a void-filled world of the given dimensions
func NewWorld(width, height int) *World {
	world := &World{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range world.cells {
		world.cells[i].Char = CharVoid
	}
	return world
}

// NewBorderedWorld creates a void world enclosed in the standard frame
func NewBorderedWorld(width, height int) *World {
	world := NewWorld(width, height)
	for x := 0; x < width; x++ {
		world.Set(Position{x, 0}, CharBorderHorizontal, ColorNone)
		world.Set(Position{x, height - 1}, CharBorderHorizontal, ColorNone)
	}
	for y := 0; y < height; y++ {
		world.Set(Position{0, y}, CharBorderVertical, ColorNone)
		world.Set(Position{width - 1, y}, CharBorderVertical, ColorNone)
	}
	for _, p := range []Position{{0, 0}, {width - 1, 0}, {0, height - 1}, {width - 1, height - 1}} {
		world.Set(p, CharBorderCorner, ColorNone)
	}
	return world
}

// NewWorldFromRows builds a world from one string per row, top to
// bottom. colors may be nil (all cells unowned) or must match the grid
// shape, one color per cell.
func NewWorldFromRows(rows []string, colors [][]int) (*World, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world: no rows")
	}
	if colors != nil && len(colors) != len(rows) {
		return nil, fmt.Errorf("world: %d color rows for %d rows", len(colors), len(rows))
	}
	width := len(rows[0])
	world := NewWorld(width, len(rows))

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("world: row %d has %d cells, want %d", y, len(row), width)
		}
		if colors != nil && len(colors[y]) != width {
			return nil, fmt.Errorf("world: color row %d has %d cells, want %d", y, len(colors[y]), width)
		}
		for x := 0; x < width; x++ {
			color := ColorNone
			if colors != nil {
				color = colors[y][x]
			}
			world.Set(Position{x, y}, row[x], color)
		}
	}
	return world, nil
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

func (w *World) Contains(p Position) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

// At returns the cell at p. Out-of-bounds positions read as stone, so a
// malformed frame without a border degrades to walls instead of a panic.
func (w *World) At(p Position) Cell {
	if !w.Contains(p) {
		return Cell{Char: CharStone, Color: ColorNone}
	}
	return w.cells[p.Y*w.width+p.X]
}

func (w *World) Set(p Position, ch byte, color int) {
	if !w.Contains(p) {
		return
	}
	w.cells[p.Y*w.width+p.X] = Cell{Char: ch, Color: color}
}

// Rows renders the symbol grid as one string per row
func (w *World) Rows() []string {
	rows := make([]string, w.height)
	line := make([]byte, w.width)
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			line[x] = w.cells[y*w.width+x].Char
		}
		rows[y] = string(line)
	}
	return rows
}

func (w *World) String() string {
	return strings.Join(w.Rows(), "\n")
}
