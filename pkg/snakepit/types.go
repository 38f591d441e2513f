package snakepit

// Symbols the server draws on the world grid. A snake is a head-first
// run of head/body/tail cells sharing one owner color; after it dies the
// server repaints it with the dead markers.
const (
	CharVoid  byte = ' '
	CharHead  byte = '@'
	CharBody  byte = '*'
	CharTail  byte = '$'
	CharStone byte = '#'

	CharDeadHead byte = 'x'
	CharDeadBody byte = '%'
	CharDeadTail byte = '~'

	// World frame, drawn around the playing field
	CharBorderHorizontal byte = '-'
	CharBorderVertical   byte = '|'
	CharBorderCorner     byte = '+'
)

// ColorNone marks unowned cells (void, stones, numerals, borders)
const ColorNone = 0

// IsNumeral reports whether ch is one of the ten resource symbols,
// worth their integer value when eaten
func IsNumeral(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// NumeralValue returns the resource value of a numeral symbol
func NumeralValue(ch byte) int {
	return int(ch - '0')
}

func isDeadMarker(ch byte) bool {
	return ch == CharDeadHead || ch == CharDeadBody || ch == CharDeadTail
}

// isBlocking reports whether moving onto ch kills the snake: stones,
// the world frame, and dead snake remains
func isBlocking(ch byte) bool {
	switch ch {
	case CharStone, CharBorderHorizontal, CharBorderVertical, CharBorderCorner:
		return true
	}
	return isDeadMarker(ch)
}

// Position is an (x, y) grid coordinate, a plain value with no identity
// beyond its coordinates
type Position struct {
	X, Y int
}

func (p Position) Add(v Vector) Position {
	return Position{p.X + v.DX, p.Y + v.DY}
}

// The 4-neighborhood of p, in a fixed order
func (p Position) Neighbours() [4]Position {
	return [4]Position{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// Vector is an integer direction delta. The zero value doubles as the
// "no change" sentinel a decision may return.
type Vector struct {
	DX, DY int
}

func (v Vector) Opposite() Vector {
	return Vector{-v.DX, -v.DY}
}

// IsZero reports whether v is the "no change" sentinel
func (v Vector) IsZero() bool {
	return v == Vector{}
}

func (v Vector) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Vector{}:
		return "none"
	}
	return "invalid"
}

// ParseDirection maps a wire direction name to its vector
func ParseDirection(name string) (Vector, bool) {
	switch name {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Vector{}, false
}

// The four canonical directions, y grows downwards
var (
	Up    = Vector{0, -1}
	Down  = Vector{0, 1}
	Left  = Vector{-1, 0}
	Right = Vector{1, 0}
)

// Directions lists the canonical vectors in a fixed order, giving every
// move enumeration in the engine a deterministic layout
var Directions = [4]Vector{Up, Down, Left, Right}
