package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedRelative = errors.New("unsupported relative direction")

// Position is a table coordinate plus the direction the robot faces.
type Position struct {
	X, Y   int
	Facing Facing
}

// Front returns the position one unit ahead. The receiver is not modified.
func (p Position) Front() Position {
	x, y := p.X, p.Y
	switch p.Facing {
	case North:
		y++
	case East:
		x++
	case South:
		y--
	case West:
		x--
	default:
		panic(fmt.Sprintf("model: facing %d outside %s", int(p.Facing), FacingNames(", ")))
	}
	return Position{X: x, Y: y, Facing: p.Facing}
}

// ChangeFacingTo turns the position "left" or "right" in place.
func (p *Position) ChangeFacingTo(relative string) error {
	switch strings.ToLower(relative) {
	case "left":
		p.Facing = p.Facing.Left()
	case "right":
		p.Facing = p.Facing.Right()
	default:
		return fmt.Errorf("%w %q, only left and right are allowed", ErrUnsupportedRelative, relative)
	}
	return nil
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d,%s", p.X, p.Y, p.Facing)
}
