package model

import (
	"strconv"
	"strings"
)

// Facing is one of the four compass directions, ordered clockwise.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

// Facings returns the valid facings in clockwise order starting at North.
func Facings() []Facing {
	return []Facing{North, East, South, West}
}

// ParseFacing resolves a case-insensitive facing name.
func ParseFacing(name string) (Facing, bool) {
	upper := strings.ToUpper(name)
	for i, n := range facingNames {
		if n == upper {
			return Facing(i), true
		}
	}
	return 0, false
}

// Valid reports whether f is one of the four defined facings.
func (f Facing) Valid() bool {
	return f >= North && f <= West
}

func (f Facing) Right() Facing {
	return Facing((int(f) + 1) % 4)
}

func (f Facing) Left() Facing {
	return Facing((int(f) + 3) % 4)
}

func (f Facing) String() string {
	if !f.Valid() {
		return "Facing(" + strconv.Itoa(int(f)) + ")"
	}
	return facingNames[f]
}

// FacingNames joins the valid facing names with sep.
func FacingNames(sep string) string {
	return strings.Join(facingNames[:], sep)
}
