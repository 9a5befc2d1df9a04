package model

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth  = 5
	DefaultLength = 5
)

var ErrInvalidTable = errors.New("table dimensions must be positive")

// Table is the square grid the robot stands on. The south-west corner is (0,0).
type Table struct {
	maxX, maxY int
}

func NewTable(width, length int) (Table, error) {
	if width < 1 || length < 1 {
		return Table{}, fmt.Errorf("%w, got %dx%d", ErrInvalidTable, width, length)
	}
	return Table{maxX: width - 1, maxY: length - 1}, nil
}

func DefaultTable() Table {
	return Table{maxX: DefaultWidth - 1, maxY: DefaultLength - 1}
}

func (t Table) MaxX() int   { return t.maxX }
func (t Table) MaxY() int   { return t.maxY }
func (t Table) Width() int  { return t.maxX + 1 }
func (t Table) Length() int { return t.maxY + 1 }

func (t Table) InBounds(x, y int) bool {
	return x >= 0 && x <= t.maxX && y >= 0 && y <= t.maxY
}

func (t Table) String() string {
	return fmt.Sprintf("%dx%d", t.Width(), t.Length())
}

// Navigator tells the robot which positions are safe on its table.
type Navigator struct {
	table Table
}

func NewNavigator(t Table) Navigator {
	return Navigator{table: t}
}

func (n Navigator) Table() Table {
	return n.table
}

// Safe reports whether p lies on the table.
func (n Navigator) Safe(p Position) bool {
	return n.table.InBounds(p.X, p.Y)
}
