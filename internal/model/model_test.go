package model

import (
	"bytes"
	"errors"
	"testing"
)

func TestFacingRotation(t *testing.T) {
	for _, f := range Facings() {
		if got := f.Left().Right(); got != f {
			t.Errorf("%s.Left().Right() = %s", f, got)
		}
		if got := f.Right().Left(); got != f {
			t.Errorf("%s.Right().Left() = %s", f, got)
		}
		if got := f.Right().Right().Right().Right(); got != f {
			t.Errorf("four rights from %s = %s", f, got)
		}
	}
	if North.Right() != East || East.Right() != South || South.Right() != West || West.Right() != North {
		t.Error("right does not follow N>E>S>W")
	}
	if North.Left() != West {
		t.Errorf("North.Left() = %s", North.Left())
	}
}

func TestParseFacing(t *testing.T) {
	tests := []struct {
		in   string
		want Facing
		ok   bool
	}{
		{"NORTH", North, true},
		{"east", East, true},
		{"South", South, true},
		{"wEsT", West, true},
		{"SOUTH_EAST", 0, false},
		{"", 0, false},
		{" NORTH", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFacing(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFacing(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFacingString(t *testing.T) {
	if s := West.String(); s != "WEST" {
		t.Errorf("West.String() = %q", s)
	}
	if s := Facing(7).String(); s != "Facing(7)" {
		t.Errorf("Facing(7).String() = %q", s)
	}
	if s := FacingNames(", "); s != "NORTH, EAST, SOUTH, WEST" {
		t.Errorf("FacingNames = %q", s)
	}
}

func TestFront(t *testing.T) {
	start := Position{X: 2, Y: 2}
	tests := []struct {
		facing Facing
		x, y   int
	}{
		{North, 2, 3},
		{East, 3, 2},
		{South, 2, 1},
		{West, 1, 2},
	}
	for _, tt := range tests {
		p := start
		p.Facing = tt.facing
		got := p.Front()
		want := Position{X: tt.x, Y: tt.y, Facing: tt.facing}
		if got != want {
			t.Errorf("Front() facing %s = %v, want %v", tt.facing, got, want)
		}
		if p.X != 2 || p.Y != 2 {
			t.Errorf("Front() modified receiver: %v", p)
		}
	}
}

func TestFrontPanicsOnInvalidFacing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Position{Facing: Facing(9)}.Front()
}

func TestChangeFacingTo(t *testing.T) {
	p := Position{Facing: North}
	if err := p.ChangeFacingTo("LEFT"); err != nil {
		t.Fatal(err)
	}
	if p.Facing != West {
		t.Errorf("after left facing = %s", p.Facing)
	}
	if err := p.ChangeFacingTo("right"); err != nil {
		t.Fatal(err)
	}
	if p.Facing != North {
		t.Errorf("after right facing = %s", p.Facing)
	}
	err := p.ChangeFacingTo("up")
	if !errors.Is(err, ErrUnsupportedRelative) {
		t.Errorf("ChangeFacingTo(up) err = %v", err)
	}
	if p.Facing != North {
		t.Errorf("failed turn changed facing to %s", p.Facing)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{X: 0, Y: 1, Facing: North}
	if s := p.String(); s != "0,1,NORTH" {
		t.Errorf("String() = %q", s)
	}
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		w, l    int
		wantErr bool
	}{
		{5, 5, false},
		{1, 1, false},
		{3, 7, false},
		{0, 5, true},
		{5, 0, true},
		{-1, -1, true},
	}
	for _, tt := range tests {
		tab, err := NewTable(tt.w, tt.l)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("NewTable(%d,%d) err = %v", tt.w, tt.l, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewTable(%d,%d): %v", tt.w, tt.l, err)
			continue
		}
		if tab.MaxX() != tt.w-1 || tab.MaxY() != tt.l-1 {
			t.Errorf("NewTable(%d,%d) max = %d,%d", tt.w, tt.l, tab.MaxX(), tab.MaxY())
		}
	}
	d := DefaultTable()
	if d.MaxX() != 4 || d.MaxY() != 4 || d.String() != "5x5" {
		t.Errorf("DefaultTable = %v", d)
	}
}

func TestNavigatorSafe(t *testing.T) {
	tab, err := NewTable(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	nav := NewNavigator(tab)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 2, true},
		{2, 1, true},
		{5, 0, false},
		{0, 3, false},
		{-1, 0, false},
		{0, -1, false},
		{1 << 40, 0, false},
		{-(1 << 40), -(1 << 40), false},
	}
	for _, tt := range tests {
		for _, f := range Facings() {
			if got := nav.Safe(Position{X: tt.x, Y: tt.y, Facing: f}); got != tt.want {
				t.Errorf("Safe(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	}
}

func TestRender(t *testing.T) {
	tab, _ := NewTable(3, 2)
	var buf bytes.Buffer
	if err := Render(&buf, tab, Position{X: 2, Y: 1, Facing: East}, true); err != nil {
		t.Fatal(err)
	}
	want := ". . >\n. . .\n"
	if buf.String() != want {
		t.Errorf("Render placed =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	Render(&buf, tab, Position{}, false)
	if buf.String() != ". . .\n. . .\n" {
		t.Errorf("Render unplaced = %q", buf.String())
	}
}
