package model

import (
	"bufio"
	"io"
)

var facingGlyphs = [...]byte{'^', '>', 'v', '<'}

// Render draws the table with north at the top. The robot is drawn as an
// arrow when placed is true.
func Render(w io.Writer, t Table, pos Position, placed bool) error {
	bw := bufio.NewWriter(w)
	for y := t.MaxY(); y >= 0; y-- {
		for x := 0; x <= t.MaxX(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if placed && pos.X == x && pos.Y == y && pos.Facing.Valid() {
				bw.WriteByte(facingGlyphs[pos.Facing])
			} else {
				bw.WriteByte('.')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
