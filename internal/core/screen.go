package core

import "strings"

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Span is a run of neighbouring cells on one row sharing a color.
type Span struct {
	Text  string
	Color Color
}

// Screen is a grid of colored runes, row-major. Games draw into it and the
// platform decides how to show it. Writes outside the grid are dropped.
type Screen struct {
	w, h  int
	cells []Cell
}

func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

// Resize sets the grid size and blanks it. Negative sizes count as zero.
func (s *Screen) Resize(width, height int) {
	s.w, s.h = max(width, 0), max(height, 0)
	if n := s.w * s.h; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Put writes one rune.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y); outside the grid it is a blank.
func (s *Screen) At(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.w+x]
}

// Text writes str left to right from (x, y).
func (s *Screen) Text(x, y int, str string, c Color) {
	for _, r := range str {
		s.Put(x, y, r, c)
		x++
	}
}

// CenterText writes str centered on row y.
func (s *Screen) CenterText(y int, str string, c Color) {
	s.Text((s.w-len([]rune(str)))/2, y, str, c)
}

// Fill paints every cell of r.
func (s *Screen) Fill(r Rect, ch rune, c Color) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.h); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.w); x++ {
			s.cells[y*s.w+x] = Cell{Rune: ch, Color: c}
		}
	}
}

// HLine writes n copies of ch from (x, y) to the right.
func (s *Screen) HLine(x, y, n int, ch rune, c Color) {
	for i := range n {
		s.Put(x+i, y, ch, c)
	}
}

// Frame outlines r with box-drawing runes.
func (s *Screen) Frame(r Rect, c Color) {
	x1, y1 := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < x1; x++ {
		s.Put(x, r.Y, '─', c)
		s.Put(x, y1, '─', c)
	}
	for y := r.Y + 1; y < y1; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(x1, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(x1, r.Y, '┐', c)
	s.Put(r.X, y1, '└', c)
	s.Put(x1, y1, '┘', c)
}

// Row returns row y as plain text; outside the grid it is all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Spans splits row y into same-color runs, left to right.
func (s *Screen) Spans(y int) []Span {
	if y < 0 || y >= s.h || s.w == 0 {
		return nil
	}
	var (
		out []Span
		b   strings.Builder
	)
	row := s.cells[y*s.w : (y+1)*s.w]
	cur := row[0].Color
	for _, c := range row {
		if c.Color != cur {
			out = append(out, Span{Text: b.String(), Color: cur})
			b.Reset()
			cur = c.Color
		}
		b.WriteRune(c.Rune)
	}
	return append(out, Span{Text: b.String(), Color: cur})
}

// String is the whole grid as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
