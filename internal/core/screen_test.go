package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := range 4 {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected blank", y, got)
		}
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		rows []string // Expected rows of a 7x4 screen
	}{
		{
			name: "text",
			draw: func(s *Screen) { s.DrawText(1, 1, "hi") },
			rows: []string{"       ", " hi    ", "       ", "       "},
		},
		{
			name: "text clipped at right edge",
			draw: func(s *Screen) { s.DrawText(5, 0, "love") },
			rows: []string{"     lo", "       ", "       ", "       "},
		},
		{
			name: "multi-byte runes take one cell",
			draw: func(s *Screen) { s.DrawText(0, 0, "♥♥♥") },
			rows: []string{"♥♥♥    ", "       ", "       ", "       "},
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(2, "YES") },
			rows: []string{"       ", "       ", "  YES  ", "       "},
		},
		{
			name: "rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 2, 2), '#') },
			rows: []string{"       ", " ##    ", " ##    ", "       "},
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			rows: []string{"┌──┐   ", "│  │   ", "└──┘   ", "       "},
		},
		{
			name: "box too small",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 1, 3)) },
			rows: []string{"       ", "       ", "       ", "       "},
		},
		{
			name: "lines",
			draw: func(s *Screen) {
				s.DrawHLine(0, 3, 3, '-')
				s.DrawVLine(6, 0, 2, '|')
			},
			rows: []string{"      |", "      |", "       ", "---    "},
		},
		{
			name: "out of bounds ignored",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(0, -1, 'x')
				s.Set(7, 0, 'x')
				s.Set(0, 4, 'x')
			},
			rows: []string{"       ", "       ", "       ", "       "},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(7, 4)
			tc.draw(s)
			for y, want := range tc.rows {
				if got := s.Row(y); got != want {
					t.Errorf("Row(%d) = %q, expected %q", y, got, want)
				}
			}
		})
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('*')
	if got := s.String(); got != "***\n***" {
		t.Errorf("after Fill String() = %q", got)
	}

	s.DrawTextColored(0, 0, "ab", ColorPink)
	s.Clear()
	if got := s.String(); got != "   \n   " {
		t.Errorf("after Clear String() = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenGetOutOfBounds(t *testing.T) {
	s := NewScreen(2, 2)
	if s.Get(-1, 0) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if got := s.Row(9); got != "  " {
		t.Errorf("out of bounds Row = %q, expected blank", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Memory")
	s.DrawText(0, 5, "gone")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Memo" {
		t.Errorf("Row(0) = %q, expected the top-left to survive", got)
	}

	s.Resize(8, 6)
	if got := s.Row(0); got != "Memo    " {
		t.Errorf("Row(0) after growing = %q", got)
	}
	if got := s.Row(5); got != "        " {
		t.Errorf("Row(5) = %q, content cut by shrinking should not return", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "♥ok", ColorBrightRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '♥' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red heart", cell)
	}
	if s.GetCell(2, 1).Color != ColorBrightRed || s.GetCell(4, 1).Color != ColorDefault {
		t.Errorf("color should cover exactly the drawn runes, row = %q", s.Row(1))
	}

	s.DrawBoxColored(NewRect(0, 0, 3, 3), ColorRose)
	if c := s.GetCell(2, 2); c.Rune != '┘' || c.Color != ColorRose {
		t.Errorf("box corner = %+v, expected rose ┘", c)
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorPink, "218"},
		{ColorRose, "204"},
		{Color(250), ""},
	}

	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.color, got, tc.want)
		}
	}

	colors := Colors()
	if colors[0] != ColorDefault || colors[len(colors)-1] != ColorRose {
		t.Errorf("Colors() = %v, expected ColorDefault..ColorRose", colors)
	}
	for _, c := range colors[1:] {
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no palette entry", c)
		}
	}
}
