package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDrawTextClipsAtEdge(t *testing.T) {
	screen, sim := newTestScreen(t)

	end := screen.DrawText(76, 0, "ABCDEFGH", tcell.StyleDefault)
	if end != 80 {
		t.Errorf("DrawText() = %d, want 80", end)
	}
	if r, _, _, _ := sim.GetContent(79, 0); r != 'D' {
		t.Errorf("last column = %q, want 'D'", r)
	}
}

func TestCloseTwice(t *testing.T) {
	screen, _ := newTestScreen(t)
	screen.Close()
	screen.Close()
}
