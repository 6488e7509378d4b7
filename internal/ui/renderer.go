package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleship/internal/gamedata"
	"github.com/samdwyer/battleship/internal/world"
)

const (
	boardTop   = 2 // First row used by boards
	boardGap   = 8 // Columns between side-by-side boards
	cellWidth  = 2 // Each cell is a glyph plus a space
	rowLabel   = 3 // Width of the row number column
	headerRows = 2 // Board title plus column letters
)

// BoardView is one grid as a particular viewer sees it.
type BoardView struct {
	Title   string
	Symbols [][]world.Symbol
}

// Frame is everything shown on screen at once.
type Frame struct {
	Title  string
	Boards []BoardView
	Lines  []string // Status and help messages shown under the boards
	Prompt string
	Input  string // Text typed so far, drawn after the prompt
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	legend *gamedata.Legend
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, legend *gamedata.Legend) *Renderer {
	return &Renderer{screen: screen, legend: legend}
}

// Render draws a complete frame.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText(0, 0, f.Title, titleStyle)

	y := boardTop
	if len(f.Boards) > 0 {
		x := 0
		height := 0
		for _, b := range f.Boards {
			r.renderBoard(x, y, b)
			x += BoardWidth(len(b.Symbols)) + boardGap
			if h := len(b.Symbols) + headerRows; h > height {
				height = h
			}
		}
		y += height + 1
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, line := range f.Lines {
		r.screen.DrawText(0, y, line, textStyle)
		y++
	}

	if f.Prompt != "" {
		y++
		x := r.screen.DrawText(0, y, f.Prompt, textStyle.Bold(true))
		x = r.screen.DrawText(x, y, f.Input, textStyle)
		r.screen.ShowCursor(x, y)
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
}

// renderBoard draws one board with its title at (x, y).
func (r *Renderer) renderBoard(x, y int, b BoardView) {
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawText(x, y, b.Title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	lines := BoardLines(b.Symbols)
	r.screen.DrawText(x, y+1, lines[0], labelStyle)
	for row, symbols := range b.Symbols {
		line := lines[row+1]
		r.screen.DrawText(x, y+2+row, line[:rowLabel], labelStyle)
		for col, sym := range symbols {
			r.screen.SetContent(x+rowLabel+col*cellWidth, y+2+row, sym.Rune(), r.symbolStyle(sym))
		}
	}
}

// symbolStyle returns the legend color for a board symbol.
func (r *Renderer) symbolStyle(sym world.Symbol) tcell.Style {
	if r.legend != nil {
		if def := r.legend.Lookup(sym.Rune()); def != nil {
			return tcell.StyleDefault.Foreground(def.TCellColor())
		}
	}
	return tcell.StyleDefault
}

// BoardWidth returns the number of columns a size x size board needs.
func BoardWidth(size int) int {
	return rowLabel + size*cellWidth
}

// BoardLines formats a board as plain text: a column header followed by one
// line per row, e.g. " 1 O O |".
func BoardLines(symbols [][]world.Symbol) []string {
	size := len(symbols)
	lines := make([]string, 0, size+1)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", rowLabel))
	for col := 0; col < size; col++ {
		if col > 0 {
			header.WriteByte(' ')
		}
		header.WriteRune(rune('A' + col))
	}
	lines = append(lines, header.String())

	for row, cells := range symbols {
		var line strings.Builder
		fmt.Fprintf(&line, "%2d ", row+1)
		for col, sym := range cells {
			if col > 0 {
				line.WriteByte(' ')
			}
			line.WriteRune(sym.Rune())
		}
		lines = append(lines, line.String())
	}
	return lines
}
