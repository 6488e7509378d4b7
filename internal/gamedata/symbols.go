package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// SymbolDef describes how one board symbol is explained and colored.
type SymbolDef struct {
	Glyph string `json:"glyph"` // Single character drawn on the board (e.g., "*")
	Name  string `json:"name"`  // Legend text (e.g., "Hit")
	Color string `json:"color"` // Hex color code (e.g., "#FFA500")
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SymbolDef) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return rune(s.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (s *SymbolDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// SymbolsFile represents the structure of symbols.json.
type SymbolsFile struct {
	Symbols []SymbolDef `json:"symbols"`
}

// Legend maps board glyphs to their descriptions, in display order.
type Legend struct {
	symbols []SymbolDef
	byGlyph map[rune]*SymbolDef
}

// NewLegend indexes symbol definitions by glyph.
func NewLegend(symbols []SymbolDef) *Legend {
	legend := &Legend{
		symbols: symbols,
		byGlyph: make(map[rune]*SymbolDef, len(symbols)),
	}
	for i := range symbols {
		legend.byGlyph[symbols[i].GlyphRune()] = &symbols[i]
	}
	return legend
}

// LoadLegend loads the legend from the embedded symbols.json.
func LoadLegend() (*Legend, error) {
	file, err := decode[SymbolsFile]("symbols.json")
	if err != nil {
		return nil, err
	}
	return NewLegend(file.Symbols), nil
}

// MustLoadLegend loads the legend, panicking on error.
func MustLoadLegend() *Legend {
	legend, err := LoadLegend()
	if err != nil {
		panic(err)
	}
	return legend
}

// Lookup returns the definition for a glyph, or nil.
func (l *Legend) Lookup(glyph rune) *SymbolDef {
	return l.byGlyph[glyph]
}

// All returns all symbol definitions.
func (l *Legend) All() []SymbolDef {
	return l.symbols
}

// Lines formats the legend as "Hit *" style help lines.
func (l *Legend) Lines() []string {
	lines := make([]string, 0, len(l.symbols))
	for _, s := range l.symbols {
		lines = append(lines, fmt.Sprintf("%-18s %c", s.Name, s.GlyphRune()))
	}
	return lines
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}
