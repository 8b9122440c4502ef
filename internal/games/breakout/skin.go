package breakout

// SpriteSheet is a grid of equally sized ball skins, addressed by a flat index.
type SpriteSheet struct {
	Columns int
	Rows    int
	Glyphs  []rune // Row-major, one per cell
}

// NewSpriteSheet builds a sheet from a string of glyphs.
func NewSpriteSheet(columns, rows int, glyphs string) SpriteSheet {
	return SpriteSheet{
		Columns: columns,
		Rows:    rows,
		Glyphs:  []rune(glyphs),
	}
}

// Cells returns the number of cells in the sheet.
func (s SpriteSheet) Cells() int {
	if s.Columns <= 0 || s.Rows <= 0 {
		return 0
	}
	return s.Columns * s.Rows
}

// Loaded reports whether every cell has a glyph.
func (s SpriteSheet) Loaded() bool {
	return s.Cells() > 0 && len(s.Glyphs) >= s.Cells()
}

// Cell returns the sheet column and row for an index. Any index is valid;
// it is taken modulo the cell count.
func (s SpriteSheet) Cell(index int) (col, row int) {
	n := s.Cells()
	if n == 0 {
		return 0, 0
	}
	index %= n
	if index < 0 {
		index += n
	}
	return index % s.Columns, index / s.Columns
}

// Glyph returns the skin for an index, or false if the sheet is not loaded.
func (s SpriteSheet) Glyph(index int) (rune, bool) {
	if !s.Loaded() {
		return 0, false
	}
	col, row := s.Cell(index)
	return s.Glyphs[row*s.Columns+col], true
}
