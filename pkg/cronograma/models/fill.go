package models

// CellRef addresses a single physical cell, with 1-based row and column
// numbers as spreadsheet tools count them.
type CellRef struct {
	// Row is the 1-based row number.
	Row int
	// Col is the 1-based column number.
	Col int
}

// CellFill describes the background fill of one cell as declared in the
// workbook stylesheet. At most one of RGB and Theme is populated.
type CellFill struct {
	// Solid indicates the fill uses the solid pattern type. Only solid
	// fills carry a status signal.
	Solid bool
	// RGB is the uppercase 8-digit ARGB code of a literal fill color,
	// empty when the fill is theme based or carries no color.
	RGB string
	// Theme is the theme palette slot of an indexed fill color, nil when
	// the fill declares a literal color instead.
	Theme *int
	// Tint is the tint applied to the theme color, zero when absent.
	// Negative values darken, positive values lighten.
	Tint float64
}

// FillMap indexes the solid fill descriptors of a sheet by physical cell.
// Cells without a style entry are simply absent.
type FillMap map[CellRef]CellFill
