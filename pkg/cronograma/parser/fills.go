package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
)

// SheetFills reads the workbook a second time and returns the solid fill
// descriptor of every styled cell on the named sheet, keyed by 1-based
// row and column. excelize resolves theme colors to literal values before
// exposing them, so the raw rgb-or-theme shape the classifier needs is
// only reachable through the stylesheet XML.
func SheetFills(data []byte, sheetName string) (models.FillMap, error) {
	wb, err := spreadsheet.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	for _, sheet := range wb.Sheets() {
		if sheet.Name() != sheetName {
			continue
		}
		fills := make(models.FillMap)
		for _, row := range sheet.Rows() {
			rowNum := int(row.RowNumber())
			for _, cell := range row.Cells() {
				x := cell.X()
				if x == nil || x.SAttr == nil {
					continue
				}
				colName, err := cell.Column()
				if err != nil {
					continue
				}
				fill, ok := describeFill(fillProps(wb.StyleSheet, *x.SAttr))
				if !ok {
					continue
				}
				col := int(reference.ColumnToIndex(colName)) + 1
				fills[models.CellRef{Row: rowNum, Col: col}] = fill
			}
		}
		return fills, nil
	}
	return nil, fmt.Errorf("sheet %q not found in workbook", sheetName)
}

// fillProps resolves a cell style ID to its fill definition, nil when any
// index along the chain is missing or out of range.
func fillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	x := ss.X()
	if x == nil || x.CellXfs == nil || int(styleID) >= len(x.CellXfs.Xf) {
		return nil
	}
	xf := x.CellXfs.Xf[styleID]
	if xf.FillIdAttr == nil {
		return nil
	}
	fillIdx := int(*xf.FillIdAttr)
	if x.Fills == nil || fillIdx < 0 || fillIdx >= len(x.Fills.Fill) {
		return nil
	}
	return x.Fills.Fill[fillIdx]
}

// describeFill maps a stylesheet fill to the descriptor consumed by
// Classify. Non-solid patterns report ok=false: only solid fills carry a
// status signal.
func describeFill(fill *sml.CT_Fill) (models.CellFill, bool) {
	if fill == nil || fill.PatternFill == nil {
		return models.CellFill{}, false
	}
	pattern := fill.PatternFill
	if pattern.PatternTypeAttr != sml.ST_PatternTypeSolid {
		return models.CellFill{}, false
	}
	desc := models.CellFill{Solid: true}
	fg := pattern.FgColor
	if fg == nil {
		return desc, true
	}
	switch {
	case fg.RgbAttr != nil:
		desc.RGB = strings.ToUpper(*fg.RgbAttr)
	case fg.ThemeAttr != nil:
		theme := int(*fg.ThemeAttr)
		desc.Theme = &theme
		if fg.TintAttr != nil {
			desc.Tint = *fg.TintAttr
		}
	}
	return desc, true
}
