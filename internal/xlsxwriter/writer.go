package xlsxwriter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/kieshlabs/personagen/internal/catalog"
	"github.com/kieshlabs/personagen/internal/persona"
	"github.com/kieshlabs/personagen/internal/serializer"
)

// Sheet names expected by the simulation's spreadsheet importer.
const (
	SheetStocks   = "Stocks"
	SheetIdentity = "Identity"
	SheetHolding  = "Holding"
	SheetProfile  = "Profile"
)

// Dark theme palette.
const (
	colorHeader     = "4A7A41" // dark green header band
	colorRow        = "0F1E25" // dark navy
	colorRowAlt     = "1E2E35" // lighter dark navy
	colorText       = "FFFFFF"
	colorBorder     = "000000"
	colorBackground = "000000"
)

const (
	// Column widths approximate content length, clamped to this range.
	minColWidth = 8.0
	maxColWidth = 40.0

	// backgroundPad extends the black background past the data region.
	backgroundPad = 20

	borderThin  = 1
	borderThick = 5
)

// theme holds the style ids registered on one workbook.
type theme struct {
	header     int
	row        int
	rowAlt     int
	background int
}

// Write renders the catalog and population into a themed workbook at path.
func Write(path string, cat *catalog.Catalog, profiles []persona.Profile, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	f := excelize.NewFile()
	defer f.Close()

	th, err := newTheme(f)
	if err != nil {
		return fmt.Errorf("register styles: %w", err)
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{SheetStocks, serializer.StockHeaders(), serializer.StockRows(cat)},
		{SheetIdentity, serializer.IdentityHeaders(), identityRows(profiles)},
		{SheetHolding, serializer.HoldingHeaders(cat), holdingRows(cat, profiles)},
		{SheetProfile, serializer.ProfileHeaders(), profileRows(profiles)},
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, s.headers, s.rows, th); err != nil {
			return fmt.Errorf("write sheet %s: %w", s.name, err)
		}
	}

	// Drop the default sheet created by NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	logger.Info("workbook written",
		"path", path,
		"personas", len(profiles),
		"instruments", cat.Len(),
	)
	return nil
}

func identityRows(profiles []persona.Profile) [][]any {
	rows := make([][]any, len(profiles))
	for i, p := range profiles {
		rows[i] = serializer.IdentityRow(p)
	}
	return rows
}

func holdingRows(cat *catalog.Catalog, profiles []persona.Profile) [][]any {
	rows := make([][]any, len(profiles))
	for i, p := range profiles {
		rows[i] = serializer.HoldingRow(p, cat)
	}
	return rows
}

func profileRows(profiles []persona.Profile) [][]any {
	rows := make([][]any, len(profiles))
	for i, p := range profiles {
		rows[i] = serializer.ProfileRow(p)
	}
	return rows
}

// writeSheet fills one sheet with its header and data rows, then themes it.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, th theme) error {
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	if err := applyTheme(f, sheet, len(headers), len(rows), th); err != nil {
		return err
	}
	return autofitColumns(f, sheet, headers, rows)
}

// applyTheme paints the background, header band, and alternating data rows.
func applyTheme(f *excelize.File, sheet string, cols, rows int, th theme) error {
	bgEnd, err := excelize.CoordinatesToCellName(cols+backgroundPad, rows+1+backgroundPad)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", bgEnd, th.background); err != nil {
		return err
	}

	headerEnd, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", headerEnd, th.header); err != nil {
		return err
	}

	for r := 2; r <= rows+1; r++ {
		start, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(cols, r)
		if err != nil {
			return err
		}
		style := th.rowAlt
		if r%2 == 0 {
			style = th.row
		}
		if err := f.SetCellStyle(sheet, start, end, style); err != nil {
			return err
		}
	}
	return nil
}

// autofitColumns sets each column width from its longest rendered value,
// clamped to [minColWidth, maxColWidth].
func autofitColumns(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for c := range headers {
		maxLen := len(headers[c])
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			if n := len(fmt.Sprint(row[c])); n > maxLen {
				maxLen = n
			}
		}

		width := float64(maxLen) + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}

		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

// newTheme registers the four cell styles on the workbook.
func newTheme(f *excelize.File) (theme, error) {
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}
	border := func(topBottom int) []excelize.Border {
		return []excelize.Border{
			{Type: "top", Color: colorBorder, Style: topBottom},
			{Type: "bottom", Color: colorBorder, Style: topBottom},
			{Type: "left", Color: colorBorder, Style: borderThin},
			{Type: "right", Color: colorBorder, Style: borderThin},
		}
	}

	var th theme
	var err error

	th.header, err = f.NewStyle(&excelize.Style{
		Fill:   fill(colorHeader),
		Font:   &excelize.Font{Bold: true, Color: colorText},
		Border: border(borderThick),
	})
	if err != nil {
		return theme{}, err
	}

	th.row, err = f.NewStyle(&excelize.Style{
		Fill:   fill(colorRow),
		Font:   &excelize.Font{Color: colorText},
		Border: border(borderThin),
	})
	if err != nil {
		return theme{}, err
	}

	th.rowAlt, err = f.NewStyle(&excelize.Style{
		Fill:   fill(colorRowAlt),
		Font:   &excelize.Font{Color: colorText},
		Border: border(borderThin),
	})
	if err != nil {
		return theme{}, err
	}

	th.background, err = f.NewStyle(&excelize.Style{
		Fill: fill(colorBackground),
	})
	if err != nil {
		return theme{}, err
	}

	return th, nil
}
