package xlsexport

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	fontFamily  = "Calibri"
	columnWidth = 22
	// built-in excel format "#,##0.00"
	moneyNumFmt = 4
)

// sheetWriter lays out one report table: a header row, data rows, a trailing totals row.
type sheetWriter struct {
	f       *excelize.File
	sheet   string
	columns int
	row     int
}

func newSheetWriter(f *excelize.File, sheet string, columns int) *sheetWriter {
	return &sheetWriter{f: f, sheet: sheet, columns: columns}
}

func cellRange(colFrom, rowFrom, colTo, rowTo int) (string, string, error) {
	first, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return "", "", err
	}
	last, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}

func (w *sheetWriter) styleRange(style *excelize.Style, colFrom, rowFrom, colTo, rowTo int) error {
	if rowTo < rowFrom || colTo < colFrom {
		return nil
	}
	id, err := w.f.NewStyle(style)
	if err != nil {
		return err
	}
	first, last, err := cellRange(colFrom, rowFrom, colTo, rowTo)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, first, last, id)
}

func (w *sheetWriter) writeRow(values []interface{}) error {
	w.row++
	for idx, value := range values {
		cell, err := excelize.CoordinatesToCellName(idx+1, w.row)
		if err != nil {
			return err
		}
		if err = w.f.SetCellValue(w.sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeHeader(headers []string) error {
	values := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		values = append(values, h)
	}
	if err := w.writeRow(values); err != nil {
		return errors.Wrap(err, "header writing failed")
	}
	err := w.styleRange(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	}, 1, w.row, w.columns, w.row)
	if err != nil {
		return errors.Wrap(err, "header style failed")
	}
	lastCol, err := excelize.ColumnNumberToName(w.columns)
	if err != nil {
		return err
	}
	if err = w.f.SetColWidth(w.sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}
	return w.f.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// styleBody formats the data rows and the totals row, money columns start at firstMoneyCol.
func (w *sheetWriter) styleBody(firstDataRow, firstMoneyCol int) error {
	totalsRow := w.row
	font := &excelize.Font{Family: fontFamily, Size: 11}
	if err := w.styleRange(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      font,
	}, 1, firstDataRow, firstMoneyCol-1, totalsRow-1); err != nil {
		return err
	}
	if err := w.styleRange(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Font:      font,
		NumFmt:    moneyNumFmt,
	}, firstMoneyCol, firstDataRow, w.columns, totalsRow-1); err != nil {
		return err
	}
	return w.styleRange(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		NumFmt: moneyNumFmt,
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	}, 1, totalsRow, w.columns, totalsRow)
}
