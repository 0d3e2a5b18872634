// Package xlsx loads a worksheet of an Excel workbook into a grid.
//
// Cells are read with their raw values, so numbers arrive unformatted and
// become numeric cells; text goes through [grid.Coerce]. A formula cell
// without a cached value that is a bare reference (=B7) is kept as the text
// "=B7" so lookups can follow it.
package xlsx

import (
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// Open reads sheet from the workbook at path. An empty sheet selects the
// active sheet.
func Open(path, sheet string) (*grid.Memory, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workbook %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook %s", path)
	}
	defer f.Close()
	return fromFile(f, sheet)
}

// Read reads sheet from a workbook stream. An empty sheet selects the active
// sheet.
func Read(r io.Reader, sheet string) (*grid.Memory, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()
	return fromFile(f, sheet)
}

// Sheets lists the worksheet names of a workbook stream in workbook order.
func Sheets(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func fromFile(f *excelize.File, sheet string) (*grid.Memory, error) {
	if err := errors.ValidateSheetName(sheet); err != nil {
		return nil, err
	}
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeSheetNotFound, "sheet %q not found", sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read sheet %q", sheet)
	}

	g := grid.NewMemory()
	for i, row := range rows {
		for j, raw := range row {
			v := grid.Coerce(raw)
			if v.IsEmpty() {
				v = formulaReference(f, sheet, i+1, j+1)
			}
			g.Set(i+1, j+1, v)
		}
	}
	return g, nil
}

// formulaReference returns "=REF" for a cell whose formula is a bare cell
// reference, and an empty value otherwise.
func formulaReference(f *excelize.File, sheet string, row, col int) grid.Value {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return grid.Empty()
	}
	formula, err := f.GetCellFormula(sheet, name)
	if err != nil || formula == "" {
		return grid.Empty()
	}
	v := grid.Text("=" + formula)
	if _, _, ok := grid.Reference(v); !ok {
		return grid.Empty()
	}
	return v
}
