// Package lookup locates engineering data tables inside a worksheet grid and
// reads values out of them.
//
// # Table Convention
//
// A table is a vertical block of rows. Its first row carries the marker text
// ("Table") and a numeric tag that identifies it. The next row holds column
// headers, starting at the layout's data column. Optional preamble rows
// (units, notes) may follow. Each data row after that carries a label; the
// first blank label, or the marker row of another table, ends the table.
//
//	  A         B      C
//	1 Table     1
//	2 GRADE     Dmin   Dmax
//	3 GRADE 4.8 1.6    10.0
//	4 GRADE 5.8 1.6    10.0
//
// Which columns hold what is described by a [Layout]. [DefaultLayout] fits the
// compact form above; [WorkbookLayout] fits the course workbooks, where the
// marker sits in column C and values start in column F.
//
// # Lookups
//
// [FindTable], [FindRow] and [FindColumn] each return a NOT_FOUND-family
// error when their target is absent. [ReadRow] composes them:
//
//	row, err := lookup.ReadRow(g, 1, "GRADE 4.8", []string{"Dmin"}, lookup.Options{})
//	// row.Values == []float64{1.6}
//
// Table and row failures are errors. A requested column that is missing, or
// a cell that is blank or not numeric, reads as 0 with its [FieldStatus]
// recording why. Set [Options].Missing to [MissingAsError] for a strict read.
//
// # Parameter Rows
//
// Single named values, such as the number of alloy tables in a workbook,
// live in free-standing rows outside any table. [FindParam] locates one by
// its label anywhere in the sheet; [Param], [ParamDescription] and [Params]
// read from it.
//
//	n, err := lookup.Param(g, "NOFTABLES", 0, lookup.WorkbookLayout)
//
// # Comparing Workbooks
//
// [SameTable] walks one table in two grids and reports the first row whose
// values differ beyond a relative tolerance, which is how submitted workbooks
// are checked against a reference solution.
//
// All functions are read-only with respect to the grid.
package lookup
