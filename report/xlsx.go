package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetResults and SheetSummary name the workbook sheets.
const (
	SheetResults = "Results"
	SheetSummary = "Summary"
)

// WriteXLSX writes rows as a workbook: a Results sheet in Header order with
// typed cells (unknown values left blank) and a Summary sheet.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetResults); err != nil {
		return err
	}
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetResults, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetResults, "A1", last, bold); err != nil {
		return err
	}
	if err = f.SetPanes(SheetResults, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := r.cells()
		if err = f.SetSheetRow(SheetResults, cell, &values); err != nil {
			return err
		}
	}

	if _, err = f.NewSheet(SheetSummary); err != nil {
		return err
	}
	s := Summarize(rows)
	for i, kv := range [][2]interface{}{
		{"Total", s.Total},
		{"Feasible", s.Feasible},
		{"Infeasible", s.Infeasible},
		{"Failed", s.Failed},
		{"Mismatched", s.Mismatched},
		{"Seconds", s.Seconds},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		pair := []interface{}{kv[0], kv[1]}
		if err = f.SetSheetRow(SheetSummary, cell, &pair); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// cells renders r in Header order for a spreadsheet row.
func (r Row) cells() []interface{} {
	return []interface{}{
		r.File,
		r.N, r.M, r.T, r.D,
		r.K,
		optCell(r.ExpectedK),
		optCell(r.ExpectedSeconds),
		r.ActualSeconds,
		optCell(r.Difference),
		r.Strategy,
		optCell(r.Match),
		r.Expanded,
		r.RunID,
		r.Error,
	}
}

func optCell[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
