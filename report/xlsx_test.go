package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/duopath/report"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{report.SheetResults, report.SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(report.SheetResults, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, report.Header, rows[0])

	ok := rows[1]
	assert.Equal(t, []string{"a.in", "4", "3", "5", "0", "3", "3", "0.25", "0.5", "0.25", "bidirectional"}, ok[:11])
	assert.Equal(t, "1", ok[11], "match is a boolean cell")
	assert.Equal(t, "12", ok[12])
	assert.Equal(t, "r1", ok[13])

	wrong := rows[2]
	assert.Equal(t, "b.in", wrong[0])
	assert.Equal(t, "", wrong[7], "unknown expected time stays blank")
	assert.Equal(t, "0", wrong[11])

	failed := rows[3]
	require.Len(t, failed, len(report.Header))
	assert.Equal(t, "instance: input ended in the header", failed[14])

	total, err := f.GetCellValue(report.SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "3", total)
	label, err := f.GetCellValue(report.SheetSummary, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Mismatched", label)
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetResults)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
