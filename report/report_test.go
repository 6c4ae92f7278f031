package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/duopath/report"
)

func ptr[T any](v T) *T { return &v }

func sampleRows() []report.Row {
	ok := report.Row{RunID: "r1", File: "a.in", N: 4, M: 3, T: 5, D: 0, Strategy: "bidirectional", K: 3, Feasible: true, ActualSeconds: 0.5, Expanded: 12}
	ok.SetExpected(ptr(3), ptr(0.25))

	wrong := report.Row{RunID: "r1", File: "b.in", N: 3, M: 2, T: 4, D: 1, Strategy: "bidirectional", K: 5, ActualSeconds: 0.1}
	wrong.SetExpected(ptr(2), nil)

	failed := report.Row{RunID: "r1", File: "c.in", Error: "instance: input ended in the header"}
	failed.SetExpected(ptr(1), nil)

	return []report.Row{ok, wrong, failed}
}

func TestSetExpected(t *testing.T) {
	rows := sampleRows()
	require.NotNil(t, rows[0].Match)
	assert.True(t, *rows[0].Match)
	require.NotNil(t, rows[0].Difference)
	assert.InDelta(t, 0.25, *rows[0].Difference, 1e-12)

	require.NotNil(t, rows[1].Match)
	assert.False(t, *rows[1].Match)
	assert.Nil(t, rows[1].Difference)

	assert.Nil(t, rows[2].Match, "failed rows are never compared")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sampleRows()))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, report.Header, recs[0])
	assert.Equal(t, []string{
		"a.in", "4", "3", "5", "0", "3", "3", "0.25", "0.5", "0.25",
		"bidirectional", "true", "12", "r1", "",
	}, recs[1])
	assert.Equal(t, "", recs[2][7], "missing expected time is an empty cell")
	assert.Equal(t, "instance: input ended in the header", recs[3][14])
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sampleRows())
	assert.Equal(t, report.Summary{Total: 3, Feasible: 1, Infeasible: 1, Failed: 1, Mismatched: 1, Seconds: 0.6}, roundSeconds(s))
}

func roundSeconds(s report.Summary) report.Summary {
	s.Seconds = float64(int(s.Seconds*1000+0.5)) / 1000
	return s
}

func TestWriteYAML(t *testing.T) {
	rows := sampleRows()
	doc := report.Document{
		RunID:    "r1",
		Started:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Strategy: "bidirectional",
		Summary:  report.Summarize(rows),
		Rows:     rows,
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, doc))

	var back report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, doc.RunID, back.RunID)
	assert.True(t, doc.Started.Equal(back.Started))
	require.Len(t, back.Rows, 3)
	assert.Equal(t, 3, *back.Rows[0].ExpectedK)
	assert.Nil(t, back.Rows[2].ExpectedSeconds)
	assert.Contains(t, buf.String(), "expected_k: 3")
}
