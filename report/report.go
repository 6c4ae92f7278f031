// SPDX-License-Identifier: MIT
// Package: duopath/report
//
// report.go - per-instance result rows and their CSV / YAML renderings.
// xlsx.go renders the same rows as a workbook.

// Package report turns batch results into rows and writes them as an xlsx
// workbook or CSV (both in the spreadsheet layout used for reference timings)
// or YAML.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Row is the outcome of one instance.
type Row struct {
	RunID    string `yaml:"run_id"`
	File     string `yaml:"file"`
	N        int    `yaml:"n"`
	M        int    `yaml:"m"`
	T        int    `yaml:"t"`
	D        int    `yaml:"d"`
	Strategy string `yaml:"strategy"`

	// K is the computed answer; T+1 means infeasible.
	K         int  `yaml:"k"`
	Feasible  bool `yaml:"feasible"`
	ExpectedK *int `yaml:"expected_k,omitempty"`
	// Match is set only when ExpectedK is known.
	Match *bool `yaml:"match,omitempty"`

	ExpectedSeconds *float64 `yaml:"expected_seconds,omitempty"`
	ActualSeconds   float64  `yaml:"actual_seconds"`
	// Difference is ActualSeconds - ExpectedSeconds.
	Difference *float64 `yaml:"difference,omitempty"`

	Expanded int    `yaml:"expanded"`
	Error    string `yaml:"error,omitempty"`
}

// SetExpected fills the reference columns and the derived Match/Difference.
func (r *Row) SetExpected(k *int, seconds *float64) {
	r.ExpectedK, r.ExpectedSeconds = k, seconds
	if k != nil && r.Error == "" {
		m := *k == r.K
		r.Match = &m
	}
	if seconds != nil {
		d := r.ActualSeconds - *seconds
		r.Difference = &d
	}
}

// Header is the CSV column order. The first ten columns follow the reference
// spreadsheet layout.
var Header = []string{
	"File", "n", "m", "T", "D", "k - algorithm", "k - solution",
	"Expected Time (s)", "Actual Time (s)", "Difference (Actual - Expected)",
	"Strategy", "Match", "Expanded", "Run ID", "Error",
}

// Record renders r as one CSV record in Header order. Unknown values are
// empty cells.
func (r Row) Record() []string {
	return []string{
		r.File,
		strconv.Itoa(r.N), strconv.Itoa(r.M), strconv.Itoa(r.T), strconv.Itoa(r.D),
		strconv.Itoa(r.K),
		optInt(r.ExpectedK),
		optFloat(r.ExpectedSeconds),
		strconv.FormatFloat(r.ActualSeconds, 'f', -1, 64),
		optFloat(r.Difference),
		r.Strategy,
		optBool(r.Match),
		strconv.Itoa(r.Expanded),
		r.RunID,
		r.Error,
	}
}

// WriteCSV writes Header and one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Document is the YAML report layout.
type Document struct {
	RunID    string    `yaml:"run_id"`
	Started  time.Time `yaml:"started"`
	Strategy string    `yaml:"strategy"`
	Summary  Summary   `yaml:"summary"`
	Rows     []Row     `yaml:"rows"`
}

// WriteYAML encodes doc with two-space indentation.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// Summary aggregates a batch.
type Summary struct {
	Total      int     `yaml:"total"`
	Feasible   int     `yaml:"feasible"`
	Infeasible int     `yaml:"infeasible"`
	Failed     int     `yaml:"failed"`
	Mismatched int     `yaml:"mismatched"`
	Seconds    float64 `yaml:"seconds"`
}

// Summarize counts outcomes over rows.
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		s.Seconds += r.ActualSeconds
		switch {
		case r.Error != "":
			s.Failed++
		case r.Feasible:
			s.Feasible++
		default:
			s.Infeasible++
		}
		if r.Match != nil && !*r.Match {
			s.Mismatched++
		}
	}

	return s
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
