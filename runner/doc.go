// Package runner solves instance files one at a time or a whole folder in
// parallel, collecting report rows.
//
// A batch lists the *.in files of the configured folder in name order, solves
// them on a bounded worker pool (errgroup), compares each answer with the
// paired .out file when present, and hands the rows to the report package.
// Failures of one instance are recorded in its row and never stop the batch;
// only cancellation of the batch context does.
//
// Timing covers the distance oracle and the search, not file I/O.
//
// Every instance is traced (OpenTelemetry, global provider) and counted twice:
// through OpenTelemetry instruments and through a private Prometheus registry
// that can be dumped in the node-exporter textfile format.
package runner
