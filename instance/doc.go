// Package instance reads and writes problem instances and their expected
// outputs.
//
// Instance format: whitespace-separated integers, line breaks insignificant.
//
//	n m T D
//	s_a t_a s_b t_b
//	u_1 v_1
//	...
//	u_m v_m
//
// Vertices are 1-indexed in the file and 0-indexed in Instance. The token
// stream is produced by a participle grammar, so stray non-integer text is
// reported with its position.
//
// Expected output (.out): the first token of the first line is the expected
// k; the first token of the last non-empty line is the reference running time
// in seconds, with "," accepted as the decimal separator.
package instance
