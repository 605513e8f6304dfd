// Package tsplib parses solver parameter text and TSPLIB-style problem
// text into typed structures, reading both incrementally through
// lineio.LineSource.
//
// Two text dialects are covered:
//
//   - Parameter text — "KEY = value" lines configuring a solve:
//     RUNS, SEED, TRACE_LEVEL, TIME_LIMIT, PROBLEM_FILE. Blank lines and
//     '#'-comments are ignored; unknown keywords are rejected.
//
//   - Problem text — the TSPLIB subset the solver consumes:
//     NAME, COMMENT, TYPE (TSP | ATSP), DIMENSION,
//     EDGE_WEIGHT_TYPE (EXPLICIT | EUC_2D),
//     EDGE_WEIGHT_FORMAT (FULL_MATRIX),
//     EDGE_WEIGHT_SECTION / NODE_COORD_SECTION data, optional EOF keyword.
//
// Both parsers consume input exclusively through LineSource, so the same
// code path serves a streaming file and an in-memory string. Numeric
// section fields are tokenized with lineio's strict number scanner: a
// malformed field is a reported *ParseError carrying the line number, never
// a silently-zero weight.
//
// Distances for EUC_2D instances follow the TSPLIB convention: the
// Euclidean distance rounded to the nearest integer.
package tsplib
