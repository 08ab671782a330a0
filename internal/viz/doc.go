// Package viz provides terminal output for rotation curve results.
//
//   - [Preview]: ASCII chart of one curve kind for every galaxy
//   - [Show]: prints the preview only when stdout is a terminal
//   - [WriteSummary]: per-galaxy diagnostics table
//   - [WriteTable]: velocity components at chosen radii
//
// Colors follow each galaxy's hex token; asciigraph series use the
// nearest available terminal color.
package viz
