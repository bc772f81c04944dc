// Package layout implements the pure-Go flexbox solver behind the shadow tree.
//
// It supports row/column directions (and their reverses), justify and align
// modes, padding, margin, gap, min/max constraints, percentage and fixed
// dimensions, intrinsic sizing, and left-to-right / right-to-left writing
// directions with logical start/end edges.
// Types are re-exported through the root shadow package for public consumption.
//
// The main entry point is [Solve], which takes a [Layoutable] tree and
// returns absolute [Rect] positions for each node it had to visit without
// mutating the tree. Committing the result is the caller's job.
package layout
