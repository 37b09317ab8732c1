// Package render draws a board and a search trace as ASCII text or as a PNG.
//
// One precedence applies to both forms, highest first:
//
//	path > visited > wall/border > end > tile
//
// Start is drawn on top of everything. Visited and path cells come from a
// core.Result, or from the partial visited order a StepObserver receives.
package render
