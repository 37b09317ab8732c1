// Package config holds the host settings of the gridpath CLI: board size,
// algorithm, board source and presentation knobs.
//
// Settings load from .yaml, .yml or .json files. Keys not present in the
// file keep their Default value, and unknown keys are rejected. The JSON
// keys written by the legacy settings dialog (width, height, is_show_process,
// choose_algorithm, is_draw_maze) are accepted as-is, so an existing
// settings.json loads without changes.
package config
