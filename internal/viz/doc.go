// Package viz renders rover missions for the terminal.
//
//   - [RenderGrid]: the plateau with rover glyphs and visited cells
//   - [PlotPath]: x and y against command index, drawn with asciigraph
//   - [Summary]: a styled panel of start, final pose and metrics
//
// The grid is drawn with the origin in the bottom-left corner so that
// North points up.
package viz
