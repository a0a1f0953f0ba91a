// Package viz renders approximation runs in the terminal.
//
//   - [RenderResult], [RenderSweep]: lipgloss summaries of runs
//   - [PlotTrace]: asciigraph line graph of a trace
//   - [Canvas]: Braille-based pixel canvas for trajectories
//   - [Replay]: Bubble Tea model that steps through a stored trace
//
// # Key Bindings (Replay)
//
//	Space - Play/Pause
//	←/→   - Step backward/forward
//	R     - Restart
//	G     - Jump to the final point
//	Q     - Quit
package viz
