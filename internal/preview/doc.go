// Package preview lays out a projected playground state on a terminal cell
// grid and paints it as the simulated device screen.
//
// Layout follows the flexbox algorithm closely enough for the playground:
// items are ordered, broken into lines when wrapping is on, grown or shrunk
// to fill the main axis, then justified and aligned. CSS pixels are mapped
// onto cells through a Scale; lengths the engine cannot read fall back to the
// property's default instead of failing.
//
// Render paints the resulting boxes with lipgloss, shading each item with a
// gradient and drawing a ring around the selected one.
package preview
