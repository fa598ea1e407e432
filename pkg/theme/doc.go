// Package theme provides light and dark palettes for rendering widget trees.
//
//	data := theme.ThemeFor(theme.BrightnessDark)
//	bg := data.ColorScheme.Background
package theme
