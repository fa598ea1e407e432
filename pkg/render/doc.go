// Package render turns a mounted widget tree into terminal text or an image.
//
// Renderers read the leaf widgets (Text, Button) in tree order and style
// each with the palette of its nearest Surface. Both outputs are derived
// from Lines, so the terminal host and the PNG snapshot always agree on
// content.
package render
