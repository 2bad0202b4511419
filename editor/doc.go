// Package editor provides a Bubble Tea rich-text editor component backed by
// the buffer package, with ordered-list autoformatting attached.
//
// The package is responsible for input handling, viewport behavior,
// tab-stop-aware rendering of paragraphs and list items, and change events.
// Formatting itself lives in the autoformat package.
package editor
