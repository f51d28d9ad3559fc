// Package buffer implements the document model behind the editor: grapheme
// lines, edits with undo history and undo groups, line markers that survive
// edits, low-level cursor motions and text search.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
