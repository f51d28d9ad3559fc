// Package layout shapes logical lines into visual rows.
//
// A Line produced by a Shaper maps grapheme columns to terminal cells and
// splits the line into one or more rows according to the wrap mode. The
// editor treats shaping as an external capability: hosts may supply their
// own Shaper, and Default covers terminals.
package layout
