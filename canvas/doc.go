// Package canvas draws grid scenes as characters.
//
// A Canvas covers an inclusive geom.Extent, starts filled with '.', and is
// printed row by row, optionally through a smaller frame. Paint copies a
// canvas onto a tcell screen (or anything with SetContent) using a Palette
// that maps symbols to styles.
package canvas
