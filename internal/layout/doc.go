// Package layout implements the resolution engine for a retained-mode scene
// graph of rectangular drawables.
//
// It supports absolute, parent-relative, and auto (fit-to-children) sizing,
// anchor/origin placement against a reference frame, margins, padding, and
// masked or expanded render bounds. Types are re-exported through the root
// scene package for public consumption.
//
// The main entry point is [Resolve], which takes a [Node] tree and a viewport
// size and computes a [Geometry] for each node.
package layout
