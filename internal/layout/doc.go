// Package layout implements a pure-Go grid layout engine for terminal UIs.
//
// Every node with children arranges them on a grid of row and column
// tracks. Tracks are fixed, percentage, auto (content sized) or star
// (weighted share of the remaining space). Items carry a Cell with their
// row, column and spans. Types are re-exported through the root grid
// package for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node.
package layout
