// Package grid provides a declarative grid container for terminal UIs.
//
// A grid [Element] arranges its children on row and column tracks. Tracks
// can be given as a compact definition string such as "auto,*,2*", and a
// container with auto-grid enabled assigns unpositioned children to cells
// in reading order the first time it becomes ready.
//
// Users import this single package for the complete public API:
// element construction, attached grid properties, the ready lifecycle,
// and layout types.
package grid
