//go:build tilingdebug

package gen

// checkBounds makes Grid.Index panic on cells outside the grid.
const checkBounds = true
