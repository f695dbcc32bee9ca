//go:build !tilingdebug

package gen

const checkBounds = false
