package main

import (
	"fmt"
	"io"
)

const help = ` tiling

 DESCRIPTION: generates all regular and semi-regular tilings of the plane as
              Wavefront OBJ files.  Note that the OBJ files generated by this
              program are fairly sloppy and may include unused vertices.
 USAGE:
    tiling [flags] pattern rows columns out

              pattern - name of the tiling.  Valid names for regular tilings
                        include "square", "triangle", and "hexagon".  Valid
                        names for semi-regular tilings are "semi1" through
                        "semi8".

              rows, columns - roughly the number of generated rows and
                              columns of vertices. However, many of the
                              patterns use extra "buffer" rows and columns of
                              vertices to make face indexing easier, so you
                              should avoid setting these numbers too low.

              out - output filename (i.e., where the OBJ will be stored)

 FLAGS:
    -preview path   also render the tiling to path (.png or .svg)
    -triangulate    split every face into triangles
    -progress       show a progress bar (only when stderr is a terminal)
    -batch path     generate every job listed in a YAML manifest
    -list           list the known patterns and their vertex configurations

`

func printHelp(w io.Writer) {
	fmt.Fprint(w, help)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s pattern rows columns out\n", program)
	fmt.Fprintln(w, "       (type -help for more options)")
}
