/*
Package dsrepl/main provides an interactive command line tool (DS.REPL)
for experiments with disjoint sets. Users merge elements of a fixed universe,
query group membership and print the current partition. A few integer
helpers (gcd, lcm) are available as well.

With flag -batch, commands are read from standard input instead. The first
token of the input is the universe bound n, followed by commands:

    5
    merge 0 1
    find 1
    sets

Every command prints one line of output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'partition.cmd'
func tracer() tracing.Trace {
	return tracing.Select("partition.cmd")
}
