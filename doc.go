/*
Package partition is a small toolbox around disjoint-set partitions.

It strives to be a lightweight companion for programs which have to
partition a fixed universe of integer elements into groups, merge groups
and query group membership. Package structure is as follows:

■ disjoint: Package disjoint implements a union-find structure with union by rank
and optional path compression.

■ scanner: Package scanner implements a buffered reader for whitespace separated
tokens, able to parse tokens into Go's primitive types.

■ arith: Package arith provides GCD and LCM for signed integers.

The base package contains data types which are used throughout all the other packages,
most notably the error taxonomy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package partition
