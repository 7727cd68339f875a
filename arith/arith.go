/*
Package arith provides greatest common divisor and least common multiple
for signed integers of any size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arith

import (
	"github.com/npillmayer/partition"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer traces with key 'partition.arith'.
func tracer() tracing.Trace {
	return tracing.Select("partition.arith")
}

// GCD returns the greatest common divisor of p and q, using Euclid's algorithm.
// The result is non-negative, with one exception: the magnitude of the smallest
// value of T is not representable, so e.g. GCD(math.MinInt64, 0) returns
// math.MinInt64. GCD(0, 0) is 0.
func GCD[T constraints.Signed](p, q T) T {
	for q != 0 {
		p, q = q, p%q
	}
	if p < 0 {
		p = -p
	}
	return p
}

// LCM returns the least common multiple of p and q, which is non-negative.
// If either argument is 0, LCM is 0. An error of kind partition.ArithmeticOverflow
// is returned if the result is not representable in T.
func LCM[T constraints.Signed](p, q T) (T, error) {
	if p == 0 || q == 0 {
		return 0, nil
	}
	g := GCD(p, q)
	if g < 0 { // |MinInt| case
		return 0, overflow(p, q)
	}
	a := p / g
	m := a * q
	if m/q != a || m/a != q {
		return 0, overflow(p, q)
	}
	if m < 0 {
		if m = -m; m < 0 {
			return 0, overflow(p, q)
		}
	}
	return m, nil
}

// MustLCM is like LCM, but panics on overflow.
func MustLCM[T constraints.Signed](p, q T) T {
	m, err := LCM(p, q)
	if err != nil {
		panic(err)
	}
	return m
}

func overflow[T constraints.Signed](p, q T) error {
	err := partition.Errorf(partition.ArithmeticOverflow, "lcm", "lcm(%d, %d) exceeds %T", p, q, p)
	tracer().Errorf(err.Error())
	return err
}
