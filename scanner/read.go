package scanner

import (
	"reflect"
	"strconv"

	"github.com/npillmayer/partition"
	"golang.org/x/exp/constraints"
)

// Value is the set of types tokens may be parsed into.
type Value interface {
	constraints.Integer | constraints.Float | ~string | ~bool
}

// Read returns the next token of r, parsed into type T. Numbers have to fit
// into T, otherwise an error of kind partition.ParseFailure is returned. The
// token is consumed even if it could not be parsed.
//
//     n, err := scanner.Read[int](r)
//     x, err := scanner.Read[float64](r)
//     b, err := scanner.Read[uint8](r)    // error for tokens > 255
//
func Read[T Value](r *Reader) (T, error) {
	var v T
	token, err := r.NextToken()
	if err != nil {
		return v, err
	}
	if err = parseInto(reflect.ValueOf(&v).Elem(), token.lexeme); err != nil {
		tracer().Errorf("cannot read token %v as %T", token, v)
		return v, err
	}
	return v, nil
}

// MustRead is like Read, but panics if no token could be read or parsed.
func MustRead[T Value](r *Reader) T {
	v, err := Read[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

func parseInto(v reflect.Value, lexeme string) error {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(lexeme, 10, v.Type().Bits())
		if err != nil {
			return partition.Wrap(partition.ParseFailure, "read", err)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(lexeme, 10, v.Type().Bits())
		if err != nil {
			return partition.Wrap(partition.ParseFailure, "read", err)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(lexeme, v.Type().Bits())
		if err != nil {
			return partition.Wrap(partition.ParseFailure, "read", err)
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(lexeme)
		if err != nil {
			return partition.Wrap(partition.ParseFailure, "read", err)
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(lexeme)
	default: // excluded by type constraint Value
		return partition.Errorf(partition.ParseFailure, "read", "unsupported type %s", v.Type())
	}
	return nil
}
