package scanner

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/partition"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadInts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	r := NewReader(strings.NewReader("1 2 3\n4 5"))
	for i := 1; i <= 5; i++ {
		n, err := Read[int](r)
		if err != nil {
			t.Fatal(err)
		}
		if n != i {
			t.Errorf("expected token #%d to be %d, is %d", i, i, n)
		}
	}
	if _, err := Read[int](r); !errors.Is(err, io.EOF) || !errors.Is(err, partition.ErrParseFailure) {
		t.Errorf("expected exhausted input to be reported, got %v", err)
	}
}

func TestReadBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	r := NewReader(strings.NewReader("1 2 3 4 5 4 3 2 1"))
	for _, expected := range []uint8{1, 2, 3, 4, 5, 4, 3, 2, 1} {
		if b := MustRead[uint8](r); b != expected {
			t.Errorf("expected %d, got %d", expected, b)
		}
	}
}

var tokenInputs = []string{
	"1",
	"  hello\tworld  ",
	"\n\n  a\r\nb \n\n",
	"",
	"   \n \t ",
	"x=1,y=2 ÄÖÜ",
}

var tokenCounts = []int{1, 2, 2, 0, 0, 2}

func TestTokenCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	for i, input := range tokenInputs {
		t.Logf("------+-----------------+--------")
		r := NewReader(strings.NewReader(input))
		count := 0
		token, err := r.NextToken()
		for err == nil {
			t.Logf(" %4d | %15s | @%v", token.Line(), token.Lexeme(), token.Span())
			count++
			token, err = r.NextToken()
		}
		if !errors.Is(err, io.EOF) {
			t.Errorf("expected input #%d to end with EOF, got %v", i, err)
		}
		if count != tokenCounts[i] {
			t.Errorf("expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTokenPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	r := NewReader(strings.NewReader("first\n  second third"))
	mustNext(t, r)
	token, err := r.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if token.Lexeme() != "second" || token.Line() != 2 || token.Span() != (partition.Span{2, 8}) {
		t.Errorf("unexpected token %v", token)
	}
	token, _ = r.NextToken()
	if token.Span() != (partition.Span{9, 14}) {
		t.Errorf("unexpected token %v", token)
	}
}

func mustNext(t *testing.T, r *Reader) string {
	s, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestReadTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	type Celsius float32
	r := NewReader(strings.NewReader("-42 3.5 true word 18446744073709551615 -1.25"))
	if n := MustRead[int64](r); n != -42 {
		t.Errorf("expected -42, got %d", n)
	}
	if f := MustRead[float64](r); f != 3.5 {
		t.Errorf("expected 3.5, got %g", f)
	}
	if b := MustRead[bool](r); !b {
		t.Errorf("expected true, got %v", b)
	}
	if s := MustRead[string](r); s != "word" {
		t.Errorf("expected \"word\", got %q", s)
	}
	if u := MustRead[uint64](r); u != 18446744073709551615 {
		t.Errorf("expected max uint64, got %d", u)
	}
	if c := MustRead[Celsius](r); c != -1.25 {
		t.Errorf("expected -1.25, got %g", c)
	}
}

func TestParseFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	r := NewReader(strings.NewReader("256 -1 abc 7"))
	if _, err := Read[uint8](r); !errors.Is(err, partition.ErrParseFailure) {
		t.Errorf("expected 256 to overflow uint8, got %v", err)
	}
	if _, err := Read[uint](r); !errors.Is(err, partition.ErrParseFailure) {
		t.Errorf("expected -1 to be rejected as uint, got %v", err)
	}
	if _, err := Read[int](r); !errors.Is(err, partition.ErrParseFailure) {
		t.Errorf("expected abc to be rejected as int, got %v", err)
	}
	if n := MustRead[int](r); n != 7 {
		t.Errorf("expected reader to continue after failed token, got %d", n)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected MustRead on exhausted input to panic")
		}
	}()
	MustRead[int](r)
}

func TestReadLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	r := NewReader(strings.NewReader("1 2 3 4 5"))
	if line, err := r.ReadLine(); err != nil || line != "1 2 3 4 5" {
		t.Errorf("expected raw line \"1 2 3 4 5\", got %q (%v)", line, err)
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadLineAfterTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	r := NewReader(strings.NewReader("2\nhello world\n3 rest of line\n4\n"))
	if n := MustRead[int](r); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if line, _ := r.ReadLine(); line != "hello world\n" {
		t.Errorf("expected next raw line, got %q", line)
	}
	if n := MustRead[int](r); n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
	if line, _ := r.ReadLine(); line != "rest of line\n" {
		t.Errorf("expected remainder of line, got %q", line)
	}
	if n := MustRead[int](r); n != 4 {
		t.Errorf("expected 4 from a fresh line, got %d", n)
	}
}

func TestInvalidEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "partition.scanner")
	defer teardown()
	//
	input := "ok\n\xff\xfe 12\n"
	r := NewReader(strings.NewReader(input))
	MustRead[string](r)
	if _, err := r.Next(); !errors.Is(err, partition.ErrParseFailure) {
		t.Errorf("expected invalid UTF-8 to be rejected, got %v", err)
	}
	r = NewReader(strings.NewReader(input), TrustEncoding(true))
	MustRead[string](r)
	if s := MustRead[string](r); s != "\xff\xfe" {
		t.Errorf("expected raw bytes to pass with TrustEncoding, got %q", s)
	}
	if n := MustRead[int](r); n != 12 {
		t.Errorf("expected 12, got %d", n)
	}
}
