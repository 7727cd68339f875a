package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/partition"
	"github.com/npillmayer/partition/arith"
	"github.com/npillmayer/partition/disjoint"
	"github.com/npillmayer/partition/scanner"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	ds   *disjoint.DisjointSet
	out  io.Writer
	repl *readline.Instance
}

// NewIntp creates an interpreter for a universe 0…n. Output of batch runs goes to out.
func NewIntp(n int, out io.Writer) (*Intp, error) {
	intp := &Intp{out: out}
	if err := intp.reset(n); err != nil {
		return nil, err
	}
	return intp, nil
}

func (intp *Intp) reset(n int) error {
	if n < 0 || n == math.MaxInt {
		return partition.Errorf(partition.OutOfRange, "reset", "universe bound %d not in 0…%d", n, math.MaxInt-1)
	}
	intp.ds = disjoint.New(n)
	tracer().Infof("universe is 0…%d", n)
	return nil
}

// --- Commands --------------------------------------------------------------

type command struct {
	argc int
	args string
	help string
	run  func(intp *Intp, args []int64) (string, error)
}

var commands = map[string]command{
	"merge": {2, "u v", "merge the groups of u and v", func(intp *Intp, a []int64) (string, error) {
		merged, err := intp.ds.Merge(int(a[0]), int(a[1]))
		return strconv.FormatBool(merged), err
	}},
	"find": {1, "u", "print the root of u's group", func(intp *Intp, a []int64) (string, error) {
		r, err := intp.ds.Find(int(a[0]))
		return strconv.Itoa(r), err
	}},
	"same": {2, "u v", "are u and v in the same group?", func(intp *Intp, a []int64) (string, error) {
		same, err := intp.ds.Same(int(a[0]), int(a[1]))
		return strconv.FormatBool(same), err
	}},
	"rank": {1, "u", "print the rank of u's root", func(intp *Intp, a []int64) (string, error) {
		r, err := intp.ds.Rank(int(a[0]))
		return strconv.Itoa(r), err
	}},
	"count": {0, "", "print the number of groups", func(intp *Intp, a []int64) (string, error) {
		return strconv.Itoa(intp.ds.Count()), nil
	}},
	"sets": {0, "", "print all groups", func(intp *Intp, a []int64) (string, error) {
		return intp.ds.String(), nil
	}},
	"fingerprint": {0, "", "print a hash of the partition", func(intp *Intp, a []int64) (string, error) {
		return intp.ds.Fingerprint(), nil
	}},
	"reset": {1, "n", "start over with universe 0…n", func(intp *Intp, a []int64) (string, error) {
		return strconv.Itoa(int(a[0]) + 1), intp.reset(int(a[0]))
	}},
	"gcd": {2, "p q", "greatest common divisor", func(intp *Intp, a []int64) (string, error) {
		return strconv.FormatInt(arith.GCD(a[0], a[1]), 10), nil
	}},
	"lcm": {2, "p q", "least common multiple", func(intp *Intp, a []int64) (string, error) {
		m, err := arith.LCM(a[0], a[1])
		return strconv.FormatInt(m, 10), err
	}},
}

// usage lists the commands (and quit/help, which are handled by Exec).
func usage() string {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(&b, "%-12s %-4s  %s\n", name, cmd.args, cmd.help)
	}
	b.WriteString("help               print this list\n")
	b.WriteString("quit               leave")
	return b.String()
}

// call is a command read from input, together with its arguments.
type call struct {
	name string
	cmd  command
	args []int64
}

// parse reads one command together with its arguments from r, without running it.
// Reaching the end of input before a command counts as quit.
func parse(r *scanner.Reader) (call, error) {
	token, err := r.NextToken()
	if errors.Is(err, io.EOF) {
		return call{name: "quit"}, nil
	} else if err != nil {
		return call{}, err
	}
	name := token.Lexeme()
	switch name {
	case "quit", "exit":
		return call{name: "quit"}, nil
	case "help":
		return call{name: "help"}, nil
	}
	cmd, ok := commands[name]
	if !ok {
		return call{}, fmt.Errorf("line %d: unknown command %q", token.Line(), name)
	}
	c := call{name: name, cmd: cmd, args: make([]int64, cmd.argc)}
	for i := range c.args {
		if c.args[i], err = scanner.Read[int64](r); err != nil {
			return call{}, fmt.Errorf("%s needs arguments %q: %w", name, cmd.args, err)
		}
	}
	return c, nil
}

// run executes a parsed command.
func (intp *Intp) run(c call) (result string, quit bool, err error) {
	switch c.name {
	case "quit":
		return "", true, nil
	case "help":
		return usage(), false, nil
	}
	tracer().Debugf("%s %v", c.name, c.args)
	if result, err = c.cmd.run(intp, c.args); err != nil {
		return "", false, err
	}
	return result, false, nil
}

// Exec reads one command together with its arguments from r and executes it.
// Reaching the end of input before a command counts as quit.
func (intp *Intp) Exec(r *scanner.Reader) (result string, quit bool, err error) {
	c, err := parse(r)
	if err != nil {
		return "", false, err
	}
	return intp.run(c)
}

// --- Batch mode ------------------------------------------------------------

// Batch runs a script. The script starts with the universe bound n, followed by
// commands. Results are written to intp.out, one line per command. Batch stops
// at the first error.
func (intp *Intp) Batch(input io.Reader) error {
	r := scanner.NewReader(input)
	n, err := scanner.Read[int](r)
	if err != nil {
		return fmt.Errorf("script has to start with the universe bound: %w", err)
	}
	if err = intp.reset(n); err != nil {
		return err
	}
	for {
		result, quit, err := intp.Exec(r)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		fmt.Fprintln(intp.out, result)
	}
}

// --- Interactive mode ------------------------------------------------------

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command, given on a line by itself. A line with trailing
// input is rejected before the command is run.
func (intp *Intp) Eval(line string) (bool, error) {
	r := scanner.NewReader(strings.NewReader(line))
	c, err := parse(r)
	if err != nil {
		return false, err
	}
	if rest, err := r.ReadLine(); err == nil {
		return false, fmt.Errorf("unexpected input after command: %q", strings.TrimSpace(rest))
	}
	result, quit, err := intp.run(c)
	if err != nil || quit {
		return quit, err
	}
	if strings.Fields(line)[0] == "sets" {
		intp.printTree()
		return false, nil
	}
	pterm.Info.Println(result)
	return false, nil
}

// printTree displays the partition as a tree on a terminal.
func (intp *Intp) printTree() {
	ll := pterm.LeveledList{}
	for _, set := range intp.ds.Sets() {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("group of %d (root %d)", len(set), intp.ds.MustFind(set[0])),
		})
		for _, u := range set {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  strconv.Itoa(u),
			})
		}
	}
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.Println(intp.ds.Count(), "groups")
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
