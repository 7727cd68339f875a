package main

import (
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("DS.REPL"), where users may merge elements
// of a universe 0…n and query the resulting partition. With flag -batch, a
// script is read from stdin instead (see package documentation).
func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	n := flag.Int("n", 10, "Universe bound, elements are 0…n")
	compress := flag.Bool("compress", false, "Compress paths during find")
	batch := flag.Bool("batch", false, "Read a script from stdin")
	flag.Parse()
	//
	// set up configuration and logging
	conf := newAppConfig(*tlevel, *compress, !*batch)
	if err := initTracing(conf); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	intp, err := NewIntp(*n, os.Stdout)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	if *batch {
		if err := intp.Batch(os.Stdin); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	initDisplay()
	pterm.Info.Println("Welcome to DS.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	repl, err := readline.New("ds> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// initTracing routes all tracers to a Go standard logger and makes the
// configuration globally available.
func initTracing(conf appConfig) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
