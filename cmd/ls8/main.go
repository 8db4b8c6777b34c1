// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

func main() {
	var dir string
	var verbose bool
	var strict bool
	var trace string
	var brk string
	var period time.Duration

	flag.CommandLine.SetOutput(os.Stdout)
	flag.Usage = func() {
		fmt.Fprintln(os.Stdout, f("Usage: %v [options] program", os.Args[0]))
		fmt.Fprintln(os.Stdout, f("Runs %v/program.ls8", dir))
		flag.PrintDefaults()
	}

	flag.StringVar(&dir, "d", "examples", "Directory of .ls8 programs")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "s", false, "Strict mode: invalid instructions are fatal")
	flag.StringVar(&trace, "t", "", "Trace when expression is true")
	flag.StringVar(&brk, "b", "", "Break when expression is true")
	flag.DurationVar(&period, "p", emulator.INT_TIMER_PERIOD, "Timer interrupt period")

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	name := flag.Arg(0)

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Strict = strict
	emu.Timer.Period = period
	emu.Tape.Output = os.Stdout

	var err error
	if len(trace) != 0 {
		emu.Trace, err = emulator.NewWatch(trace, emu.Defines())
		if err != nil {
			log.Fatalf("-t: %v", err)
		}
	}

	if len(brk) != 0 {
		emu.Break, err = emulator.NewWatch(brk, emu.Defines())
		if err != nil {
			log.Fatalf("-b: %v", err)
		}
	}

	err = emu.Open(os.DirFS(dir), name)
	if errors.Is(err, fs.ErrNotExist) {
		log.Fatal(f("%v: %v file was not found", os.Args[0], name))
	}
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = emu.Run()

	// Don't leave the shell prompt on the end of a PRA line.
	if !emu.Tape.AtLineStart() && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stdout)
	}

	if errors.Is(err, emulator.ErrBreak) {
		log.Printf("%v\n%v", err, emu.Cpu.String())
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
}
