// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/io"
)

// predefines collects repeated -D name=value flags.
type predefines map[string]int

func (pd predefines) String() string {
	var defs []string
	for name, value := range pd {
		defs = append(defs, fmt.Sprintf("%v=%v", name, value))
	}
	return strings.Join(defs, ",")
}

func (pd predefines) Set(define string) (err error) {
	name, text, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("expected name=value, got %q", define)
		return
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return
	}

	pd[name] = value
	return
}

func main() {
	var compile string
	var rom string
	var save string
	var listing bool
	var input string
	var output string
	var strict bool
	var verbose bool
	defines := predefines{}

	flag.StringVar(&compile, "c", "", ".lmc file to compile")
	flag.StringVar(&rom, "r", "", ".rom image file to load")
	flag.StringVar(&save, "s", "", "Save image to .rom file, do not execute")
	flag.BoolVar(&listing, "l", false, "Print program listing")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.Var(defines, "D", "Predefine name=value for $(...) expressions")
	flag.BoolVar(&strict, "strict", false, "Reject duplicate labels")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(rom) != 0 {
		atexit.Fatalf("%v: -c and -r are exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		atexit.Register(func() { inf.Close() })

		as := &asm.Assembler{
			Verbose: verbose,
			Strict:  strict,
		}
		for name, value := range defines {
			as.Predefine(name, value)
		}

		emu.Program, err = as.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
	case len(rom) != 0:
		inf, err := os.Open(rom)
		if err != nil {
			atexit.Fatalf("%v: %v", rom, err)
		}
		atexit.Register(func() { inf.Close() })

		image := &io.Rom{}
		_, err = image.ReadFrom(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", rom, err)
		}
		emu.LoadImage(image.Words)
	default:
		atexit.Fatalf("%v: one of -c or -r is required", os.Args[0])
	}

	if listing {
		fmt.Println(emu.Program.Listing())
	}

	if len(save) != 0 {
		words := emu.Image
		if words == nil {
			words = emu.Program.Binary()
		}

		ouf, err := os.Create(save)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Register(func() { ouf.Close() })

		image := &io.Rom{Words: words}
		_, err = image.WriteTo(ouf)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}

		atexit.Exit(0)
	}

	if input == "-" {
		emu.Tape.In = os.Stdin
		emu.Tape.Prompt = os.Stdout
	} else {
		inf, err := os.Open(input)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		atexit.Register(func() { inf.Close() })
		emu.Tape.In = inf
	}

	if output == "-" {
		emu.Tape.Out = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		emu.Tape.Out = ouf
	}

	err := emu.Reset()
	if err != nil {
		atexit.Fatal(err)
	}

	err = emu.Run()
	if verbose {
		log.Printf("state:\n%v", emu.Cpu)
	}
	if err != nil {
		atexit.Fatal(err)
	}

	atexit.Exit(0)
}
