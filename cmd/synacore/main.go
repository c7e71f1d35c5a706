// Command synacore is the front-end adapter: it turns a file path or
// an inline CSV literal into a program image, then either runs it or
// disassembles it. It is a thin adapter over pkg/vm, pkg/image, and
// pkg/disasm — no VM semantics live here.
//
// Flags are parsed with github.com/pborman/getopt/v2
// (StringLong/BoolLong/Parse/Usage on the package's default option
// set): single-dash, one value per flag, with GNU-style short/long
// aliases for each mode.
package main

import (
	"context"
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/bassosimone/synacore/pkg/disasm"
	"github.com/bassosimone/synacore/pkg/image"
	"github.com/bassosimone/synacore/pkg/vm"
)

func main() {
	optFile := getopt.StringLong("file", 'f', "", "interpret the binary program at <path>")
	optCode := getopt.StringLong("code", 'c', "", "interpret the inline decimal-CSV program")
	optDisasm := getopt.StringLong("disassemble", 'd', "", "disassemble <path> to <path>.sasm")
	optInput := getopt.StringLong("input", 'i', "", "feed <path> as canned input instead of stdin")
	optHelp := getopt.BoolLong("help", 'h', "show usage")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	switch {
	case *optDisasm != "":
		os.Exit(runDisassemble(*optDisasm))
	case *optFile != "":
		words, err := loadFile(*optFile)
		os.Exit(runInterpret(words, err, *optInput))
	case *optCode != "":
		words, err := image.FromCSV(*optCode)
		os.Exit(runInterpret(words, err, *optInput))
	default:
		getopt.Usage()
		os.Exit(0)
	}
}

func loadFile(path string) ([]vm.Word, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return image.FromBinary(fp)
}

func runDisassemble(path string) int {
	words, err := loadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0
	}
	out, err := os.Create(path + ".sasm")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0
	}
	defer out.Close()
	mem := make([]vm.Word, vm.MemSize)
	copy(mem, words)
	if err := disasm.Disassemble(mem, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0
	}
	fmt.Printf("Disassembled %s to %s\n", path, path+".sasm")
	return 0
}

// runInterpret builds and drives a VM from a decoded image. loadErr is
// threaded through from the caller's image.FromBinary/FromCSV call so
// both call sites report loader faults (ImageTooLarge, OperandOverflow)
// the same way execution faults are reported.
func runInterpret(words []vm.Word, loadErr error, inputPath string) int {
	if loadErr != nil {
		fmt.Fprintln(os.Stderr, "Error during VM execution:", loadErr)
		return 1
	}

	stdin := os.Stdin
	if inputPath != "" {
		fp, err := os.Open(inputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error during VM execution:", err)
			return 1
		}
		defer fp.Close()
		stdin = fp
	}

	transcript, err := os.OpenFile("input.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during VM execution:", err)
		return 1
	}
	defer transcript.Close()

	device := vm.NewStdIODevice(stdin, os.Stdout, transcript)
	machine, err := vm.New(words, device, device)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during VM execution:", err)
		return 1
	}

	if err := machine.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error during VM execution:", err)
		return 1
	}
	return 0
}
