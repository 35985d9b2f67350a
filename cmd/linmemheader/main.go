// Command linmemheader generates the C header matching the cabi
// package's flat ABI, for hosts written in C or C++ that dynamically
// load the linmem shared library. It is mechanical surface around the
// cabi package and carries no logic of its own beyond emitting the
// prototype list.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(doMain(os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut, stdErr io.Writer) int {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "Prints usage.")
	flag.Parse()

	if help || flag.NArg() == 0 {
		printUsage(stdErr)
		return 0
	}

	subCmd := flag.Arg(0)
	switch subCmd {
	case "header":
		return doHeader(flag.Args()[1:], stdErr)
	default:
		fmt.Fprintln(stdErr, "invalid command")
		printUsage(stdErr)
		return 1
	}
}

func doHeader(args []string, stdErr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdErr, "missing out_path")
		printHeaderUsage(stdErr)
		return 1
	}

	outPath := args[0]
	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(stdErr, "creating %s: %v\n", outPath, err)
		return 1
	}
	defer f.Close()

	if err := writeHeader(f); err != nil {
		fmt.Fprintf(stdErr, "writing %s: %v\n", outPath, err)
		return 1
	}
	return 0
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "linmemheader <command>")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Commands:")
	fmt.Fprintln(stdErr, "\theader\tWrites the C header for the cabi package's ABI.")
}

func printHeaderUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "linmemheader header <out_path>")
}
