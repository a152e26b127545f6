package main

import (
	"fmt"
	"os"

	"ncc/internal/cmd"
	"ncc/internal/cmdline"
)

const version = "V0.1.0"

func registerOptions(cl *cmdline.CmdLine) {
	cl.Add("", "--help", "Show this help info.", cmdline.NoValue, "")
	cl.Add("", "--version", "Show version number.", cmdline.NoValue, "")
	cl.Add("-o", "", "Place the output into <file>.", cmdline.ValueAfterSpace, "file")
	cl.Add("-D", "", "Add macro definition.", cmdline.ValueAttachedOrSpace, "macro[=<value>]")
	cl.Add("-I", "", "Add the header file index path.", cmdline.ValueAttachedOrSpace, "path")
	cl.Add("-v", "", "Display the programs invoked by the compiler.", cmdline.NoValue, "")
	cl.Add("-###", "", "Like -v but options quoted and commands not executed.", cmdline.NoValue, "")
	cl.Add("-E", "", "Preprocess only; do not compile, assemble or link.", cmdline.NoValue, "")
	cl.Add("-S", "", "Compile only; do not assemble or link.", cmdline.NoValue, "")
	cl.Add("-c", "", "Compile and assemble, but do not link.", cmdline.NoValue, "")
	cl.Add("-pie", "", "Create a dynamically linked position independent executable.", cmdline.NoValue, "")
	cl.Add("-std=", "", "Set language standards for use.", cmdline.ValueAttached, "")
}

func checkInputFiles(files []string) error {
	bad := false
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: No such file\n", file)
			bad = true
		}
	}
	if bad {
		return fmt.Errorf("input file error")
	}
	return nil
}

func buildOptions(cl *cmdline.CmdLine) *cmd.Options {
	options := &cmd.Options{Verbose: cl.Has("-v")}
	if values, ok := cl.ValuesOf("-o"); ok && len(values) > 0 {
		options.OutputPath = values[len(values)-1]
	}
	if values, ok := cl.ValuesOf("-D"); ok {
		options.Defines = values
	}
	if values, ok := cl.ValuesOf("-I"); ok {
		options.IncludePaths = values
	}
	if values, ok := cl.ValuesOf("-std="); ok && len(values) > 0 {
		options.Std = values[len(values)-1]
	}
	return options
}

func main() {
	cl := cmdline.New()
	registerOptions(cl)

	if err := cl.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cl.Has("--help") {
		fmt.Printf("%s\n\nncc compiler -- %s\n", cl.Help(), version)
		return
	}
	if cl.Has("--version") {
		fmt.Printf("ncc compiler -- %s\n", version)
		return
	}

	if len(cl.Others) == 0 {
		fmt.Fprintln(os.Stderr, "No input file")
		os.Exit(1)
	}
	if err := checkInputFiles(cl.Others); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	runner := cmd.NewRunner(buildOptions(cl))
	if err := runner.Run(cl.Others[0], os.Stdout); err != nil {
		runner.Diagnostics.EmitAll(os.Stderr)
		os.Exit(1)
	}
}
