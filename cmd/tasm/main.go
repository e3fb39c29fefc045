// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	tasmio "github.com/ezrec/tasm/io"
)

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	opts := &options{FS: tasmio.DirFS(".")}

	cmd := &cobra.Command{
		Use:   "tasm source",
		Short: "Assemble tasm files for toy-machine.",
		Long: `Tasm assembles a source file of add and mov instructions into the
32-bit machine words of the toy machine, one word per output line.

Assembly stops at the first malformed line, and no output file is written.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			opts.Source = args[0]
			err := opts.assemble(stdout)
			if err != nil {
				stdout.WriteString(describe(err) + "\n")
				atexit.Exit(1)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "Name of the output file")
	flags.StringVarP(&opts.Dir, "dir", "d", "build", "Output directory")
	flags.StringVarP(&opts.Format, "format", "f", "text", "Output format: text, plain or binary")
	flags.StringArrayVarP(&opts.Define, "define", "D", nil, "Predefine NAME=VALUE for $() expressions")
	flags.BoolVarP(&opts.Listing, "listing", "l", false, "Print a listing of the assembled program")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose mode")

	if err := cmd.Execute(); err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		atexit.Exit(2)
	}

	atexit.Exit(0)
}
