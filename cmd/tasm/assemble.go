package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/tasm/cpu"
	tasmio "github.com/ezrec/tasm/io"
	"github.com/ezrec/tasm/translate"
)

var f = translate.From

// options are the command line settings of one assembly run.
type options struct {
	Source  string   // Source file path.
	Output  string   // Output base name; defaults to the source name without extension.
	Dir     string   // Output directory.
	Format  string   // Output format name.
	Define  []string // NAME=VALUE predefines.
	Listing bool     // Print a listing table.
	Verbose bool     // Verbose mode.

	FS tasmio.CreateFS // File system holding Dir.
}

// outputName returns the base name of the output file.
func (opts *options) outputName() string {
	if len(opts.Output) != 0 {
		return opts.Output
	}
	base := filepath.Base(opts.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// target returns the output directory, as given on the command line, and
// the output file name.
func (opts *options) target() (dir string, name string) {
	full := filepath.Join(opts.Dir, opts.outputName())
	dir, name = filepath.Dir(full), filepath.Base(full)
	return
}

// outputFS returns the file system and directory within it holding dir.
// Directories inside the options file system are used through it; absolute
// paths and paths leaving it are opened on the host, relative to the root of
// the options file system.
func (opts *options) outputFS(dir string) (filesys tasmio.CreateFS, sub string) {
	if filepath.IsLocal(dir) {
		filesys, sub = opts.FS, filepath.ToSlash(dir)
		return
	}

	host := dir
	if root, ok := opts.FS.(tasmio.DirFS); ok && !filepath.IsAbs(host) {
		host = filepath.Join(string(root), host)
	}
	filesys, sub = tasmio.DirFS(host), "."
	return
}

// assemble reads, assembles and saves the source. Nothing is written to the
// output directory unless every line assembles.
func (opts *options) assemble(stdout io.Writer) (err error) {
	format, err := tasmio.ParseFormat(opts.Format)
	if err != nil {
		return
	}

	inf, err := os.Open(opts.Source)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: opts.Verbose}
	for _, def := range opts.Define {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			value = "1"
		}
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		return
	}

	if opts.Listing {
		prog.Listing(stdout)
	}

	dir, name := opts.target()
	filesys, sub := opts.outputFS(dir)
	build := &tasmio.Build{FS: filesys, Dir: sub, Format: format}
	count, err := build.Save(name, prog)
	if err != nil {
		return
	}

	if opts.Verbose {
		log.Printf("%v: %d words as %v", opts.Source, count, format)
	}

	_, err = fmt.Fprintln(stdout, f("Successfully assembled `%v` as `%v` in the `%v` dir", opts.Source, name, dir))
	return
}

// describe formats an assembly failure for the user.
func describe(err error) string {
	var syntax *cpu.ErrSyntax
	if errors.As(err, &syntax) {
		return f("Error on %v", err)
	}
	return f("tasm: %v", err)
}
