package io

import (
	"github.com/ezrec/tasm/cpu"
	"github.com/ezrec/tasm/internal"
)

// Build places assembled programs in an output directory.
type Build struct {
	FS     CreateFS // File system holding the output directory.
	Dir    string   // Output directory, created if absent.
	Format Format   // Encoding of the output files.
}

// Save writes the program as name in the output directory, returning the
// number of words written. A file that fails part way is removed.
func (build *Build) Save(name string, prog *cpu.Program) (count int, err error) {
	dir, err := SubOrMkdir(build.FS, build.Dir)
	if err != nil {
		return
	}

	file, err := dir.Create(name)
	if err != nil {
		return
	}

	err = Write(file, prog.Words(), build.Format)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = dir.Remove(name)
		return
	}

	count = internal.IterCount(prog.Words())
	return
}
