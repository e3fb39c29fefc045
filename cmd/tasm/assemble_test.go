package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tasm/cpu"
	tasmio "github.com/ezrec/tasm/io"
)

func writeSource(t *testing.T, dir string, name string, lines ...string) string {
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	source := writeSource(t, root, "prog.tasm", "mov AC, 0x3FF")

	var stdout bytes.Buffer
	opts := &options{Source: source, Dir: "build", Format: "text", FS: tasmio.DirFS(root)}
	err := opts.assemble(&stdout)
	assert.NoError(err)
	assert.Equal("Successfully assembled `"+source+"` as `prog` in the `build` dir\n", stdout.String())

	data, err := os.ReadFile(filepath.Join(root, "build", "prog"))
	assert.NoError(err)
	assert.Equal("0b00000100000000000000001111111111\n", string(data))
}

func TestAssemble_Options(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	source := writeSource(t, root, "prog.tasm", "mov AC, $(BASE)", "add AC $(STEP)")

	var stdout bytes.Buffer
	opts := &options{
		Source:  source,
		Output:  "image",
		Dir:     "out",
		Format:  "plain",
		Define:  []string{"BASE=0x3ff", "STEP"},
		Listing: true,
		FS:      tasmio.DirFS(root),
	}
	err := opts.assemble(&stdout)
	assert.NoError(err)
	assert.Contains(stdout.String(), "mov AC 1023")
	assert.Contains(stdout.String(), "as `image` in the `out` dir")

	data, err := os.ReadFile(filepath.Join(root, "out", "image"))
	assert.NoError(err)
	assert.Equal("00000000000000000000001111111111\n00010100000000000000000000000001\n", string(data))
}

func TestAssemble_Dir(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	work := filepath.Join(root, "work")
	assert.NoError(os.Mkdir(work, 0755))
	source := writeSource(t, root, "prog.tasm", "add AC 5")

	table := []struct {
		dir, output string
		shown       string // Directory in the success message.
		path        string // Output file, relative to root.
	}{
		{filepath.Join(root, "abs"), "", filepath.Join(root, "abs"), "abs/prog"},
		{"./build", "", "build", "work/build/prog"},
		{"../out", "", "../out", "out/prog"},
		{"build", "../name", ".", "work/name"},
		{".", "", ".", "work/prog"},
	}

	for _, entry := range table {
		var stdout bytes.Buffer
		opts := &options{Source: source, Output: entry.output, Dir: entry.dir, Format: "plain", FS: tasmio.DirFS(work)}
		err := opts.assemble(&stdout)
		assert.NoError(err, entry.dir)

		name := filepath.Base(entry.path)
		assert.Equal("Successfully assembled `"+source+"` as `"+name+"` in the `"+entry.shown+"` dir\n", stdout.String(), entry.dir)

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(entry.path)))
		assert.NoError(err, entry.dir)
		assert.Equal("00010100000000000000000000000101\n", string(data), entry.dir)
	}
}

func TestAssemble_FailFast(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	source := writeSource(t, root, "prog.tasm", "add AC 5", "movx 1")

	var stdout bytes.Buffer
	opts := &options{Source: source, Dir: "build", Format: "text", FS: tasmio.DirFS(root)}
	err := opts.assemble(&stdout)

	var syntax *cpu.ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(2, syntax.LineNo)
	assert.Equal("Error on line 2: movx is not a tasm instruction", describe(err))
	assert.Empty(stdout.String())

	// Line 1 assembled, but nothing is written when any line fails.
	_, err = os.Stat(filepath.Join(root, "build", "prog"))
	assert.True(errors.Is(err, fs.ErrNotExist))
}

func TestAssemble_Errors(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()

	opts := &options{Source: filepath.Join(root, "missing.tasm"), Dir: "build", Format: "text", FS: tasmio.DirFS(root)}
	err := opts.assemble(&bytes.Buffer{})
	assert.ErrorIs(err, fs.ErrNotExist)
	assert.True(strings.HasPrefix(describe(err), "tasm: "))

	opts.Format = "hex"
	err = opts.assemble(&bytes.Buffer{})
	assert.ErrorIs(err, tasmio.ErrFormat("hex"))
}

func TestOutputName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("prog", (&options{Source: "src/prog.tasm"}).outputName())
	assert.Equal("prog", (&options{Source: "prog"}).outputName())
	assert.Equal("a.b", (&options{Source: "a.b.tasm"}).outputName())
	assert.Equal("out", (&options{Source: "prog.tasm", Output: "out"}).outputName())

	dir, name := (&options{Source: "src/prog.tasm", Dir: "./build/"}).target()
	assert.Equal("build", dir)
	assert.Equal("prog", name)

	dir, name = (&options{Source: "prog.tasm", Dir: "build", Output: "../bin/image"}).target()
	assert.Equal("bin", dir)
	assert.Equal("image", name)
}
