package io

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS defines a file system interface that supports creating files and
// directories. The assembler writes its build output through it.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
	// Remove deletes a file.
	Remove(name string) (err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) path(name string) (path string, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
		return
	}
	path = filepath.Join(string(dir), filepath.FromSlash(name))
	return
}

// Sub returns the subdirectory name, which must already exist.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: ErrNotDirectory}
		return
	}

	sub = DirFS(path)
	return
}

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}

	fp, err := os.Create(path)
	if err != nil {
		return
	}

	file = fp
	return
}

func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}
	return os.Mkdir(path, filemode)
}

func (dir DirFS) Remove(name string) (err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}
	return os.Remove(path)
}

// SubOrMkdir returns the subdirectory name, creating it if absent.
func SubOrMkdir(filesys CreateFS, name string) (sub CreateFS, err error) {
	sub, err = filesys.Sub(name)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return
	}

	// Create the directory
	err = filesys.Mkdir(name, 0755)
	if err != nil {
		return
	}

	return filesys.Sub(name)
}
