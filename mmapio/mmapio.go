// Package mmapio opens storage files the way spec §5 requires: ordinary
// readers get a shared read-only mapping, the single privileged updater
// gets a shared-writable one. Grounded on
// rpcpool/yellowstone-faithful's bucketteer/read.go, which imports both
// golang.org/x/exp/mmap and golang.org/x/sys/unix side by side for
// exactly this read-only/writable split.
package mmapio

import (
	"os"

	"github.com/flagstorage/aconfig/errs"
	"golang.org/x/exp/mmap"
	"golang.org/x/sys/unix"
)

// ReadOnlyFile is a memory-mapped, read-only storage file. Multiple
// processes may open the same path concurrently; no locking is needed
// because reads never mutate (spec §5).
type ReadOnlyFile struct {
	reader *mmap.ReaderAt
	data   []byte
}

// OpenReadOnly memory-maps path for reading.
//
// golang.org/x/exp/mmap.ReaderAt does not expose its mapped pages as a
// []byte (only ReadAt/At), so Bytes copies the mapping into an ordinary
// slice once at open time. For this format's read pattern — mmap once at
// process start, then run many Find* lookups against the same bytes —
// that one copy is cheap relative to the process lifetime and keeps the
// section/storage packages working over a plain []byte regardless of
// which mapping opened it.
func OpenReadOnly(path string) (*ReadOnlyFile, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrMapFileFail, err.Error())
	}

	data := make([]byte, reader.Len())
	if _, err := reader.ReadAt(data, 0); err != nil {
		_ = reader.Close()
		return nil, errs.Wrap(errs.ErrMapFileFail, err.Error())
	}

	return &ReadOnlyFile{reader: reader, data: data}, nil
}

// Bytes returns the file's contents.
func (f *ReadOnlyFile) Bytes() []byte {
	return f.data
}

// Close unmaps the file.
func (f *ReadOnlyFile) Close() error {
	return f.reader.Close()
}

// ReadWriteFile is a shared-writable memory mapping of the flag value
// list, the only file type ever mutated in place (spec §4.7, §5). Writes
// through Bytes() are visible to every other process mapping the same
// file; the caller must ensure it is the only writer.
type ReadWriteFile struct {
	file *os.File
	data []byte
}

// OpenReadWrite memory-maps path as PROT_READ|PROT_WRITE, MAP_SHARED.
func OpenReadWrite(path string) (*ReadWriteFile, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errs.Wrap(errs.ErrMapFileFail, err.Error())
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errs.Wrap(errs.ErrMapFileFail, err.Error())
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(info.Size()), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = file.Close()
		return nil, errs.Wrap(errs.ErrMapFileFail, err.Error())
	}

	return &ReadWriteFile{file: file, data: data}, nil
}

// Bytes returns the live, mutable mapping. Writes through the returned
// slice are visible to other processes mapping the same file.
func (f *ReadWriteFile) Bytes() []byte {
	return f.data
}

// Close unmaps the file and closes the underlying descriptor.
func (f *ReadWriteFile) Close() error {
	err := unix.Munmap(f.data)
	if closeErr := f.file.Close(); err == nil {
		err = closeErr
	}

	return err
}

// CreateFile creates a new, empty file at path sized to len(contents) and
// writes contents to it. It is the non-mmap counterpart used by builders
// that write a freshly-built file to disk before any reader maps it.
func CreateFile(path string, contents []byte) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errs.Wrap(errs.ErrFileCreationFail, err.Error())
	}
	defer file.Close()

	if _, err := file.Write(contents); err != nil {
		return errs.Wrap(errs.ErrFileCreationFail, err.Error())
	}

	return nil
}
