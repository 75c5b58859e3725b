// Package errs defines the sentinel errors returned by the storage,
// section, and codec packages.
//
// Every error is a package-level value so callers can test for a specific
// kind with errors.Is, regardless of how much context a wrapping message
// adds. Use Wrap to attach context to a sentinel before returning it.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBytesParseFail indicates a truncated buffer, a malformed length
	// prefix, or non-UTF-8 bytes in a string field.
	ErrBytesParseFail = errors.New("bytes parse fail")

	// ErrBadFileType indicates the file_type byte does not match what the
	// reader expected.
	ErrBadFileType = errors.New("bad file type")

	// ErrHigherStorageFileVersion indicates the file declares a version
	// newer than this library supports.
	ErrHigherStorageFileVersion = errors.New("higher storage file version")

	// ErrInvalidStorageFileOffset indicates a computed offset exceeds the
	// file's recorded size.
	ErrInvalidStorageFileOffset = errors.New("invalid storage file offset")

	// ErrFileCreationFail wraps an I/O failure while creating a storage
	// file on disk.
	ErrFileCreationFail = errors.New("file creation fail")

	// ErrMapFileFail wraps an I/O failure while memory-mapping a storage
	// file.
	ErrMapFileFail = errors.New("map file fail")

	// ErrEmptyPackageName indicates a FlagPackage with no name was passed
	// to the package map builder.
	ErrEmptyPackageName = errors.New("empty package name")

	// ErrEmptyContainer indicates an empty container name was passed to a
	// builder.
	ErrEmptyContainer = errors.New("empty container")

	// ErrMissingFlagID indicates the flag-id assignment pass did not
	// produce an id for a flag the builder is about to write.
	ErrMissingFlagID = errors.New("missing flag id")

	// ErrTooManyPackages indicates a container has more packages than fit
	// in the dense package-id space.
	ErrTooManyPackages = errors.New("too many packages")

	// ErrTooManyFlags indicates a container has more flags than fit in the
	// dense flag-id space, or more than a uint16 count field can record.
	ErrTooManyFlags = errors.New("too many flags")

	// ErrDuplicateFlagName indicates the same flag name was declared twice
	// within one package.
	ErrDuplicateFlagName = errors.New("duplicate flag name within package")
)

// Wrap attaches context to a sentinel error. The result still satisfies
// errors.Is(result, sentinel).
func Wrap(sentinel error, context string) error {
	return fmt.Errorf("%s: %w", context, sentinel)
}
