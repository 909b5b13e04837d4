// Package auditlog appends human-readable order lines to a plain-text file.
// The file is a write-only side channel: it is never read back, and its loss
// does not affect application correctness.
package auditlog

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
)

// File appends lines to a text file at a fixed path. The file is opened and
// closed around each append so no handle is held across the process lifetime.
type File struct {
	path string
}

// NewFile returns a File writing to path. The file is created on first append.
func NewFile(path string) *File {
	return &File{path: path}
}

// Append writes one line (newline added) to the end of the file.
func (f *File) Append(line string) error {
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open audit log")
	}

	_, werr := fmt.Fprintln(fh, line)
	cerr := fh.Close()
	if werr != nil {
		return errors.Wrap(werr, "write audit log")
	}
	if cerr != nil {
		return errors.Wrap(cerr, "close audit log")
	}
	return nil
}
