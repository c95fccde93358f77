package taint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultSourcePath is the kernel's taint status file.
const DefaultSourcePath = "/proc/sys/kernel/tainted"

// The kernel writes a single short decimal line; anything past this is
// not a taint status.
const maxSourceBytes = 64

var (
	ErrSourceUnavailable = errors.New("cannot open taint status source")
	ErrSourceUnreadable  = errors.New("cannot read taint status source")
	ErrSourceMalformed   = errors.New("taint status source contains unparsable data")
)

// Source yields the kernel taint status value.
type Source interface {
	Load() (uint64, error)
}

// FileSource reads the taint status from a procfs-style file.
type FileSource struct {
	Path string
}

// NewFileSource returns a FileSource for path, defaulting to the kernel's
// taint status file when path is empty.
func NewFileSource(path string) FileSource {
	if path == "" {
		path = DefaultSourcePath
	}
	return FileSource{Path: path}
}

func (s FileSource) Load() (uint64, error) {
	fh, err := os.Open(s.Path)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrSourceUnavailable, s.Path, err)
	}
	defer fh.Close()

	buf := make([]byte, maxSourceBytes)
	n, err := fh.Read(buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w %q: %v", ErrSourceUnreadable, s.Path, err)
	}
	value, err := ParseStatus(string(buf[:n]))
	if err != nil {
		return 0, fmt.Errorf("%w (file %q)", err, s.Path)
	}
	return value, nil
}

// ParseStatus interprets raw source content as an unsigned 64-bit decimal.
// Only the first line counts; empty, non-numeric and overflowing content is
// rejected as ErrSourceMalformed.
func ParseStatus(raw string) (uint64, error) {
	text := raw
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSourceMalformed, text)
	}
	return value, nil
}
