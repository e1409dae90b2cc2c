// Package rcfile reads ack-style rc files: one option token per line, with
// blank lines and #-comments ignored.
package rcfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"
)

// maxLineBytes bounds a single rc line; longer lines fail the read.
const maxLineBytes = 1 << 20

// ReadError reports an rc file that exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Unable to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Lines returns the option lines of the rc file at path. The file is opened
// each time the sequence is ranged over and closed before the range ends.
//
// An empty path or a file that no longer exists yields nothing. Any other
// open or read failure is yielded once as a *ReadError and ends the sequence.
func Lines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if path == "" {
			return
		}
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return
			}
			yield("", &ReadError{Path: path, Err: err})
			return
		}
		defer f.Close()

		if err := scan(f, yield); err != nil {
			yield("", &ReadError{Path: path, Err: err})
		}
	}
}

// FromReader returns the option lines read from r. Errors from r are yielded
// unwrapped.
func FromReader(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := scan(r, yield); err != nil {
			yield("", err)
		}
	}
}

// ReadAll collects Lines(path) into a slice.
func ReadAll(path string) ([]string, error) {
	return collect(Lines(path))
}

func collect(seq iter.Seq2[string, error]) ([]string, error) {
	var out []string
	for line, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}

// scan feeds trimmed, non-blank, non-comment lines to yield. It returns the
// scanner error, or nil when the input ended or yield asked to stop.
func scan(r io.Reader, yield func(string, error) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if !yield(line, nil) {
			return nil
		}
	}
	return sc.Err()
}
