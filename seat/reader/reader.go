// Package reader reads seat codes, one per line, from text input.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keep94/boarding/seat"
	"github.com/keep94/goconsume"
	"github.com/keep94/gofunctional3/functional"
)

// Read decodes each non blank line of r as a seat code and sends the
// resulting *seat.Seat values to consumer until consumer can consume no
// more. Read stops at the first line that fails to decode and returns that
// error with its Line field set; nothing after that line is read. Failures
// reading r are returned as an IoError.
func Read(r io.Reader, consumer goconsume.Consumer) error {
	lines := functional.ReadLines(r)
	var line string
	var err error
	lineNo := 0
	for err = lines.Next(&line); err == nil; err = lines.Next(&line) {
		lineNo++
		if !consumer.CanConsume() {
			return nil
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		s, decodeErr := seat.Decode(code)
		if decodeErr != nil {
			var e *seat.Error
			if errors.As(decodeErr, &e) {
				e.Line = lineNo
			}
			return decodeErr
		}
		consumer.Consume(&s)
	}
	if err != functional.Done {
		return seat.WrapError(seat.IoError, fmt.Sprintf("bad line: %v", err), err)
	}
	return nil
}

// ReadFile is like Read except that it reads the file at path. The file is
// always closed before ReadFile returns. Failure to open the file is
// returned as an IoError.
func ReadFile(path string, consumer goconsume.Consumer) error {
	f, err := os.Open(path)
	if err != nil {
		return seat.WrapError(seat.IoError, fmt.Sprintf("io error:%v", err), err)
	}
	defer f.Close()
	return Read(f, consumer)
}
