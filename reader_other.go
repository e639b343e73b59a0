//go:build !unix

package desk

import (
	"errors"
	"os"
)

// NewEventReader is only available on unix systems. Use NewTcellBackend
// elsewhere.
func NewEventReader(in *os.File) (EventReader, error) {
	return nil, errors.New("desk: stdin reader requires a unix terminal")
}
