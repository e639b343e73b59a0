//go:build unix

package desk

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader reads key events from a raw-mode terminal and turns SIGWINCH
// into ResizeEvents.
type stdinReader struct {
	fd      int
	buf     []byte
	partial []byte
	sigCh   chan os.Signal
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode when PollEvent is called.
func NewEventReader(in *os.File) (EventReader, error) {
	if in == nil {
		return nil, errors.New("desk: nil input")
	}
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

// PollEvent returns a pending resize first, then at most one key event per
// read. A single read is decoded as one key.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool, error) {
	select {
	case <-r.sigCh:
		w, h := windowSize(r.fd)
		return ResizeEvent{Width: w, Height: h}, true, nil
	default:
	}

	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil {
		return nil, false, fmt.Errorf("poll input: %w", err)
	}
	if !ready {
		return nil, false, nil
	}

	n, err := unix.Read(r.fd, r.buf)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read input: %w", err)
	}
	if n == 0 {
		return nil, false, nil
	}

	data := append(r.partial, r.buf[:n]...)
	data, tail := splitIncomplete(data)
	r.partial = append([]byte(nil), tail...)
	if len(data) == 0 {
		return nil, false, nil
	}
	return DecodeKey(data), true, nil
}

// Close stops resize notifications.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	return nil
}

func windowSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectWithTimeout reports whether fd is readable within timeout.
// A negative timeout blocks.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var fds unix.FdSet
	fds.Zero()
	fds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}

	n, err := unix.Select(fd+1, &fds, nil, nil, tv)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
