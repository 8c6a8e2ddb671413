// Package term is a small display shell for shade TextFrames: it switches
// the controlling terminal to the alternate screen in raw mode, redraws
// frames in place, and restores the terminal state on Close.
package term

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/term-shade/shade"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J"
	homeCursor     = "\x1b[H"
)

// Screen owns the terminal while open. One Screen per process; Close must
// run before exit or the terminal is left in raw mode.
type Screen struct {
	in    *os.File
	out   *os.File
	saved unix.Termios
	open  bool
}

// Open puts the terminal into raw mode on the alternate screen with the
// cursor hidden.
func Open() (*Screen, error) {
	s := &Screen{in: os.Stdin, out: os.Stdout}

	if err := termios.Tcgetattr(s.in.Fd(), &s.saved); err != nil {
		return nil, fmt.Errorf("term: get attributes: %w", err)
	}

	raw := s.saved
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(s.in.Fd(), termios.TCSANOW, &raw); err != nil {
		return nil, fmt.Errorf("term: set raw mode: %w", err)
	}

	fmt.Fprint(s.out, enterAltScreen+hideCursor+clearScreen)
	s.open = true
	return s, nil
}

// Size returns the terminal dimensions in character cells.
func (s *Screen) Size() (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(s.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("term: winsize: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// Draw writes one frame from the home position. In raw mode the terminal
// does not translate \n, so line breaks are expanded to \r\n here.
func (s *Screen) Draw(tf shade.TextFrame) error {
	if _, err := fmt.Fprint(s.out, homeCursor); err != nil {
		return err
	}
	buf := make([]byte, 0, len(tf)+64)
	for i := 0; i < len(tf); i++ {
		if tf[i] == '\n' {
			buf = append(buf, '\r', '\n')
			continue
		}
		buf = append(buf, tf[i])
	}
	_, err := s.out.Write(buf)
	return err
}

// Keys reads input bytes on a background goroutine and delivers them until
// the Screen is closed or stdin fails.
func (s *Screen) Keys() <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		one := make([]byte, 1)
		for {
			n, err := s.in.Read(one)
			if err != nil {
				return
			}
			if n == 1 {
				keys <- one[0]
			}
		}
	}()
	return keys
}

// Close restores the saved terminal attributes and leaves the alternate
// screen. Safe to call more than once.
func (s *Screen) Close() error {
	if !s.open {
		return nil
	}
	s.open = false
	fmt.Fprint(s.out, showCursor+leaveAltScreen)
	if err := termios.Tcsetattr(s.in.Fd(), termios.TCSANOW, &s.saved); err != nil {
		return fmt.Errorf("term: restore attributes: %w", err)
	}
	return nil
}
