package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ErrNotInteractive is returned by Init when the output stream is not an
// interactive terminal.
var ErrNotInteractive = errors.New("output is not an interactive terminal")

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// Session owns process-wide terminal mode: raw mode, alternate screen and
// cursor visibility are acquired in Init and released in Fini. Resize
// signals surface on ResizeChan with latest-wins delivery so a burst of
// SIGWINCH coalesces into a single pending event.
type Session struct {
	backend   Backend
	colorMode ColorMode
	resizeCh  chan ResizeEvent

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a session on the process terminal. Color capability is
// detected from the environment unless given explicitly.
func New(colorMode ...ColorMode) *Session {
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return NewWithBackend(newBackend(), c)
}

// NewWithBackend creates a session over an explicit backend (test hook).
func NewWithBackend(b Backend, colorMode ColorMode) *Session {
	return &Session{
		backend:   b,
		colorMode: colorMode,
		resizeCh:  make(chan ResizeEvent, 1),
	}
}

// Init validates the display, enters raw mode and the alternate screen,
// hides the cursor and clears the screen. Returns ErrNotInteractive without
// writing any output when the stream is not a terminal.
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if !s.backend.IsTerminal() {
		return ErrNotInteractive
	}

	if err := s.backend.Init(); err != nil {
		return err
	}

	s.backend.SetResizeHandler(func(w, h int) {
		select {
		case s.resizeCh <- ResizeEvent{Width: w, Height: h}:
		default:
			// Drain and replace so the latest size is the one pending
			select {
			case <-s.resizeCh:
			default:
			}
			select {
			case s.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
			}
		}
	})

	s.backend.Write(csiAltScreenEnter)
	s.backend.Write(csiCursorHide)
	s.backend.Write(csiAutoWrapOff)
	s.backend.Write(csiClear)

	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times.
func (s *Session) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	s.backend.Write(csiCursorShow)
	s.backend.Write(csiAltScreenExit)
	// Re-enable auto-wrap after exiting the alt screen so the main buffer
	// keeps wrap enabled
	s.backend.Write(csiAutoWrapOn)
	s.backend.Write(csiReset)

	s.backend.Fini()

	s.finalized = true
}

// Size returns current terminal dimensions
func (s *Session) Size() (width, height int) {
	return s.backend.Size()
}

// ResizeChan returns the resize event channel
func (s *Session) ResizeChan() <-chan ResizeEvent {
	return s.resizeCh
}

// ColorMode returns the session's color capability
func (s *Session) ColorMode() ColorMode {
	return s.colorMode
}

// Write sends one frame's bytes to the terminal in a single write.
// Implements io.Writer so the frame serializer can target the session
// directly.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return len(p), nil
	}
	if err := s.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Clear blanks the screen and homes the cursor.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	if err := s.backend.Write(csiReset); err != nil {
		return err
	}
	return s.backend.Write(csiClear)
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiReset)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort reset of
	// the tty line discipline in crash context
	resetTerminalMode()
}
