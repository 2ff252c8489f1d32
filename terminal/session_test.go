package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// fakeBackend is an in-memory Backend for session tests
type fakeBackend struct {
	isTTY   bool
	width   int
	height  int
	out     bytes.Buffer
	handler func(width, height int)

	initCalled bool
	finiCalled bool
}

func (b *fakeBackend) Init() error {
	b.initCalled = true
	return nil
}

func (b *fakeBackend) Fini() {
	b.finiCalled = true
}

func (b *fakeBackend) IsTerminal() bool {
	return b.isTTY
}

func (b *fakeBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *fakeBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *fakeBackend) SetResizeHandler(handler func(width, height int)) {
	b.handler = handler
}

// TestInitNotInteractive verifies a non-terminal stream fails fast with no
// escape output
func TestInitNotInteractive(t *testing.T) {
	b := &fakeBackend{isTTY: false, width: 80, height: 24}
	s := NewWithBackend(b, ColorModeTrueColor)

	err := s.Init()
	if !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("Init error %v, expected ErrNotInteractive", err)
	}
	if b.out.Len() != 0 {
		t.Errorf("escape output written to a non-terminal: %q", b.out.String())
	}
	if b.initCalled {
		t.Error("backend initialized for a non-terminal stream")
	}
}

// TestInitAcquiresSession verifies setup sequences and state
func TestInitAcquiresSession(t *testing.T) {
	b := &fakeBackend{isTTY: true, width: 80, height: 24}
	s := NewWithBackend(b, ColorModeTrueColor)

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	out := b.out.String()
	for seq, name := range map[string]string{
		"\x1b[?1049h": "alt screen enter",
		"\x1b[?25l":   "cursor hide",
		"\x1b[?7l":    "auto-wrap off",
		"\x1b[2J":     "clear",
	} {
		if !strings.Contains(out, seq) {
			t.Errorf("setup output missing %s", name)
		}
	}
	if !b.initCalled {
		t.Error("backend not initialized")
	}
	if b.handler == nil {
		t.Error("resize handler not installed")
	}
}

// TestFiniRestoresSession verifies teardown sequences and idempotence
func TestFiniRestoresSession(t *testing.T) {
	b := &fakeBackend{isTTY: true, width: 80, height: 24}
	s := NewWithBackend(b, ColorModeTrueColor)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	b.out.Reset()
	s.Fini()

	out := b.out.String()
	for seq, name := range map[string]string{
		"\x1b[?25h":   "cursor show",
		"\x1b[?1049l": "alt screen exit",
		"\x1b[?7h":    "auto-wrap on",
		"\x1b[0m":     "attribute reset",
	} {
		if !strings.Contains(out, seq) {
			t.Errorf("teardown output missing %s", name)
		}
	}
	if !b.finiCalled {
		t.Error("backend not finalized")
	}

	// Repeated Fini and post-Fini writes are no-ops
	b.out.Reset()
	s.Fini()
	if _, err := s.Write([]byte("frame")); err != nil {
		t.Fatal(err)
	}
	if b.out.Len() != 0 {
		t.Errorf("output after Fini: %q", b.out.String())
	}
}

// TestResizeLatestWins verifies a signal burst leaves only the newest size
// pending
func TestResizeLatestWins(t *testing.T) {
	b := &fakeBackend{isTTY: true, width: 80, height: 24}
	s := NewWithBackend(b, ColorModeTrueColor)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	b.handler(100, 40)
	b.handler(120, 50)

	select {
	case ev := <-s.ResizeChan():
		if ev.Width != 120 || ev.Height != 50 {
			t.Errorf("pending resize %dx%d, expected 120x50", ev.Width, ev.Height)
		}
	default:
		t.Fatal("no resize event pending")
	}

	select {
	case ev := <-s.ResizeChan():
		t.Errorf("stale resize event %dx%d still queued", ev.Width, ev.Height)
	default:
	}
}
