package terminal

// Backend abstracts platform-specific terminal operations, allowing the
// session and scheduler to run against a fake terminal in tests.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	// IsTerminal reports whether the output stream is an interactive terminal.
	IsTerminal() bool
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Callbacks
	// SetResizeHandler registers a callback for terminal resize events.
	SetResizeHandler(handler func(width, height int))
}
