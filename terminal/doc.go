// Package terminal provides direct ANSI terminal control for the animation
// session.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Raw mode, alternate screen and cursor visibility as one session resource
//   - SIGWINCH resize detection with latest-wins delivery
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
