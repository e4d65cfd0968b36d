// Package notify is the user-visible signal surface. The gateway and guard
// report session expiry, permission and validation problems here; the
// embedding application decides how to present them.
package notify

import "github.com/rs/zerolog"

// Notifier receives user-visible messages.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Log is a Notifier that writes messages to a zerolog logger. It is the
// default for headless use (CLI, tests against a live backend).
type Log struct {
	Logger zerolog.Logger
}

var _ Notifier = Log{}

func (l Log) Success(msg string) { l.Logger.Info().Msg(msg) }
func (l Log) Warning(msg string) { l.Logger.Warn().Msg(msg) }
func (l Log) Error(msg string)   { l.Logger.Error().Msg(msg) }

// Nop discards every message.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) Success(string) {}
func (Nop) Warning(string) {}
func (Nop) Error(string)   {}
