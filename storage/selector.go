package storage

import (
	"github.com/rs/zerolog"
)

// RememberKey is the durable flag that records the user's remember-me
// choice. It lives outside the session blob because it governs where future
// credentials are stored, so it must survive logout.
const RememberKey = "login_remember"

const rememberEnabled = "true"

// ScopeKind identifies which store a write lands in.
type ScopeKind string

const (
	ScopeDurable ScopeKind = "durable"
	ScopeSession ScopeKind = "session"
)

// Selector routes reads and writes between the durable and session scopes
// based on the remember-me preference. Storage failures are logged and
// swallowed: persistence is best-effort and in-memory session state stays
// authoritative for the life of the process.
type Selector struct {
	durable Store
	session Store
	log     zerolog.Logger
}

// NewSelector creates a Selector over the two scopes.
func NewSelector(durable, session Store, log zerolog.Logger) *Selector {
	return &Selector{
		durable: durable,
		session: session,
		log:     log,
	}
}

// SetRemember sets the durable remember-me flag. Disabling removes the flag
// entirely; absence means false.
func (s *Selector) SetRemember(enabled bool) {
	if enabled {
		if err := s.durable.Set(RememberKey, rememberEnabled); err != nil {
			s.log.Error().Err(err).Msg("failed to persist remember flag")
		}
		return
	}
	if err := s.durable.Delete(RememberKey); err != nil {
		s.log.Error().Err(err).Msg("failed to clear remember flag")
	}
}

// Remember reports the current remember-me preference.
func (s *Selector) Remember() bool {
	v, ok := s.durable.Get(RememberKey)
	return ok && v == rememberEnabled
}

// Scope returns the scope new writes currently land in.
func (s *Selector) Scope() ScopeKind {
	if s.Remember() {
		return ScopeDurable
	}
	return ScopeSession
}

// Write stores value under key in the currently selected scope only.
func (s *Selector) Write(key, value string) {
	var err error
	switch s.Scope() {
	case ScopeDurable:
		err = s.durable.Set(key, value)
	default:
		err = s.session.Set(key, value)
	}
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("storage write failed")
	}
}

// Read looks key up in the durable scope first, then falls back to the
// session scope. The dual read is required because the remember flag can be
// toggled between a write and a later read.
func (s *Selector) Read(key string) (string, bool) {
	if v, ok := s.durable.Get(key); ok && v != "" {
		return v, true
	}
	if v, ok := s.session.Get(key); ok && v != "" {
		return v, true
	}
	return "", false
}

// Erase removes key from both scopes unconditionally, so logout never
// leaves stale credentials in whichever scope was not currently active.
func (s *Selector) Erase(key string) {
	if err := s.durable.Delete(key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("durable delete failed")
	}
	if err := s.session.Delete(key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("session delete failed")
	}
}
