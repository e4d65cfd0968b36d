// Package session owns the authentication lifecycle: the credential pair,
// the authenticated identity, and the transitions between anonymous and
// authenticated state. State is persisted through the storage selector so a
// session can be restored on the next start.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jrsteele09/go-gamehub-client/routes"
	"github.com/jrsteele09/go-gamehub-client/storage"
	"github.com/jrsteele09/go-gamehub-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// StateKey is the persistence key for the session blob. Only the credential
// pair and the identity are persisted; ephemeral flags never are.
const StateKey = "game-platform-user"

// State is the session lifecycle state.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateRefreshing     State = "refreshing"
)

// Credential is the access/refresh token pair. The empty string denotes an
// absent token.
type Credential struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenPair is the response of the login endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthBackend is the remote auth surface the store drives. Implemented by
// the userapi package over the gateway.
type AuthBackend interface {
	Login(ctx context.Context, form users.LoginForm) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	CurrentUser(ctx context.Context) (*users.Identity, error)
	Register(ctx context.Context, form users.RegisterForm) error
}

// Navigator performs route transitions on behalf of the store (logout lands
// on the login page).
type Navigator interface {
	NavigateTo(path string)
}

// Result is the structured outcome of a session operation. Session-state
// failures are reported here rather than as errors so callers can branch
// without exception handling.
type Result struct {
	Success bool
	Message string
}

var (
	ErrNoRefreshToken = errors.New("no refresh token")
	ErrSuperseded     = errors.New("operation superseded by logout")
)

type persistedState struct {
	Access   string          `json:"access"`
	Refresh  string          `json:"refresh"`
	Identity *users.Identity `json:"identity,omitempty"`
}

// Store holds the current session. It is safe for concurrent use; a
// generation counter makes sure an in-flight login or refresh whose result
// arrives after a logout cannot write into the cleared state.
type Store struct {
	mu         sync.RWMutex
	state      State
	cred       Credential
	identity   *users.Identity
	generation uint64

	backend   AuthBackend
	selector  *storage.Selector
	navigator Navigator
	log       zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithNavigator wires the navigation surface used on logout.
func WithNavigator(n Navigator) Option {
	return func(s *Store) { s.navigator = n }
}

// WithLogger sets the store logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore creates a session store over the given backend and persistence
// selector.
func NewStore(backend AuthBackend, selector *storage.Selector, options ...Option) (*Store, error) {
	if backend == nil {
		return nil, errors.New("[NewStore] backend is required")
	}
	if selector == nil {
		return nil, errors.New("[NewStore] selector is required")
	}

	s := &Store{
		state:    StateAnonymous,
		backend:  backend,
		selector: selector,
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Login authenticates with the backend and, on success, fetches the
// identity. remember selects where this and all subsequent session writes
// are persisted. The result is successful only once both the credential and
// the identity are in place.
func (s *Store) Login(ctx context.Context, username, password string, remember bool) Result {
	s.mu.Lock()
	s.state = StateAuthenticating
	gen := s.generation
	s.mu.Unlock()

	pair, err := s.backend.Login(ctx, users.LoginForm{Username: username, Password: password})
	if err != nil {
		s.mu.Lock()
		if gen == s.generation {
			s.state = StateAnonymous
		}
		s.mu.Unlock()
		return Result{Message: err.Error()}
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return Result{Message: ErrSuperseded.Error()}
	}
	// The preference write happens before the credential write, so a
	// concurrent read always observes a consistent (preference, scope)
	// pairing for this login.
	s.selector.SetRemember(remember)
	s.cred = Credential{Access: pair.Access, Refresh: pair.Refresh}
	s.persistLocked()
	s.mu.Unlock()

	// Credential is retained even if the identity fetch fails: the session
	// is not reported logged in until the identity resolves, and
	// FetchIdentity can be retried.
	if res := s.FetchIdentity(ctx); !res.Success {
		s.mu.Lock()
		if gen == s.generation {
			s.state = StateAnonymous
		}
		s.mu.Unlock()
		return Result{Message: res.Message}
	}

	s.mu.Lock()
	if gen == s.generation {
		s.state = StateAuthenticated
	}
	s.mu.Unlock()
	return Result{Success: true}
}

// Register creates an account. It never mutates session state.
func (s *Store) Register(ctx context.Context, form users.RegisterForm) Result {
	if err := s.backend.Register(ctx, form); err != nil {
		return Result{Message: err.Error()}
	}
	return Result{Success: true}
}

// FetchIdentity loads the current identity using the current credential. On
// failure the credential is left untouched; the caller decides what to do.
// An identity arriving after a logout superseded the fetch is discarded.
func (s *Store) FetchIdentity(ctx context.Context) Result {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	identity, err := s.backend.CurrentUser(ctx)
	if err != nil {
		return Result{Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return Result{Message: ErrSuperseded.Error()}
	}
	s.identity = identity
	if s.cred.Access != "" {
		s.state = StateAuthenticated
	}
	s.persistLocked()
	return Result{Success: true}
}

// RefreshToken exchanges the refresh token for a new access token. A missing
// refresh token fails immediately without a network call. Any backend
// failure is terminal: the session is logged out and never retried.
func (s *Store) RefreshToken(ctx context.Context) Result {
	s.mu.Lock()
	if s.cred.Refresh == "" {
		s.mu.Unlock()
		return Result{Message: ErrNoRefreshToken.Error()}
	}
	refresh := s.cred.Refresh
	gen := s.generation
	s.state = StateRefreshing
	s.mu.Unlock()

	access, err := s.backend.Refresh(ctx, refresh)
	if err != nil {
		s.mu.Lock()
		stale := gen != s.generation
		s.mu.Unlock()
		// A stale failure means logout already happened (or a new session
		// started); it must not clobber the current state.
		if !stale {
			s.Logout()
		}
		return Result{Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return Result{Message: ErrSuperseded.Error()}
	}
	s.cred.Access = access
	s.state = StateAuthenticated
	s.persistLocked()
	return Result{Success: true}
}

// Logout clears the credential and identity, erases the persisted session
// from both scopes, and navigates to the login page. Safe to call when
// already anonymous.
func (s *Store) Logout() {
	s.mu.Lock()
	s.generation++
	s.cred = Credential{}
	s.identity = nil
	s.state = StateAnonymous
	s.mu.Unlock()

	s.selector.Erase(StateKey)
	if s.navigator != nil {
		s.navigator.NavigateTo(routes.PathLogin)
	}
}

// SessionExpired implements the gateway's session handler: an authenticated
// request came back 401, so the credential is no longer valid.
func (s *Store) SessionExpired() {
	s.Logout()
}

// UpdateIdentity shallow-merges the patch into the current identity. No-op
// when no identity is present.
func (s *Store) UpdateIdentity(patch users.ProfilePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return
	}
	s.identity.Merge(patch)
	s.persistLocked()
}

// Rehydrate restores a previously persisted session. When the restored
// access token has already expired but a refresh token is present, one
// refresh is attempted; a failed refresh logs the session out.
func (s *Store) Rehydrate(ctx context.Context) Result {
	blob, ok := s.selector.Read(StateKey)
	if !ok {
		return Result{Message: "no persisted session"}
	}

	var saved persistedState
	if err := json.Unmarshal([]byte(blob), &saved); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt persisted session")
		s.selector.Erase(StateKey)
		return Result{Message: "persisted session corrupt"}
	}
	if saved.Access == "" {
		return Result{Message: "no persisted credential"}
	}

	s.mu.Lock()
	s.cred = Credential{Access: saved.Access, Refresh: saved.Refresh}
	s.identity = saved.Identity
	if s.identity != nil {
		s.state = StateAuthenticated
	}
	s.mu.Unlock()

	if accessTokenExpired(saved.Access) && saved.Refresh != "" {
		if res := s.RefreshToken(ctx); !res.Success {
			return res
		}
	}
	if s.Identity() == nil {
		return s.FetchIdentity(ctx)
	}
	return Result{Success: true}
}

// AccessToken implements the gateway's token source.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Access
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns a copy of the current identity, or nil when logged out.
func (s *Store) Identity() *users.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// IsLoggedIn holds iff both the access token and the identity are present.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Access != "" && s.identity != nil
}

// IsAdmin reports whether the current identity holds the admin role.
func (s *Store) IsAdmin() bool { return s.hasCapability(users.RoleAdmin) }

// IsCreator reports whether the current identity may act as a creator.
// Admin implies creator.
func (s *Store) IsCreator() bool { return s.hasCapability(users.RoleCreator) }

// IsPublisher reports whether the current identity may act as a publisher.
// Admin implies publisher.
func (s *Store) IsPublisher() bool { return s.hasCapability(users.RolePublisher) }

func (s *Store) hasCapability(role users.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return false
	}
	return s.identity.Role.HasCapability(role)
}

// persistLocked writes the persisted subset through the selector. Callers
// must hold the write lock.
func (s *Store) persistLocked() {
	data, err := json.Marshal(persistedState{
		Access:   s.cred.Access,
		Refresh:  s.cred.Refresh,
		Identity: s.identity,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal session state")
		return
	}
	s.selector.Write(StateKey, string(data))
}
