// Package platform wires the client together: storage scopes, session
// store, gateway, feature APIs, and the navigation guard, constructed once
// per process with a single well-defined lifecycle.
package platform

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jrsteele09/go-gamehub-client/adminapi"
	"github.com/jrsteele09/go-gamehub-client/analyticsapi"
	"github.com/jrsteele09/go-gamehub-client/communityapi"
	"github.com/jrsteele09/go-gamehub-client/contentapi"
	"github.com/jrsteele09/go-gamehub-client/gameapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/guard"
	"github.com/jrsteele09/go-gamehub-client/internal/config"
	"github.com/jrsteele09/go-gamehub-client/media"
	"github.com/jrsteele09/go-gamehub-client/notify"
	"github.com/jrsteele09/go-gamehub-client/session"
	"github.com/jrsteele09/go-gamehub-client/storage"
	"github.com/jrsteele09/go-gamehub-client/userapi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const stateFileName = "state.json"

// Platform is the assembled client.
type Platform struct {
	Config    config.Config
	Gateway   *gateway.Client
	Session   *session.Store
	Guard     *guard.Guard
	Users     *userapi.API
	Games     *gameapi.API
	Community *communityapi.API
	Content   *contentapi.API
	Admin     *adminapi.API
	Analytics *analyticsapi.API
	Media     media.Resolver
}

// Option configures the platform wiring.
type Option func(*settings)

type settings struct {
	notifier  notify.Notifier
	navigator session.Navigator
	logger    zerolog.Logger
	durable   storage.Store
	ephemeral storage.Store
}

// WithNotifier replaces the default log-backed notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(s *settings) { s.notifier = n }
}

// WithNavigator wires the navigation surface used by the session store.
func WithNavigator(n session.Navigator) Option {
	return func(s *settings) { s.navigator = n }
}

// WithLogger sets the logger shared by all components.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.logger = log }
}

// WithStores replaces the storage scopes (primarily for tests).
func WithStores(durable, ephemeral storage.Store) Option {
	return func(s *settings) {
		s.durable = durable
		s.ephemeral = ephemeral
	}
}

// New assembles the platform client from configuration.
func New(cfg config.Config, options ...Option) (*Platform, error) {
	s := &settings{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.Log{Logger: s.logger}
	}

	if s.durable == nil {
		statePath, err := stateFilePath(cfg)
		if err != nil {
			return nil, err
		}
		durable, err := storage.NewFileStore(statePath)
		if err != nil {
			return nil, errors.Wrap(err, "[platform.New] open durable store")
		}
		s.durable = durable
	}
	if s.ephemeral == nil {
		s.ephemeral = storage.NewMemoryStore()
	}
	selector := storage.NewSelector(s.durable, s.ephemeral, s.logger)

	// The gateway consults the session store through late-bound hooks: the
	// store needs the user API, which needs the gateway, so the store is
	// assigned after the gateway exists. Wiring happens once, before any
	// request can be in flight.
	var store *session.Store
	gw := gateway.New(cfg.APIBaseURL, s.notifier,
		gateway.WithTimeout(cfg.RequestTimeout),
		gateway.WithLogger(s.logger),
		gateway.WithTokenSource(tokenSourceFunc(func() string {
			if store == nil {
				return ""
			}
			return store.AccessToken()
		})),
		gateway.WithSessionHandler(sessionHandlerFunc(func() {
			if store != nil {
				store.SessionExpired()
			}
		})),
	)

	usersAPI := userapi.New(gw)

	storeOptions := []session.Option{session.WithLogger(s.logger)}
	if s.navigator != nil {
		storeOptions = append(storeOptions, session.WithNavigator(s.navigator))
	}
	store, err := session.NewStore(usersAPI, selector, storeOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "[platform.New] session store")
	}

	return &Platform{
		Config:    cfg,
		Gateway:   gw,
		Session:   store,
		Guard:     guard.New(store, s.notifier),
		Users:     usersAPI,
		Games:     gameapi.New(gw),
		Community: communityapi.New(gw),
		Content:   contentapi.New(gw),
		Admin:     adminapi.New(gw),
		Analytics: analyticsapi.New(gw),
		Media:     media.NewResolver(cfg.ServerURL),
	}, nil
}

// Boot restores any persisted session. It is safe to call when nothing was
// persisted; the client simply starts anonymous.
func (p *Platform) Boot(ctx context.Context) session.Result {
	return p.Session.Rehydrate(ctx)
}

type tokenSourceFunc func() string

func (f tokenSourceFunc) AccessToken() string { return f() }

type sessionHandlerFunc func()

func (f sessionHandlerFunc) SessionExpired() { f() }

func stateFilePath(cfg config.Config) (string, error) {
	dir := cfg.StateDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", errors.Wrap(err, "[platform.stateFilePath] os.UserConfigDir")
		}
		dir = filepath.Join(base, "gamehub")
	}
	return filepath.Join(dir, stateFileName), nil
}
