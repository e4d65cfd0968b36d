package sessionfakes

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-gamehub-client/session"
	"github.com/jrsteele09/go-gamehub-client/users"
	"github.com/pkg/errors"
)

var _ session.AuthBackend = (*FakeAuthBackend)(nil)

// FakeAuthBackend is a configurable in-memory AuthBackend. Unconfigured
// methods fail, and every call is counted.
type FakeAuthBackend struct {
	mu sync.Mutex

	LoginFunc       func(ctx context.Context, form users.LoginForm) (session.TokenPair, error)
	RefreshFunc     func(ctx context.Context, refreshToken string) (string, error)
	CurrentUserFunc func(ctx context.Context) (*users.Identity, error)
	RegisterFunc    func(ctx context.Context, form users.RegisterForm) error

	LoginCalls       int
	RefreshCalls     int
	CurrentUserCalls int
	RegisterCalls    int
}

func NewFakeAuthBackend() *FakeAuthBackend {
	return &FakeAuthBackend{}
}

func (f *FakeAuthBackend) Login(ctx context.Context, form users.LoginForm) (session.TokenPair, error) {
	f.mu.Lock()
	f.LoginCalls++
	fn := f.LoginFunc
	f.mu.Unlock()
	if fn == nil {
		return session.TokenPair{}, errors.New("login not configured")
	}
	return fn(ctx, form)
}

func (f *FakeAuthBackend) Refresh(ctx context.Context, refreshToken string) (string, error) {
	f.mu.Lock()
	f.RefreshCalls++
	fn := f.RefreshFunc
	f.mu.Unlock()
	if fn == nil {
		return "", errors.New("refresh not configured")
	}
	return fn(ctx, refreshToken)
}

func (f *FakeAuthBackend) CurrentUser(ctx context.Context) (*users.Identity, error) {
	f.mu.Lock()
	f.CurrentUserCalls++
	fn := f.CurrentUserFunc
	f.mu.Unlock()
	if fn == nil {
		return nil, errors.New("current user not configured")
	}
	return fn(ctx)
}

func (f *FakeAuthBackend) Register(ctx context.Context, form users.RegisterForm) error {
	f.mu.Lock()
	f.RegisterCalls++
	fn := f.RegisterFunc
	f.mu.Unlock()
	if fn == nil {
		return errors.New("register not configured")
	}
	return fn(ctx, form)
}

var _ session.Navigator = (*FakeNavigator)(nil)

// FakeNavigator records navigation targets.
type FakeNavigator struct {
	mu    sync.Mutex
	Paths []string
}

func NewFakeNavigator() *FakeNavigator {
	return &FakeNavigator{}
}

func (n *FakeNavigator) NavigateTo(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Paths = append(n.Paths, path)
}
