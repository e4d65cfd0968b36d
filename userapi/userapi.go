// Package userapi wraps the auth and user endpoints. It implements the
// session store's backend.
package userapi

import (
	"context"
	"io"
	"net/url"

	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/session"
	"github.com/jrsteele09/go-gamehub-client/users"
	"github.com/pkg/errors"
)

// API calls the /auth/ and /users/ endpoints through the gateway.
type API struct {
	gw *gateway.Client
}

var _ session.AuthBackend = (*API)(nil)

func New(gw *gateway.Client) *API {
	return &API{gw: gw}
}

// Login exchanges credentials for a token pair.
func (a *API) Login(ctx context.Context, form users.LoginForm) (session.TokenPair, error) {
	var pair session.TokenPair
	if err := a.gw.Post(ctx, "/auth/login/", form, &pair); err != nil {
		return session.TokenPair{}, errors.Wrap(err, "[API.Login]")
	}
	return pair, nil
}

// Refresh exchanges a refresh token for a new access token.
func (a *API) Refresh(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refresh": refreshToken}
	var resp struct {
		Access string `json:"access"`
	}
	if err := a.gw.Post(ctx, "/auth/refresh/", body, &resp); err != nil {
		return "", errors.Wrap(err, "[API.Refresh]")
	}
	return resp.Access, nil
}

// CurrentUser fetches the authenticated identity.
func (a *API) CurrentUser(ctx context.Context) (*users.Identity, error) {
	var identity users.Identity
	if err := a.gw.Get(ctx, "/users/me/", nil, &identity); err != nil {
		return nil, errors.Wrap(err, "[API.CurrentUser]")
	}
	return &identity, nil
}

// Register creates a new account.
func (a *API) Register(ctx context.Context, form users.RegisterForm) error {
	if err := a.gw.Post(ctx, "/users/", form, nil); err != nil {
		return errors.Wrap(err, "[API.Register]")
	}
	return nil
}

// UpdateProfile patches the authenticated user's profile and returns the
// updated identity.
func (a *API) UpdateProfile(ctx context.Context, patch users.ProfilePatch) (*users.Identity, error) {
	var identity users.Identity
	if err := a.gw.Patch(ctx, "/users/me/", patch, &identity); err != nil {
		return nil, errors.Wrap(err, "[API.UpdateProfile]")
	}
	return &identity, nil
}

// ChangePassword changes the authenticated user's password.
func (a *API) ChangePassword(ctx context.Context, change users.PasswordChange) error {
	if err := a.gw.Post(ctx, "/users/change-password/", change, nil); err != nil {
		return errors.Wrap(err, "[API.ChangePassword]")
	}
	return nil
}

// Operations lists the user's operation log.
func (a *API) Operations(ctx context.Context, params url.Values) (gateway.Page[users.Operation], error) {
	var page gateway.Page[users.Operation]
	if err := a.gw.Get(ctx, "/users/operations/", params, &page); err != nil {
		return gateway.Page[users.Operation]{}, errors.Wrap(err, "[API.Operations]")
	}
	return page, nil
}

// UploadAvatar uploads a new avatar image.
func (a *API) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*users.Identity, error) {
	var identity users.Identity
	parts := []gateway.FilePart{{Field: "avatar", Filename: filename, Reader: file}}
	if err := a.gw.PostMultipart(ctx, "/users/upload-avatar/", nil, parts, &identity); err != nil {
		return nil, errors.Wrap(err, "[API.UploadAvatar]")
	}
	return &identity, nil
}
