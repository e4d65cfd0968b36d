package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/notify/notifyfakes"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) AccessToken() string { return s.token }

type expiryRecorder struct {
	calls int
}

func (e *expiryRecorder) SessionExpired() { e.calls++ }

func TestGetUnwrapsSuccessBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/1/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"id":1,"name":"Hollow Knight"}`))
	}))
	defer ts.Close()

	client := gateway.New(ts.URL, notifyfakes.NewRecorder())

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/games/1/", nil, &out)
	require.NoError(t, err)
	require.Equal(t, 1, out.ID)
	require.Equal(t, "Hollow Knight", out.Name)
}

func TestBearerInjectedWhenTokenPresent(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := gateway.New(ts.URL, notifyfakes.NewRecorder(),
		gateway.WithTokenSource(staticTokens{token: "tok-123"}))

	require.NoError(t, client.Get(context.Background(), "/users/me/", nil, nil))
	require.Equal(t, "Bearer tok-123", got)
}

func TestAnonymousRequestCarriesNoBearer(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := gateway.New(ts.URL, notifyfakes.NewRecorder(),
		gateway.WithTokenSource(staticTokens{}))

	require.NoError(t, client.Get(context.Background(), "/games/", nil, nil))
	require.Empty(t, got)
}

func TestAuthenticated401ExpiresSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	notifier := notifyfakes.NewRecorder()
	expiry := &expiryRecorder{}
	client := gateway.New(ts.URL, notifier,
		gateway.WithTokenSource(staticTokens{token: "stale"}),
		gateway.WithSessionHandler(expiry))

	err := client.Get(context.Background(), "/users/me/", nil, nil)
	require.Error(t, err)
	require.Equal(t, gateway.KindSessionExpired, gateway.KindOf(err))
	require.Equal(t, 1, expiry.calls)
	require.Len(t, notifier.Errors, 1)
	require.Contains(t, notifier.Errors[0], "session has expired")
}

func TestAnonymous401IsSilent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	notifier := notifyfakes.NewRecorder()
	expiry := &expiryRecorder{}
	client := gateway.New(ts.URL, notifier,
		gateway.WithTokenSource(staticTokens{}),
		gateway.WithSessionHandler(expiry))

	err := client.Get(context.Background(), "/users/me/", nil, nil)
	require.Error(t, err)
	require.Equal(t, gateway.KindAuthRejected, gateway.KindOf(err))
	require.Zero(t, expiry.calls)
	require.Empty(t, notifier.All())
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    gateway.Kind
		wantNotices int
		wantMessage string
	}{
		{
			name:        "403 notifies forbidden",
			status:      http.StatusForbidden,
			wantKind:    gateway.KindForbidden,
			wantNotices: 1,
			wantMessage: "permission",
		},
		{
			name:     "404 stays silent",
			status:   http.StatusNotFound,
			wantKind: gateway.KindNotFound,
		},
		{
			name:        "500 notifies server error",
			status:      http.StatusInternalServerError,
			wantKind:    gateway.KindServer,
			wantNotices: 1,
			wantMessage: "Server error",
		},
		{
			name:        "400 surfaces first field error",
			status:      http.StatusBadRequest,
			body:        `{"username":["username already taken"],"email":["invalid email"]}`,
			wantKind:    gateway.KindValidation,
			wantNotices: 1,
			wantMessage: "invalid email",
		},
		{
			name:        "400 with a string field",
			status:      http.StatusBadRequest,
			body:        `{"password":"too short"}`,
			wantKind:    gateway.KindValidation,
			wantNotices: 1,
			wantMessage: "too short",
		},
		{
			name:        "400 without extractable fields",
			status:      http.StatusBadRequest,
			body:        `"bad"`,
			wantKind:    gateway.KindValidation,
			wantNotices: 1,
			wantMessage: "Invalid request parameters",
		},
		{
			name:        "other status surfaces detail",
			status:      http.StatusTeapot,
			body:        `{"detail":"i'm a teapot"}`,
			wantKind:    gateway.KindUnknown,
			wantNotices: 1,
			wantMessage: "teapot",
		},
		{
			name:     "other status without message is silent",
			status:   http.StatusBadGateway,
			wantKind: gateway.KindUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				if tc.body != "" {
					w.Write([]byte(tc.body))
				}
			}))
			defer ts.Close()

			notifier := notifyfakes.NewRecorder()
			client := gateway.New(ts.URL, notifier)

			err := client.Get(context.Background(), "/probe/", nil, nil)
			require.Error(t, err)
			require.Equal(t, tc.wantKind, gateway.KindOf(err))
			require.Len(t, notifier.All(), tc.wantNotices)
			if tc.wantMessage != "" && tc.wantNotices > 0 {
				require.Contains(t, notifier.Errors[0], tc.wantMessage)
			}
		})
	}
}

func TestValidationErrorCarriesFieldErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"username":["taken"],"message":"invalid form"}`))
	}))
	defer ts.Close()

	client := gateway.New(ts.URL, notifyfakes.NewRecorder())

	err := client.Post(context.Background(), "/users/", map[string]string{"username": "x"}, nil)
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, map[string][]string{"username": {"taken"}}, apiErr.FieldErrors)
}

func TestNetworkFailureNotifies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse all connections

	notifier := notifyfakes.NewRecorder()
	client := gateway.New(ts.URL, notifier)

	err := client.Get(context.Background(), "/games/", nil, nil)
	require.Error(t, err)
	require.Equal(t, gateway.KindNetwork, gateway.KindOf(err))
	require.Len(t, notifier.Errors, 1)
	require.Contains(t, notifier.Errors[0], "Network error")
}

func TestQueryParamsEncoded(t *testing.T) {
	var got url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := gateway.New(ts.URL, notifyfakes.NewRecorder())
	params := url.Values{}
	params.Set("search", "zelda")
	params.Set("page", "2")

	var out []any
	require.NoError(t, client.Get(context.Background(), "/games/", params, &out))
	require.Equal(t, "zelda", got.Get("search"))
	require.Equal(t, "2", got.Get("page"))
}

func TestPostMultipart(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "image", r.FormValue("media_type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "shot.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "png-bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9}`))
	}))
	defer ts.Close()

	client := gateway.New(ts.URL, notifyfakes.NewRecorder())

	var out struct {
		ID int `json:"id"`
	}
	err := client.PostMultipart(context.Background(), "/content/media/",
		map[string]string{"media_type": "image"},
		[]gateway.FilePart{{Field: "file", Filename: "shot.png", Reader: strings.NewReader("png-bytes")}},
		&out)
	require.NoError(t, err)
	require.Equal(t, 9, out.ID)
}
