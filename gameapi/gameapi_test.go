package gameapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrsteele09/go-gamehub-client/gameapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/notify/notifyfakes"
	"github.com/stretchr/testify/require"
)

func TestListEncodesQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "rpg", q.Get("category"))
		require.Equal(t, "-rating", q.Get("ordering"))
		json.NewEncoder(w).Encode(gateway.Page[gameapi.Game]{
			Count:   1,
			Results: []gameapi.Game{{ID: 10, Name: "Elden Ring", Category: "rpg"}},
		})
	}))
	defer ts.Close()

	api := gameapi.New(gateway.New(ts.URL, notifyfakes.NewRecorder()))

	page, err := api.List(context.Background(), gameapi.Query{Page: 2, Category: "rpg", Ordering: "-rating"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Count)
	require.Equal(t, "Elden Ring", page.Results[0].Name)
}

func TestLatestOrdersByReleaseDate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "-release_date", r.URL.Query().Get("ordering"))
		json.NewEncoder(w).Encode(gateway.Page[gameapi.Game]{})
	}))
	defer ts.Close()

	api := gameapi.New(gateway.New(ts.URL, notifyfakes.NewRecorder()))
	_, err := api.Latest(context.Background(), gameapi.Query{})
	require.NoError(t, err)
}

func TestDetailNotFoundStaysSilent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	notifier := notifyfakes.NewRecorder()
	api := gameapi.New(gateway.New(ts.URL, notifier))

	_, err := api.Detail(context.Background(), 404)
	require.Error(t, err)
	require.Equal(t, gateway.KindNotFound, gateway.KindOf(err))
	require.Empty(t, notifier.All())
}

func TestUploadScreenshot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/5/upload_screenshot/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		require.Equal(t, "boss-fight.png", header.Filename)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(gameapi.Screenshot{ID: 3, Image: "/media/screenshots/3.png"})
	}))
	defer ts.Close()

	api := gameapi.New(gateway.New(ts.URL, notifyfakes.NewRecorder()))

	shot, err := api.UploadScreenshot(context.Background(), 5, "boss-fight.png", strings.NewReader("png"))
	require.NoError(t, err)
	require.Equal(t, int64(3), shot.ID)
}
