package analyticsapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-gamehub-client/analyticsapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/notify/notifyfakes"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, handler http.Handler) *analyticsapi.API {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return analyticsapi.New(gateway.New(ts.URL, notifyfakes.NewRecorder()))
}

func TestOverviewEncodesDays(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /analytics/overview/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "7", r.URL.Query().Get("days"))
		json.NewEncoder(w).Encode(analyticsapi.Overview{
			Dates: []string{"2026-08-24", "2026-08-25"},
			Series: []analyticsapi.Series{
				{Name: "downloads", Data: []float64{10, 12}},
			},
		})
	})

	api := newAPI(t, mux)
	overview, err := api.Overview(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, overview.Dates, 2)
	require.Equal(t, "downloads", overview.Series[0].Name)
}

func TestOverviewOmitsDaysWhenZero(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /analytics/overview/", func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("days"))
		json.NewEncoder(w).Encode(analyticsapi.Overview{})
	})

	api := newAPI(t, mux)
	_, err := api.Overview(context.Background(), 0)
	require.NoError(t, err)
}

func TestPublisherMetrics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /analytics/publisher/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "4", r.URL.Query().Get("publisher"))
		json.NewEncoder(w).Encode(analyticsapi.PublisherAnalytics{
			Publisher: analyticsapi.PublisherRef{ID: 4, Name: "Team Cherry"},
			Summary:   analyticsapi.PublisherSummary{TotalGames: 2, AvgRating: 4.8},
			Games: []analyticsapi.PublisherGameMetrics{
				{Name: "Hollow Knight", Downloads: 90000, Rating: 4.9},
			},
		})
	})

	api := newAPI(t, mux)
	analytics, err := api.Publisher(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "Team Cherry", analytics.Publisher.Name)
	require.Equal(t, 2, analytics.Summary.TotalGames)
	require.Len(t, analytics.Games, 1)
}

func TestHeatmap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /analytics/heatmap/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(analyticsapi.Heatmap{
			Categories: []string{"rpg", "action"},
			Values:     []float64{81.5, 64.2},
		})
	})

	api := newAPI(t, mux)
	heatmap, err := api.Heatmap(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"rpg", "action"}, heatmap.Categories)
	require.InDelta(t, 81.5, heatmap.Values[0], 0.001)
}
