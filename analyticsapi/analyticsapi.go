// Package analyticsapi wraps the analytics endpoints behind the publisher
// and admin dashboards: the platform overview trend, per-publisher metrics,
// and the category heat distribution.
package analyticsapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/pkg/errors"
)

// Series is one named line of a trend chart.
type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// Overview is the platform-wide daily trend: downloads, follows, reviews,
// and average heat per day.
type Overview struct {
	Dates  []string `json:"dates"`
	Series []Series `json:"series"`
}

// PublisherRef identifies the publisher a metrics payload belongs to.
type PublisherRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PublisherSummary aggregates a publisher's catalogue.
type PublisherSummary struct {
	TotalGames     int     `json:"total_games"`
	TotalDownloads int64   `json:"total_downloads"`
	TotalFollows   int64   `json:"total_follows"`
	AvgRating      float64 `json:"avg_rating"`
	AvgHeat        float64 `json:"avg_heat"`
}

// PublisherGameMetrics is one game's row in the publisher dashboard.
type PublisherGameMetrics struct {
	Name      string  `json:"name"`
	Downloads int64   `json:"downloads"`
	Follows   int64   `json:"follows"`
	Rating    float64 `json:"rating"`
	Heat      float64 `json:"heat"`
}

// PublisherAnalytics is the full per-publisher metrics payload.
type PublisherAnalytics struct {
	Publisher PublisherRef           `json:"publisher"`
	Summary   PublisherSummary       `json:"summary"`
	Games     []PublisherGameMetrics `json:"games"`
}

// Heatmap is the category heat distribution.
type Heatmap struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

// API calls the /analytics/ endpoints through the gateway.
type API struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *API {
	return &API{gw: gw}
}

// Overview fetches the platform trend over the last days days. Zero means
// the backend default window.
func (a *API) Overview(ctx context.Context, days int) (*Overview, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	var overview Overview
	if err := a.gw.Get(ctx, "/analytics/overview/", params, &overview); err != nil {
		return nil, errors.Wrap(err, "[API.Overview]")
	}
	return &overview, nil
}

// Publisher fetches one publisher's dashboard metrics.
func (a *API) Publisher(ctx context.Context, publisherID int64) (*PublisherAnalytics, error) {
	params := url.Values{}
	params.Set("publisher", strconv.FormatInt(publisherID, 10))
	var analytics PublisherAnalytics
	if err := a.gw.Get(ctx, "/analytics/publisher/", params, &analytics); err != nil {
		return nil, errors.Wrap(err, "[API.Publisher]")
	}
	return &analytics, nil
}

// Heatmap fetches the category heat distribution.
func (a *API) Heatmap(ctx context.Context) (*Heatmap, error) {
	var heatmap Heatmap
	if err := a.gw.Get(ctx, "/analytics/heatmap/", nil, &heatmap); err != nil {
		return nil, errors.Wrap(err, "[API.Heatmap]")
	}
	return &heatmap, nil
}
