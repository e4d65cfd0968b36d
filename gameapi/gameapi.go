// Package gameapi wraps the game discovery and recommendation endpoints.
package gameapi

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/pkg/errors"
)

// API calls the /games/ and /recommend/ endpoints through the gateway.
type API struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *API {
	return &API{gw: gw}
}

func (q Query) values() url.Values {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Ordering != "" {
		params.Set("ordering", q.Ordering)
	}
	return params
}

// List fetches a page of games.
func (a *API) List(ctx context.Context, query Query) (gateway.Page[Game], error) {
	var page gateway.Page[Game]
	if err := a.gw.Get(ctx, "/games/", query.values(), &page); err != nil {
		return gateway.Page[Game]{}, errors.Wrap(err, "[API.List]")
	}
	return page, nil
}

// Search fetches games matching a keyword.
func (a *API) Search(ctx context.Context, keyword string, query Query) (gateway.Page[Game], error) {
	query.Search = keyword
	return a.List(ctx, query)
}

// Latest fetches games ordered by most recent release.
func (a *API) Latest(ctx context.Context, query Query) (gateway.Page[Game], error) {
	query.Ordering = "-release_date"
	return a.List(ctx, query)
}

// Detail fetches the full representation of one game.
func (a *API) Detail(ctx context.Context, id int64) (*Detail, error) {
	var detail Detail
	if err := a.gw.Get(ctx, fmt.Sprintf("/games/%d/", id), nil, &detail); err != nil {
		return nil, errors.Wrap(err, "[API.Detail]")
	}
	return &detail, nil
}

// Create registers a new game.
func (a *API) Create(ctx context.Context, form Form) (*Detail, error) {
	var detail Detail
	if err := a.gw.Post(ctx, "/games/", form, &detail); err != nil {
		return nil, errors.Wrap(err, "[API.Create]")
	}
	return &detail, nil
}

// Update patches an existing game.
func (a *API) Update(ctx context.Context, id int64, form Form) (*Detail, error) {
	var detail Detail
	if err := a.gw.Patch(ctx, fmt.Sprintf("/games/%d/", id), form, &detail); err != nil {
		return nil, errors.Wrap(err, "[API.Update]")
	}
	return &detail, nil
}

// PersonalRecommendations fetches the personalized recommendation feed.
// Requires an authenticated session.
func (a *API) PersonalRecommendations(ctx context.Context, params url.Values) ([]Game, error) {
	var games []Game
	if err := a.gw.Get(ctx, "/recommend/personal/", params, &games); err != nil {
		return nil, errors.Wrap(err, "[API.PersonalRecommendations]")
	}
	return games, nil
}

// HotGames fetches the popularity-ranked recommendation feed.
func (a *API) HotGames(ctx context.Context, params url.Values) ([]Game, error) {
	var games []Game
	if err := a.gw.Get(ctx, "/recommend/hot/", params, &games); err != nil {
		return nil, errors.Wrap(err, "[API.HotGames]")
	}
	return games, nil
}

// ToggleCollection collects or uncollects a game for the current user.
func (a *API) ToggleCollection(ctx context.Context, gameID int64) error {
	path := fmt.Sprintf("/games/%d/collect/", gameID)
	if err := a.gw.Post(ctx, path, nil, nil); err != nil {
		return errors.Wrap(err, "[API.ToggleCollection]")
	}
	return nil
}

// Collections lists the games the current user has collected.
func (a *API) Collections(ctx context.Context, params url.Values) (gateway.Page[Game], error) {
	var page gateway.Page[Game]
	if err := a.gw.Get(ctx, "/games/collections/", params, &page); err != nil {
		return gateway.Page[Game]{}, errors.Wrap(err, "[API.Collections]")
	}
	return page, nil
}

// SinglePlayerRankings fetches the imported external ranking feed.
func (a *API) SinglePlayerRankings(ctx context.Context, limit int, source string) ([]RankingEntry, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if source != "" {
		params.Set("source", source)
	}
	var entries []RankingEntry
	if err := a.gw.Get(ctx, "/games/single-player-rankings/", params, &entries); err != nil {
		return nil, errors.Wrap(err, "[API.SinglePlayerRankings]")
	}
	return entries, nil
}

// Tags lists all game tags.
func (a *API) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := a.gw.Get(ctx, "/games/tags/", nil, &tags); err != nil {
		return nil, errors.Wrap(err, "[API.Tags]")
	}
	return tags, nil
}

// Publishers lists all registered publishers.
func (a *API) Publishers(ctx context.Context) ([]Publisher, error) {
	var publishers []Publisher
	if err := a.gw.Get(ctx, "/games/publishers/", nil, &publishers); err != nil {
		return nil, errors.Wrap(err, "[API.Publishers]")
	}
	return publishers, nil
}

// UploadScreenshot attaches a screenshot image to a game.
func (a *API) UploadScreenshot(ctx context.Context, gameID int64, filename string, file io.Reader) (*Screenshot, error) {
	path := fmt.Sprintf("/games/%d/upload_screenshot/", gameID)
	parts := []gateway.FilePart{{Field: "image", Filename: filename, Reader: file}}
	var shot Screenshot
	if err := a.gw.PostMultipart(ctx, path, nil, parts, &shot); err != nil {
		return nil, errors.Wrap(err, "[API.UploadScreenshot]")
	}
	return &shot, nil
}

// Screenshots lists the screenshots of a game.
func (a *API) Screenshots(ctx context.Context, gameID int64) ([]Screenshot, error) {
	params := url.Values{}
	params.Set("game_id", strconv.FormatInt(gameID, 10))
	var shots []Screenshot
	if err := a.gw.Get(ctx, "/games/screenshots/", params, &shots); err != nil {
		return nil, errors.Wrap(err, "[API.Screenshots]")
	}
	return shots, nil
}

// DeleteScreenshot removes a screenshot.
func (a *API) DeleteScreenshot(ctx context.Context, screenshotID int64) error {
	path := fmt.Sprintf("/games/screenshots/%d/", screenshotID)
	if err := a.gw.Delete(ctx, path, nil); err != nil {
		return errors.Wrap(err, "[API.DeleteScreenshot]")
	}
	return nil
}

// UpdateScreenshot patches a screenshot's metadata.
func (a *API) UpdateScreenshot(ctx context.Context, screenshotID int64, shot Screenshot) (*Screenshot, error) {
	path := fmt.Sprintf("/games/screenshots/%d/", screenshotID)
	var updated Screenshot
	if err := a.gw.Patch(ctx, path, shot, &updated); err != nil {
		return nil, errors.Wrap(err, "[API.UpdateScreenshot]")
	}
	return &updated, nil
}
