// Package contentapi wraps the strategy guide and media asset endpoints.
package contentapi

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-gamehub-client/gameapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/users"
	"github.com/pkg/errors"
)

// Strategy is a published or pending strategy guide.
type Strategy struct {
	ID           int64          `json:"id"`
	Author       users.Identity `json:"author"`
	Game         gameapi.Game   `json:"game"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	CoverImage   string         `json:"cover_image,omitempty"`
	MediaAssets  []MediaAsset   `json:"media_assets,omitempty"`
	Status       string         `json:"status"`
	ViewCount    int            `json:"view_count"`
	LikeCount    int            `json:"like_count"`
	CollectCount int            `json:"collect_count"`
	CommentCount int            `json:"comment_count,omitempty"`
	IsCollected  bool           `json:"is_collected,omitempty"`
	IsLiked      bool           `json:"is_liked,omitempty"`
	PublishDate  string         `json:"publish_date,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

// Form creates or edits a strategy.
type Form struct {
	GameID      int64   `json:"game"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	CoverImage  string  `json:"cover_image,omitempty"`
	MediaAssets []int64 `json:"media_assets,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// MediaAsset is an uploaded image or video attached to a strategy.
type MediaAsset struct {
	ID         int64  `json:"id"`
	StrategyID int64  `json:"strategy"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Order      int    `json:"order,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Stats summarizes a strategy's creator analytics.
type Stats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Collects int `json:"collects"`
	Comments int `json:"comments"`
}

// Review is a moderation decision for a pending strategy.
type Review struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback,omitempty"`
}

// Incentive is one creator incentive application.
type Incentive struct {
	ID           int64           `json:"id"`
	Author       *users.Identity `json:"author,omitempty"`
	Period       string          `json:"period"`
	Exposure     int64           `json:"exposure"`
	Likes        int             `json:"likes"`
	Comments     int             `json:"comments"`
	PublishCount int             `json:"publish_count"`
	Status       string          `json:"status"`
	Reason       string          `json:"reason,omitempty"`
	RewardAmount float64         `json:"reward_amount"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// IncentiveStats is a creator's standing for one incentive period.
type IncentiveStats struct {
	Period            string     `json:"period"`
	Exposure          int64      `json:"exposure"`
	Likes             int        `json:"likes"`
	Comments          int        `json:"comments"`
	PublishCount      int        `json:"publish_count"`
	Eligible          bool       `json:"eligible"`
	EligibilityReason string     `json:"eligibility_reason"`
	LatestApplication *Incentive `json:"latest_application,omitempty"`
}

// API calls the /content/ endpoints through the gateway.
type API struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *API {
	return &API{gw: gw}
}

// Strategies fetches a page of strategies.
func (a *API) Strategies(ctx context.Context, params url.Values) (gateway.Page[Strategy], error) {
	var page gateway.Page[Strategy]
	if err := a.gw.Get(ctx, "/content/strategies/", params, &page); err != nil {
		return gateway.Page[Strategy]{}, errors.Wrap(err, "[API.Strategies]")
	}
	return page, nil
}

// Strategy fetches one strategy.
func (a *API) Strategy(ctx context.Context, id int64) (*Strategy, error) {
	var s Strategy
	if err := a.gw.Get(ctx, fmt.Sprintf("/content/strategies/%d/", id), nil, &s); err != nil {
		return nil, errors.Wrap(err, "[API.Strategy]")
	}
	return &s, nil
}

// MyStrategies fetches the authenticated creator's strategies.
func (a *API) MyStrategies(ctx context.Context, params url.Values) (gateway.Page[Strategy], error) {
	var page gateway.Page[Strategy]
	if err := a.gw.Get(ctx, "/content/strategies/mine/", params, &page); err != nil {
		return gateway.Page[Strategy]{}, errors.Wrap(err, "[API.MyStrategies]")
	}
	return page, nil
}

// PendingStrategies fetches strategies awaiting review. Admin only.
func (a *API) PendingStrategies(ctx context.Context, params url.Values) (gateway.Page[Strategy], error) {
	var page gateway.Page[Strategy]
	if err := a.gw.Get(ctx, "/content/strategies/pending/", params, &page); err != nil {
		return gateway.Page[Strategy]{}, errors.Wrap(err, "[API.PendingStrategies]")
	}
	return page, nil
}

// Create submits a new strategy.
func (a *API) Create(ctx context.Context, form Form) (*Strategy, error) {
	var s Strategy
	if err := a.gw.Post(ctx, "/content/strategies/", form, &s); err != nil {
		return nil, errors.Wrap(err, "[API.Create]")
	}
	return &s, nil
}

// Update patches an existing strategy.
func (a *API) Update(ctx context.Context, id int64, form Form) (*Strategy, error) {
	var s Strategy
	if err := a.gw.Patch(ctx, fmt.Sprintf("/content/strategies/%d/", id), form, &s); err != nil {
		return nil, errors.Wrap(err, "[API.Update]")
	}
	return &s, nil
}

// Delete removes a strategy.
func (a *API) Delete(ctx context.Context, id int64) error {
	if err := a.gw.Delete(ctx, fmt.Sprintf("/content/strategies/%d/", id), nil); err != nil {
		return errors.Wrap(err, "[API.Delete]")
	}
	return nil
}

// ToggleCollection collects or uncollects a strategy.
func (a *API) ToggleCollection(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/content/strategies/%d/collect/", id)
	if err := a.gw.Post(ctx, path, nil, nil); err != nil {
		return errors.Wrap(err, "[API.ToggleCollection]")
	}
	return nil
}

// ToggleLike likes or unlikes a strategy.
func (a *API) ToggleLike(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/content/strategies/%d/like/", id)
	if err := a.gw.Post(ctx, path, nil, nil); err != nil {
		return errors.Wrap(err, "[API.ToggleLike]")
	}
	return nil
}

// StrategyStats fetches creator analytics for one strategy.
func (a *API) StrategyStats(ctx context.Context, id int64, days int) (*Stats, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	var stats Stats
	if err := a.gw.Get(ctx, fmt.Sprintf("/content/strategies/%d/stats/", id), params, &stats); err != nil {
		return nil, errors.Wrap(err, "[API.StrategyStats]")
	}
	return &stats, nil
}

// ReviewStrategy approves or rejects a pending strategy. Admin only.
func (a *API) ReviewStrategy(ctx context.Context, id int64, review Review) error {
	path := fmt.Sprintf("/content/strategies/%d/review/", id)
	if err := a.gw.Post(ctx, path, review, nil); err != nil {
		return errors.Wrap(err, "[API.ReviewStrategy]")
	}
	return nil
}

// UploadMedia uploads an image or video asset for a strategy.
func (a *API) UploadMedia(ctx context.Context, strategyID int64, mediaType, filename string, file io.Reader) (*MediaAsset, error) {
	fields := map[string]string{
		"media_type": mediaType,
		"strategy":   strconv.FormatInt(strategyID, 10),
	}
	parts := []gateway.FilePart{{Field: "file", Filename: filename, Reader: file}}
	var asset MediaAsset
	if err := a.gw.PostMultipart(ctx, "/content/media/", fields, parts, &asset); err != nil {
		return nil, errors.Wrap(err, "[API.UploadMedia]")
	}
	return &asset, nil
}

// IncentiveStats fetches a creator's standing for one incentive period.
// period and userID are optional filters; admins pass userID to inspect
// another creator.
func (a *API) IncentiveStats(ctx context.Context, period string, userID int64) (*IncentiveStats, error) {
	params := url.Values{}
	if period != "" {
		params.Set("period", period)
	}
	if userID > 0 {
		params.Set("user", strconv.FormatInt(userID, 10))
	}
	var stats IncentiveStats
	if err := a.gw.Get(ctx, "/content/incentives/stats/", params, &stats); err != nil {
		return nil, errors.Wrap(err, "[API.IncentiveStats]")
	}
	return &stats, nil
}

// ApplyIncentive submits an incentive application for the given period.
func (a *API) ApplyIncentive(ctx context.Context, period string) (*Incentive, error) {
	body := map[string]string{}
	if period != "" {
		body["period"] = period
	}
	var incentive Incentive
	if err := a.gw.Post(ctx, "/content/incentives/apply/", body, &incentive); err != nil {
		return nil, errors.Wrap(err, "[API.ApplyIncentive]")
	}
	return &incentive, nil
}

// IncentiveHistory fetches past applications. userID is an admin-only
// filter; zero means the authenticated creator.
func (a *API) IncentiveHistory(ctx context.Context, userID int64) ([]Incentive, error) {
	params := url.Values{}
	if userID > 0 {
		params.Set("user", strconv.FormatInt(userID, 10))
	}
	var history []Incentive
	if err := a.gw.Get(ctx, "/content/incentives/history/", params, &history); err != nil {
		return nil, errors.Wrap(err, "[API.IncentiveHistory]")
	}
	return history, nil
}

// ReviewIncentive approves or rejects an application. Admin only.
func (a *API) ReviewIncentive(ctx context.Context, id int64, status, reason string) (*Incentive, error) {
	body := map[string]string{"status": status}
	if reason != "" {
		body["reason"] = reason
	}
	var incentive Incentive
	if err := a.gw.Patch(ctx, fmt.Sprintf("/content/incentives/%d/review/", id), body, &incentive); err != nil {
		return nil, errors.Wrap(err, "[API.ReviewIncentive]")
	}
	return &incentive, nil
}

// GrantIncentive records the payout for an approved application. Admin
// only.
func (a *API) GrantIncentive(ctx context.Context, id int64, rewardAmount float64) (*Incentive, error) {
	body := map[string]float64{"reward_amount": rewardAmount}
	var incentive Incentive
	if err := a.gw.Patch(ctx, fmt.Sprintf("/content/incentives/%d/grant/", id), body, &incentive); err != nil {
		return nil, errors.Wrap(err, "[API.GrantIncentive]")
	}
	return &incentive, nil
}

// DeleteMedia removes a media asset.
func (a *API) DeleteMedia(ctx context.Context, id int64) error {
	if err := a.gw.Delete(ctx, fmt.Sprintf("/content/media/%d/", id), nil); err != nil {
		return errors.Wrap(err, "[API.DeleteMedia]")
	}
	return nil
}
