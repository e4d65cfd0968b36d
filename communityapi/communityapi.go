// Package communityapi wraps the community endpoints: posts, comments,
// topics, reactions, and moderation reports.
package communityapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/pkg/errors"
)

// API calls the /community/ endpoints through the gateway.
type API struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *API {
	return &API{gw: gw}
}

// Posts fetches a page of community posts.
func (a *API) Posts(ctx context.Context, params url.Values) (gateway.Page[Post], error) {
	var page gateway.Page[Post]
	if err := a.gw.Get(ctx, "/community/posts/", params, &page); err != nil {
		return gateway.Page[Post]{}, errors.Wrap(err, "[API.Posts]")
	}
	return page, nil
}

// Post fetches one post.
func (a *API) Post(ctx context.Context, id int64) (*Post, error) {
	var post Post
	if err := a.gw.Get(ctx, fmt.Sprintf("/community/posts/%d/", id), nil, &post); err != nil {
		return nil, errors.Wrap(err, "[API.Post]")
	}
	return &post, nil
}

// CreatePost publishes a post.
func (a *API) CreatePost(ctx context.Context, form PostForm) (*Post, error) {
	var post Post
	if err := a.gw.Post(ctx, "/community/posts/", form, &post); err != nil {
		return nil, errors.Wrap(err, "[API.CreatePost]")
	}
	return &post, nil
}

// UpdatePost patches a post.
func (a *API) UpdatePost(ctx context.Context, id int64, form PostForm) (*Post, error) {
	var post Post
	if err := a.gw.Patch(ctx, fmt.Sprintf("/community/posts/%d/", id), form, &post); err != nil {
		return nil, errors.Wrap(err, "[API.UpdatePost]")
	}
	return &post, nil
}

// DeletePost removes a post.
func (a *API) DeletePost(ctx context.Context, id int64) error {
	if err := a.gw.Delete(ctx, fmt.Sprintf("/community/posts/%d/", id), nil); err != nil {
		return errors.Wrap(err, "[API.DeletePost]")
	}
	return nil
}

// Comments fetches comments filtered by target.
func (a *API) Comments(ctx context.Context, params url.Values) (gateway.Page[Comment], error) {
	var page gateway.Page[Comment]
	if err := a.gw.Get(ctx, "/community/comments/", params, &page); err != nil {
		return gateway.Page[Comment]{}, errors.Wrap(err, "[API.Comments]")
	}
	return page, nil
}

// CreateComment posts a comment.
func (a *API) CreateComment(ctx context.Context, form CommentForm) (*Comment, error) {
	var comment Comment
	if err := a.gw.Post(ctx, "/community/comments/", form, &comment); err != nil {
		return nil, errors.Wrap(err, "[API.CreateComment]")
	}
	return &comment, nil
}

// DeleteComment removes a comment.
func (a *API) DeleteComment(ctx context.Context, id int64) error {
	if err := a.gw.Delete(ctx, fmt.Sprintf("/community/comments/%d/", id), nil); err != nil {
		return errors.Wrap(err, "[API.DeleteComment]")
	}
	return nil
}

// ToggleReaction likes or unlikes a target.
func (a *API) ToggleReaction(ctx context.Context, reaction Reaction) error {
	if err := a.gw.Post(ctx, "/community/reactions/", reaction, nil); err != nil {
		return errors.Wrap(err, "[API.ToggleReaction]")
	}
	return nil
}

// Topics fetches a page of topics.
func (a *API) Topics(ctx context.Context, params url.Values) (gateway.Page[Topic], error) {
	var page gateway.Page[Topic]
	if err := a.gw.Get(ctx, "/community/topics/", params, &page); err != nil {
		return gateway.Page[Topic]{}, errors.Wrap(err, "[API.Topics]")
	}
	return page, nil
}

// HotTopics fetches the trending topics.
func (a *API) HotTopics(ctx context.Context) ([]Topic, error) {
	var topics []Topic
	if err := a.gw.Get(ctx, "/community/topics/hot/", nil, &topics); err != nil {
		return nil, errors.Wrap(err, "[API.HotTopics]")
	}
	return topics, nil
}

// CreateTopic opens a new topic.
func (a *API) CreateTopic(ctx context.Context, form TopicForm) (*Topic, error) {
	var topic Topic
	if err := a.gw.Post(ctx, "/community/topics/", form, &topic); err != nil {
		return nil, errors.Wrap(err, "[API.CreateTopic]")
	}
	return &topic, nil
}

// ToggleTopicFollow follows or unfollows a topic.
func (a *API) ToggleTopicFollow(ctx context.Context, topicID int64) error {
	path := fmt.Sprintf("/community/topics/%d/follow/", topicID)
	if err := a.gw.Post(ctx, path, nil, nil); err != nil {
		return errors.Wrap(err, "[API.ToggleTopicFollow]")
	}
	return nil
}

// ReportContent files a moderation report.
func (a *API) ReportContent(ctx context.Context, form ReportForm) error {
	if err := a.gw.Post(ctx, "/community/reports/", form, nil); err != nil {
		return errors.Wrap(err, "[API.ReportContent]")
	}
	return nil
}

// Reports lists moderation reports. Admin only.
func (a *API) Reports(ctx context.Context, params url.Values) (gateway.Page[Report], error) {
	var page gateway.Page[Report]
	if err := a.gw.Get(ctx, "/community/reports/", params, &page); err != nil {
		return gateway.Page[Report]{}, errors.Wrap(err, "[API.Reports]")
	}
	return page, nil
}

// UpdateReport resolves or rejects a report. Admin only.
func (a *API) UpdateReport(ctx context.Context, id int64, status string) (*Report, error) {
	body := map[string]string{"status": status}
	var report Report
	if err := a.gw.Patch(ctx, fmt.Sprintf("/community/reports/%d/", id), body, &report); err != nil {
		return nil, errors.Wrap(err, "[API.UpdateReport]")
	}
	return &report, nil
}

// SubmitFeedback sends free-form user feedback.
func (a *API) SubmitFeedback(ctx context.Context, feedback Feedback) error {
	if err := a.gw.Post(ctx, "/community/feedback/", feedback, nil); err != nil {
		return errors.Wrap(err, "[API.SubmitFeedback]")
	}
	return nil
}
