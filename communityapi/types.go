package communityapi

import (
	"github.com/jrsteele09/go-gamehub-client/gameapi"
	"github.com/jrsteele09/go-gamehub-client/users"
)

// Post is one community feed entry.
type Post struct {
	ID           int64            `json:"id"`
	Author       users.Identity   `json:"author"`
	Game         *gameapi.Game    `json:"game,omitempty"`
	Text         string           `json:"text"`
	Images       []string         `json:"images,omitempty"`
	Mentions     []users.Identity `json:"mentions,omitempty"`
	Topics       []Topic          `json:"topics,omitempty"`
	LikeCount    int              `json:"like_count"`
	CommentCount int              `json:"comment_count"`
	IsDeleted    bool             `json:"is_deleted"`
	IsLiked      bool             `json:"is_liked,omitempty"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// PostForm creates or edits a post.
type PostForm struct {
	GameID   *int64   `json:"game,omitempty"`
	Text     string   `json:"text"`
	Images   []string `json:"images,omitempty"`
	Mentions []int64  `json:"mentions,omitempty"`
	Topics   []int64  `json:"topics,omitempty"`
}

// Comment is one comment on a post, game, or strategy.
type Comment struct {
	ID        int64          `json:"id"`
	User      users.Identity `json:"user"`
	PostID    *int64         `json:"post,omitempty"`
	GameID    *int64         `json:"game,omitempty"`
	Strategy  *int64         `json:"strategy,omitempty"`
	ParentID  *int64         `json:"parent,omitempty"`
	Content   string         `json:"content"`
	LikeCount int            `json:"like_count"`
	IsDeleted bool           `json:"is_deleted"`
	IsLiked   bool           `json:"is_liked,omitempty"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// CommentForm creates a comment on exactly one target.
type CommentForm struct {
	GameID   *int64 `json:"game,omitempty"`
	PostID   *int64 `json:"post,omitempty"`
	Strategy *int64 `json:"strategy,omitempty"`
	ParentID *int64 `json:"parent,omitempty"`
	Content  string `json:"content"`
}

// Reaction toggles a like or dislike on a target.
type Reaction struct {
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	Type       string `json:"type"`
}

// Topic is a community discussion topic.
type Topic struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	CoverImage  string  `json:"cover_image,omitempty"`
	PostCount   int     `json:"post_count"`
	Heat        float64 `json:"heat"`
	IsFollowed  bool    `json:"is_followed,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// TopicForm creates a topic.
type TopicForm struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Report flags content for moderation.
type Report struct {
	ID         int64          `json:"id"`
	Reporter   users.Identity `json:"reporter"`
	TargetType string         `json:"target_type"`
	TargetID   int64          `json:"target_id"`
	Reason     string         `json:"reason"`
	Status     string         `json:"status"`
	CreatedAt  string         `json:"created_at"`
}

// ReportForm files a report against a piece of content.
type ReportForm struct {
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	Reason     string `json:"reason"`
	Content    string `json:"content,omitempty"`
}

// Feedback is a free-form user feedback submission.
type Feedback struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
