// Package media resolves backend-relative media paths (covers, avatars,
// screenshots) into absolute URLs.
package media

import "strings"

// PlaceholderKind selects a placeholder image category.
type PlaceholderKind string

const (
	PlaceholderGame   PlaceholderKind = "game"
	PlaceholderAvatar PlaceholderKind = "avatar"
	PlaceholderBanner PlaceholderKind = "banner"
)

var placeholders = map[PlaceholderKind]string{
	PlaceholderGame:   "https://placehold.co/400x500/667eea/white?text=Game+Cover",
	PlaceholderAvatar: "https://placehold.co/100x100/4b5563/white?text=User",
	PlaceholderBanner: "https://placehold.co/1200x400/667eea/white?text=Banner",
}

// Resolver turns relative media paths into absolute URLs against the
// backend origin.
type Resolver struct {
	ServerURL string
}

// NewResolver creates a Resolver for the given backend origin.
func NewResolver(serverURL string) Resolver {
	return Resolver{ServerURL: strings.TrimRight(serverURL, "/")}
}

// URL resolves path into an absolute URL. Absolute inputs pass through
// unchanged; an empty path resolves to the game placeholder.
func (r Resolver) URL(path string) string {
	if path == "" {
		return Placeholder(PlaceholderGame)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.ServerURL + path
}

// GameCoverURL resolves a game cover path, falling back to the game
// placeholder.
func (r Resolver) GameCoverURL(coverImage string) string {
	if coverImage == "" {
		return Placeholder(PlaceholderGame)
	}
	return r.URL(coverImage)
}

// AvatarURL resolves a user avatar path, falling back to the avatar
// placeholder.
func (r Resolver) AvatarURL(avatar string) string {
	if avatar == "" {
		return Placeholder(PlaceholderAvatar)
	}
	return r.URL(avatar)
}

// Placeholder returns the placeholder image URL for the given kind.
func Placeholder(kind PlaceholderKind) string {
	if url, ok := placeholders[kind]; ok {
		return url
	}
	return placeholders[PlaceholderGame]
}
