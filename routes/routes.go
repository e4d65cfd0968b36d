// Package routes declares the platform's navigable routes and the
// authorization metadata the guard consumes.
package routes

import (
	"strings"

	"github.com/jrsteele09/go-gamehub-client/users"
)

// Route paths.
const (
	PathHome = "/home"

	// Game discovery
	PathGameList      = "/games/list"
	PathGameRanking   = "/games/ranking"
	PathGameCreate    = "/games/create"
	PathGameEdit      = "/games/edit/:id"
	PathGameDetail    = "/games/:id"
	PathGameRecommend = "/games/recommend"

	// Content creation
	PathStrategyList      = "/strategies/list"
	PathStrategyDetail    = "/strategies/:id"
	PathStrategyCreate    = "/strategies/create"
	PathStrategyEdit      = "/strategies/edit/:id"
	PathCreatorIncentives = "/strategies/incentives"

	// Community
	PathPosts      = "/community/posts"
	PathPostDetail = "/community/posts/:id"
	PathTopics     = "/community/topics"

	// Account & dashboards
	PathProfile   = "/profile"
	PathAnalytics = "/analytics"
	PathPublisher = "/publisher"

	// Administration
	PathAdminUsers      = "/admin/users"
	PathAdminContent    = "/admin/content"
	PathAdminIncentives = "/admin/incentives"
	PathAdminReports    = "/admin/reports"
	PathAdminSystem     = "/admin/system"

	// Auth pages
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
)

// RedirectQueryParam carries the originally requested path through the login
// redirect so the user lands where they were headed.
const RedirectQueryParam = "redirect"

// Meta is the authorization metadata attached to a route.
type Meta struct {
	Title        string
	RequiresAuth bool
	Guest        bool
	Roles        []users.Role
}

// Route is one navigable destination.
type Route struct {
	Name string
	Path string
	Meta Meta
}

var table = []Route{
	{Name: "Home", Path: PathHome, Meta: Meta{Title: "Home"}},

	{Name: "GameList", Path: PathGameList, Meta: Meta{Title: "Games"}},
	{Name: "GameRanking", Path: PathGameRanking, Meta: Meta{Title: "Single-Player Rankings"}},
	{Name: "GameCreate", Path: PathGameCreate, Meta: Meta{Title: "Create Game", RequiresAuth: true, Roles: []users.Role{users.RolePublisher}}},
	{Name: "GameEdit", Path: PathGameEdit, Meta: Meta{Title: "Edit Game", RequiresAuth: true, Roles: []users.Role{users.RolePublisher}}},
	{Name: "GameDetail", Path: PathGameDetail, Meta: Meta{Title: "Game Detail"}},
	{Name: "GameRecommend", Path: PathGameRecommend, Meta: Meta{Title: "Recommended For You", RequiresAuth: true}},

	{Name: "StrategyList", Path: PathStrategyList, Meta: Meta{Title: "Strategies"}},
	{Name: "StrategyDetail", Path: PathStrategyDetail, Meta: Meta{Title: "Strategy Detail"}},
	{Name: "StrategyCreate", Path: PathStrategyCreate, Meta: Meta{Title: "Create Strategy", RequiresAuth: true, Roles: []users.Role{users.RoleCreator}}},
	{Name: "StrategyEdit", Path: PathStrategyEdit, Meta: Meta{Title: "Edit Strategy", RequiresAuth: true, Roles: []users.Role{users.RoleCreator}}},
	{Name: "CreatorIncentives", Path: PathCreatorIncentives, Meta: Meta{Title: "Creator Incentives", RequiresAuth: true, Roles: []users.Role{users.RoleCreator}}},

	{Name: "Posts", Path: PathPosts, Meta: Meta{Title: "Community"}},
	{Name: "PostDetail", Path: PathPostDetail, Meta: Meta{Title: "Post Detail"}},
	{Name: "Topics", Path: PathTopics, Meta: Meta{Title: "Topics"}},

	{Name: "Profile", Path: PathProfile, Meta: Meta{Title: "Profile", RequiresAuth: true}},
	{Name: "Analytics", Path: PathAnalytics, Meta: Meta{Title: "Analytics", RequiresAuth: true, Roles: []users.Role{users.RoleAdmin, users.RolePublisher}}},
	{Name: "PublisherCenter", Path: PathPublisher, Meta: Meta{Title: "Publisher Center", RequiresAuth: true, Roles: []users.Role{users.RolePublisher}}},

	{Name: "AdminUsers", Path: PathAdminUsers, Meta: Meta{Title: "User Management", RequiresAuth: true, Roles: []users.Role{users.RoleAdmin}}},
	{Name: "AdminContent", Path: PathAdminContent, Meta: Meta{Title: "Content Review", RequiresAuth: true, Roles: []users.Role{users.RoleAdmin}}},
	{Name: "AdminIncentives", Path: PathAdminIncentives, Meta: Meta{Title: "Incentive Management", RequiresAuth: true, Roles: []users.Role{users.RoleAdmin}}},
	{Name: "AdminReports", Path: PathAdminReports, Meta: Meta{Title: "Report Management", RequiresAuth: true, Roles: []users.Role{users.RoleAdmin}}},
	{Name: "AdminSystem", Path: PathAdminSystem, Meta: Meta{Title: "System Configuration", RequiresAuth: true, Roles: []users.Role{users.RoleAdmin}}},

	{Name: "Login", Path: PathLogin, Meta: Meta{Title: "Log In", Guest: true}},
	{Name: "Register", Path: PathRegister, Meta: Meta{Title: "Register", Guest: true}},
}

// Table returns every declared route.
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// ByName looks a route up by its name.
func ByName(name string) (Route, bool) {
	for _, r := range table {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// ByPath looks a route up by its declared path.
func ByPath(path string) (Route, bool) {
	for _, r := range table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Legacy paths kept as redirects so old links still land.
var redirects = map[string]string{
	"/login":    PathLogin,
	"/register": PathRegister,
}

// NotFound is the catch-all route Find falls back to for unknown paths.
var NotFound = Route{Name: "NotFound", Meta: Meta{Title: "Page Not Found"}}

// Find resolves a concrete navigation path to its route. Legacy redirect
// paths resolve to their current targets, and ":param" segments match any
// non-empty value, so "/games/5" resolves to the GameDetail route. Unknown
// paths return NotFound with ok false.
func Find(path string) (Route, bool) {
	if target, ok := redirects[path]; ok {
		path = target
	}
	for _, r := range table {
		if r.Path == path || matchPath(r.Path, path) {
			return r, true
		}
	}
	return NotFound, false
}

func matchPath(pattern, path string) bool {
	if !strings.Contains(pattern, ":") {
		return false
	}
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if strings.HasPrefix(want[i], ":") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
