package adminapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-gamehub-client/adminapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/notify/notifyfakes"
	"github.com/jrsteele09/go-gamehub-client/users"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, handler http.Handler) *adminapi.API {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return adminapi.New(gateway.New(ts.URL, notifyfakes.NewRecorder()))
}

func TestUsersQueryEncoding(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "creator", q.Get("role"))
		require.Equal(t, "banned", q.Get("status"))
		require.Equal(t, "alice", q.Get("search"))
		json.NewEncoder(w).Encode(gateway.Page[users.Identity]{
			Count:   1,
			Results: []users.Identity{{ID: 3, Username: "alice", Role: users.RoleCreator}},
		})
	})

	api := newAPI(t, mux)
	page, err := api.Users(context.Background(), adminapi.UserQuery{
		Page:   2,
		Role:   users.RoleCreator,
		Status: users.StatusBanned,
		Search: "alice",
	})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	require.Equal(t, "alice", page.Results[0].Username)
}

func TestSetUserRoleRejectsUnknownRole(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /users/{id}/role/", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	api := newAPI(t, mux)
	err := api.SetUserRole(context.Background(), 3, users.Role("superuser"))
	require.Error(t, err)
	require.False(t, called)

	require.NoError(t, api.SetUserRole(context.Background(), 3, users.RolePublisher))
	require.True(t, called)
}

func TestSetUserStatusCarriesReason(t *testing.T) {
	var got map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /users/{id}/status/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	api := newAPI(t, mux)
	err := api.SetUserStatus(context.Background(), 3, users.StatusBanned, "spam")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"status": "banned", "reason": "spam"}, got)
}

func TestRejectContentPath(t *testing.T) {
	var path string
	var got map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /content/review/{id}/reject/", func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	api := newAPI(t, mux)
	require.NoError(t, api.RejectContent(context.Background(), 17, "cover image violates policy"))
	require.Equal(t, "/content/review/17/reject/", path)
	require.Equal(t, "cover image violates policy", got["reason"])
}

func TestBatchUpdateConfigsBody(t *testing.T) {
	var got map[string][]adminapi.ConfigBatchItem
	mux := http.NewServeMux()
	mux.HandleFunc("POST /system/config/batch_update/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	api := newAPI(t, mux)
	err := api.BatchUpdateConfigs(context.Background(), []adminapi.ConfigBatchItem{
		{ID: 1, Value: "50"},
		{ID: 2, Value: "off"},
	})
	require.NoError(t, err)
	require.Len(t, got["configs"], 2)
	require.Equal(t, "off", got["configs"][1].Value)
}

func TestSystemHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /system/health/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(adminapi.Health{
			Status:     "degraded",
			Components: map[string]string{"db": "ok", "cache": "down"},
		})
	})

	api := newAPI(t, mux)
	health, err := api.SystemHealth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "degraded", health.Status)
	require.Equal(t, "down", health.Components["cache"])
}

func TestUserStatistics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/statistics/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(adminapi.UserStatistics{
			Total:               120,
			ByRole:              map[string]int{"player": 100, "creator": 15, "publisher": 4, "admin": 1},
			RecentRegistrations: 7,
		})
	})

	api := newAPI(t, mux)
	stats, err := api.UserStatistics(context.Background())
	require.NoError(t, err)
	require.Equal(t, 120, stats.Total)
	require.Equal(t, 15, stats.ByRole["creator"])
}
