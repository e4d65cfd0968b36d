package communityapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/go-gamehub-client/communityapi"
	"github.com/jrsteele09/go-gamehub-client/gateway"
	"github.com/jrsteele09/go-gamehub-client/notify/notifyfakes"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, handler http.Handler) *communityapi.API {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return communityapi.New(gateway.New(ts.URL, notifyfakes.NewRecorder()))
}

func TestPostsPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /community/posts/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		next := "/community/posts/?page=3"
		json.NewEncoder(w).Encode(gateway.Page[communityapi.Post]{
			Count: 21,
			Next:  &next,
			Results: []communityapi.Post{
				{ID: 11, Text: "anyone tried the new patch?"},
			},
		})
	})

	api := newAPI(t, mux)
	params := url.Values{}
	params.Set("page", "2")
	page, err := api.Posts(context.Background(), params)
	require.NoError(t, err)
	require.EqualValues(t, 21, page.Count)
	require.Len(t, page.Results, 1)
	require.Equal(t, "anyone tried the new patch?", page.Results[0].Text)
}

func TestCreateCommentTargetsPost(t *testing.T) {
	var got communityapi.CommentForm
	mux := http.NewServeMux()
	mux.HandleFunc("POST /community/comments/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(communityapi.Comment{ID: 5, Content: got.Content})
	})

	api := newAPI(t, mux)
	postID := int64(11)
	comment, err := api.CreateComment(context.Background(), communityapi.CommentForm{
		PostID:  &postID,
		Content: "same here",
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, comment.ID)
	require.NotNil(t, got.PostID)
	require.EqualValues(t, 11, *got.PostID)
	require.Nil(t, got.GameID)
}

func TestToggleTopicFollowPath(t *testing.T) {
	var path string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /community/topics/{id}/follow/", func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	api := newAPI(t, mux)
	require.NoError(t, api.ToggleTopicFollow(context.Background(), 42))
	require.Equal(t, "/community/topics/42/follow/", path)
}

func TestDeletePostPropagatesNotFound(t *testing.T) {
	api := newAPI(t, http.NotFoundHandler())

	err := api.DeletePost(context.Background(), 999)
	require.Error(t, err)
	require.Equal(t, gateway.KindNotFound, gateway.KindOf(err))
}
