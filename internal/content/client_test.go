package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookpedia/pantry/internal/catalog"
	"github.com/cookpedia/pantry/pkg/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestListPostsShapes(t *testing.T) {
	flat := `{"post_id": 1, "menu_name": "Pad Thai"}`
	envelope := `{"owner_post": {"user_id": 7, "username": "somchai"}, "post": {"post_id": 2, "menu_name": "Tom Yum"}}`

	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[` + flat + `,` + envelope + `]`},
		{"posts wrapper", `{"posts": [` + flat + `,` + envelope + `]}`},
		{"data wrapper", `{"data": [` + flat + `,` + envelope + `]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/getallposts", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			envs, err := c.ListPosts(context.Background())
			require.NoError(t, err)
			require.Len(t, envs, 2)

			// Flat elements are wrapped with a nil owner.
			assert.Nil(t, envs[0].Owner)
			assert.Equal(t, "Pad Thai", envs[0].Post.MenuName)

			require.NotNil(t, envs[1].Owner)
			assert.Equal(t, "somchai", envs[1].Owner.Username)
			assert.Equal(t, "Tom Yum", envs[1].Post.MenuName)
		})
	}
}

func TestListPostsEmptyListing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts": []}`))
	})

	envs, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, envs)
}

func TestListPostsTransportAndParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "body is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>offline</html>"))
			},
		},
		{
			name: "object with neither posts nor data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"message": "internal error"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := c.ListPosts(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestRefreshUnexpectedShapeLeavesCatalogStale(t *testing.T) {
	// An error payload rendered with a success status must be treated like
	// a transport failure: the refresh errors and the already-loaded
	// catalog keeps serving.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "internal error"}`))
	})

	s := catalog.NewStore()
	s.Load([]types.RawEnvelope{{Post: &types.RawPost{PostID: "1", MenuName: "Pad Thai"}}})

	err := s.Refresh(context.Background(), c)
	assert.Error(t, err)
	assert.Equal(t, 1, s.Len(), "catalog must be left stale-but-present, not blanked")
}

func TestGetPost(t *testing.T) {
	hits := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/getpostbypostid/42", r.URL.Path)
		w.Write([]byte(`{"owner_post": {"username": "somchai"}, "post": {"post_id": 42, "menu_name": "Khao Soi"}}`))
	})

	env, err := c.GetPost(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Khao Soi", env.Post.MenuName)

	// Second fetch is served from the bounded cache.
	_, err = c.GetPost(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestGetPostMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.GetPost(context.Background(), "42")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestClientSendsAuthToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithAuthToken("secret"))
	require.NoError(t, err)

	_, err = c.ListPosts(context.Background())
	require.NoError(t, err)
}
