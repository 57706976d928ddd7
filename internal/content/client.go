// Package content implements the HTTP client for the recipe content
// service. The service's response shapes vary between deployments; this
// package accepts every known variant and hands the catalog a uniform
// envelope stream.
package content

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cookpedia/pantry/pkg/types"
)

// byIDCacheSize bounds the single-post response cache.
const byIDCacheSize = 128

// Client fetches raw posts from the content service. It performs no
// retries; retry policy belongs to the caller's transport layer.
type Client struct {
	base    string
	httpc   *http.Client
	byID    *lru.Cache[string, types.RawEnvelope]
	headers map[string]string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// WithAuthToken attaches a bearer token to every request.
func WithAuthToken(token string) ClientOption {
	return func(c *Client) { c.headers["Authorization"] = "Bearer " + token }
}

// NewClient creates a client for the content service at base, which must
// already be validated (see types.Config.Validate).
func NewClient(base string, opts ...ClientOption) (*Client, error) {
	cache, err := lru.New[string, types.RawEnvelope](byIDCacheSize)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base:    base,
		httpc:   http.DefaultClient,
		byID:    cache,
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListPosts fetches the full listing. The endpoint may return a bare array
// of posts, or an object carrying the array under "posts" or "data", with
// each element either a flat post or an {owner_post, post} envelope; all
// shapes normalize to the same envelope slice.
func (c *Client) ListPosts(ctx context.Context) ([]types.RawEnvelope, error) {
	body, err := c.get(ctx, c.base+"/getallposts")
	if err != nil {
		return nil, err
	}
	return decodeListing(body)
}

// GetPost fetches a single post by identifier, consulting the bounded
// response cache first.
func (c *Client) GetPost(ctx context.Context, id string) (types.RawEnvelope, error) {
	if env, ok := c.byID.Get(id); ok {
		return env, nil
	}

	body, err := c.get(ctx, c.base+"/getpostbypostid/"+id)
	if err != nil {
		return types.RawEnvelope{}, err
	}

	env, err := decodeElement(body)
	if err != nil {
		return types.RawEnvelope{}, err
	}
	if env.Post == nil || env.Post.PostID == nil {
		return types.RawEnvelope{}, fmt.Errorf("post %s: %w", id, types.ErrNotFound)
	}
	c.byID.Add(id, env)
	return env, nil
}

// get performs one GET and returns the body. Non-2xx statuses are errors.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

// listingWrapper covers the object-shaped listing responses.
type listingWrapper struct {
	Posts []json.RawMessage `json:"posts"`
	Data  []json.RawMessage `json:"data"`
}

// decodeListing accepts the three listing shapes and flattens them to one
// envelope slice, preserving the order given by the service.
func decodeListing(body []byte) ([]types.RawEnvelope, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		var wrapper listingWrapper
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		// An object with neither array is an unexpected shape (for example
		// an error payload served with a success status), not an empty
		// listing; a present-but-empty "posts" or "data" stays valid.
		if wrapper.Posts == nil && wrapper.Data == nil {
			return nil, fmt.Errorf("decode listing: object carries no posts or data array")
		}
		elements = wrapper.Posts
		if elements == nil {
			elements = wrapper.Data
		}
	}

	out := make([]types.RawEnvelope, 0, len(elements))
	for _, el := range elements {
		env, err := decodeElement(el)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	return out, nil
}

// decodeElement accepts a flat post object or an {owner_post, post}
// envelope and returns the envelope form.
func decodeElement(el []byte) (types.RawEnvelope, error) {
	var env types.RawEnvelope
	if err := json.Unmarshal(el, &env); err == nil && env.Post != nil {
		return env, nil
	}

	var post types.RawPost
	if err := json.Unmarshal(el, &post); err != nil {
		return types.RawEnvelope{}, fmt.Errorf("decode post element: %w", err)
	}
	return types.RawEnvelope{Post: &post}, nil
}
