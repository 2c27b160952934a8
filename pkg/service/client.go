package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/httputil"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/observability"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// ClientOptions configures the scene service client.
type ClientOptions struct {
	// BaseURL is the service root, e.g. "http://localhost:8080".
	BaseURL string

	// Logger receives request logs. Defaults to a discard logger.
	Logger *log.Logger

	// HTTPClient overrides the HTTP client. Defaults to a client with
	// a 30 second timeout.
	HTTPClient *http.Client

	// Cache, when set, caches fetched render artifacts locally so
	// repeated fetches of the same scene and options skip the network.
	Cache *httputil.Cache
}

// ValidateAndSetDefaults checks option values and fills in defaults.
func (o *ClientOptions) ValidateAndSetDefaults() error {
	if err := errors.ValidateURL(o.BaseURL); err != nil {
		return err
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return nil
}

// Client talks to the scene service. Transient failures (network
// errors, 5xx, 429) are retried with exponential backoff.
type Client struct {
	opts ClientOptions
}

// NewClient creates a scene service client.
func NewClient(opts ClientOptions) (*Client, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Client{opts: opts}, nil
}

// RenderRequest selects the artifact to fetch.
type RenderRequest struct {
	Format string // "svg" or "png"; empty means svg
	View   string
	Width  int
	Height int
}

// SendScene uploads a scene and returns its ID.
func (c *Client) SendScene(ctx context.Context, sc *scene.Scene) (string, error) {
	data, err := scene.Marshal(sc)
	if err != nil {
		return "", err
	}
	body, err := c.do(ctx, http.MethodPost, "/api/scenes", data)
	if err != nil {
		return "", err
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "bad upload response")
	}
	c.opts.Logger.Info("sent scene", "id", resp.ID, "actors", sc.Len())
	return resp.ID, nil
}

// SendMesh wraps a mesh in a single-actor scene and uploads it.
func (c *Client) SendMesh(ctx context.Context, name string, m *mesh.Mesh) (string, error) {
	sc := scene.New()
	sc.AddMesh(name, m, scene.DefaultStyle())
	return c.SendScene(ctx, sc)
}

// GetScene fetches a stored scene.
func (c *Client) GetScene(ctx context.Context, id string) (*scene.Scene, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/scenes/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return scene.Unmarshal(body)
}

// ListScenes lists stored scenes.
func (c *Client) ListScenes(ctx context.Context) ([]SceneDoc, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/scenes", nil)
	if err != nil {
		return nil, err
	}
	var docs []SceneDoc
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "bad list response")
	}
	return docs, nil
}

// DeleteScene removes a stored scene.
func (c *Client) DeleteScene(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/scenes/"+url.PathEscape(id), nil)
	return err
}

// FetchRender downloads a rendered artifact of a stored scene.
func (c *Client) FetchRender(ctx context.Context, id string, req RenderRequest) ([]byte, error) {
	q := url.Values{}
	if req.Format != "" {
		q.Set("format", req.Format)
	}
	if req.View != "" {
		q.Set("view", req.View)
	}
	if req.Width > 0 {
		q.Set("width", strconv.Itoa(req.Width))
	}
	if req.Height > 0 {
		q.Set("height", strconv.Itoa(req.Height))
	}
	path := "/api/scenes/" + url.PathEscape(id) + "/render"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	key := renderKey(id, req)
	if c.opts.Cache != nil {
		var cached []byte
		if ok, err := c.opts.Cache.Get(key, &cached); ok && err == nil {
			observability.Cache().OnCacheHit(ctx, "render")
			c.opts.Logger.Debug("render cache hit", "scene", id)
			return cached, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if c.opts.Cache != nil {
		if err := c.opts.Cache.Set(key, data); err != nil {
			c.opts.Logger.Warn("failed to cache render", "scene", id, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "render", len(data))
		}
	}
	return data, nil
}

// renderKey builds the local cache key for a render fetch.
func renderKey(id string, req RenderRequest) string {
	return fmt.Sprintf("%s:%s:%s:%dx%d", id, req.Format, req.View, req.Width, req.Height)
}

// do runs one request with retries and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var out []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		data, err := c.once(ctx, method, path, body)
		if err != nil {
			return err
		}
		out = data
		return nil
	})
	return out, err
}

func (c *Client) once(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	host := req.URL.Host
	observability.HTTP().OnRequest(ctx, method, host, path)

	start := time.Now()
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, method, host, path, err)
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s %s failed", method, path)}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to read response")
	}

	switch {
	case resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, &httputil.RetryableError{Err: &errors.RateLimitedError{
			RetryAfter: retryAfter,
			Message:    fmt.Sprintf("%s %s rate limited", method, path),
		}}
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeSceneNotFound, "%s: %s", path, apiError(data))
	case resp.StatusCode >= 500:
		return nil, &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork,
			"%s %s failed with status %d", method, path, resp.StatusCode)}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s %s failed: %s", method, path, apiError(data))
	}
}

// apiError extracts the error message from a service error response.
func apiError(data []byte) string {
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(data))
}
