// Package restapi implements the service.Service interface against the
// /api/todos JSON endpoint.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"todoview/internal/config"
	"todoview/internal/service"
)

const (
	// TodosPath is the collection path of the todo resource.
	TodosPath = "/api/todos"

	// maxErrorBody caps how much of an error response is kept for logging.
	maxErrorBody = 4 << 10
)

// Client implements service.Service over HTTP.
type Client struct {
	http   *http.Client
	base   *url.URL
	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client for cfg.BaseURL. If a token was stored by
// `todoview login`, requests carry it as a bearer token.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	httpClient := http.DefaultClient
	if cfg.HasToken() {
		token, err := cfg.LoadToken()
		if err != nil {
			return nil, fmt.Errorf("invalid token.json: %w", err)
		}
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	}
	return NewWithHTTPClient(cfg.BaseURL, httpClient, opts...)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{http: httpClient, base: base, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, TodosPath, nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, text string) (service.Task, error) {
	body := struct {
		Task string `json:"task"`
	}{Task: text}

	var task service.Task
	if err := c.do(ctx, http.MethodPost, TodosPath, body, &task); err != nil {
		return service.Task{}, err
	}
	if task.ID == "" {
		return service.Task{}, fmt.Errorf("create response carries no id")
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id service.ID, u service.Update) error {
	return c.do(ctx, http.MethodPut, taskPath(id), u, nil)
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id service.ID) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id service.ID) string {
	return TodosPath + "/" + url.PathEscape(id.String())
}

// do performs one round-trip. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("request", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()
	c.logger.Debug("response", "method", method, "path", path, "status", resp.StatusCode)

	if err := googleapi.CheckResponse(resp); err != nil {
		return wrapError(err)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// wrapError maps transport and status errors onto the service sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("transport: %w", err)
	}

	detail := apiErr.Message
	if detail == "" {
		detail = strings.TrimSpace(truncate(apiErr.Body, maxErrorBody))
	}
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d (run: todoview login)", service.ErrUnauthorized, apiErr.Code)
	case http.StatusNotFound:
		return fmt.Errorf("%w: status %d", service.ErrNotFound, apiErr.Code)
	default:
		return fmt.Errorf("%w: status %d: %s", service.ErrRejected, apiErr.Code, detail)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
