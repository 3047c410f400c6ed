package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okarpov/taskdeck/internal/common"
	"github.com/okarpov/taskdeck/internal/validation"
)

// HTTPClient implements Client over the server's REST endpoints.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	accessToken  string
	refreshToken string
	onRefreshed  func(accessToken, refreshToken string)
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetSession(accessToken, refreshToken string) {
	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

func (c *HTTPClient) ClearSession() {
	c.accessToken = ""
	c.refreshToken = ""
}

func (c *HTTPClient) OnSessionRefreshed(fn func(accessToken, refreshToken string)) {
	c.onRefreshed = fn
}

// --- wire types ---

type errorBody struct {
	Error  string            `json:"error"`
	Errors validation.Errors `json:"errors"`
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshBody struct {
	RefreshToken string `json:"refresh_token"`
}

type taskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// --- public endpoints ---

func (c *HTTPClient) Signup(ctx context.Context, username, password string) error {
	return c.call(ctx, http.MethodPost, "/api/users", credentialsBody{username, password}, nil, false)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	pair := &TokenPair{}
	err := c.call(ctx, http.MethodPost, "/api/sessions", credentialsBody{username, password}, pair, false)
	if err != nil {
		return nil, err
	}
	c.SetSession(pair.AccessToken, pair.RefreshToken)
	return pair, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/api/health", nil, nil, false)
}

// --- authenticated endpoints ---

func (c *HTTPClient) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.call(ctx, http.MethodGet, "/api/tasks", nil, &tasks, true); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, title, description string) (*Task, error) {
	task := &Task{}
	err := c.call(ctx, http.MethodPost, "/api/tasks", taskBody{Title: title, Description: description}, task, true)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id, title, description, status string) (*Task, error) {
	task := &Task{}
	body := taskBody{Title: title, Description: description, Status: status}
	err := c.call(ctx, http.MethodPut, "/api/tasks/"+id, body, task, true)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil, true)
}

// --- transport ---

// call performs one round trip. For authed calls that come back 401 with
// "token expired", it rotates the tokens through the refresh endpoint and
// retries exactly once.
func (c *HTTPClient) call(ctx context.Context, method, path string, body, out any, authed bool) error {
	err := c.do(ctx, method, path, body, out, authed)
	if err == nil {
		return nil
	}
	if !authed {
		return mapError(err)
	}

	apiErr, ok := err.(*statusError)
	if !ok || apiErr.status != http.StatusUnauthorized || apiErr.message != "token expired" {
		return mapError(err)
	}
	if c.refreshToken == "" {
		return ErrUnauthorized
	}

	pair := &TokenPair{}
	if refreshErr := c.do(ctx, http.MethodPost, "/api/sessions/refresh",
		refreshBody{RefreshToken: c.refreshToken}, pair, false); refreshErr != nil {
		return ErrUnauthorized
	}

	c.SetSession(pair.AccessToken, pair.RefreshToken)
	if c.onRefreshed != nil {
		c.onRefreshed(pair.AccessToken, pair.RefreshToken)
	}

	return mapError(c.do(ctx, method, path, body, out, authed))
}

// statusError is the raw outcome of a non-2xx response, before mapping to
// the sentinel errors callers see.
type statusError struct {
	status  int
	message string
	fields  validation.Errors
}

func (e *statusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.status, e.message)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil {
			return json.NewDecoder(resp.Body).Decode(out)
		}
		return nil
	}

	eb := errorBody{}
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	return &statusError{status: resp.StatusCode, message: eb.Error, fields: eb.Errors}
}

// mapError turns raw transport outcomes into the sentinel errors of this
// package. Anything already mapped passes through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	se, ok := err.(*statusError)
	if !ok {
		return err
	}
	switch {
	case se.status == http.StatusBadRequest && len(se.fields) > 0:
		return &FieldErrors{Fields: se.fields}
	case se.status == http.StatusUnauthorized:
		return ErrUnauthorized
	case se.status == http.StatusNotFound:
		return common.ErrNotFound
	case se.status == http.StatusConflict:
		return common.ErrAlreadyExists
	case se.status == http.StatusServiceUnavailable, se.status == http.StatusBadGateway:
		return ErrUnavailable
	default:
		return fmt.Errorf("server error: %s", se.Error())
	}
}
