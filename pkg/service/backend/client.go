package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

const (
	contentTypeJSON = "application/json"

	departmentsPath = "/departments"
	employeesPath   = "/employees"

	maxErrorBodySnippet = 512
)

// Client talks to the employee REST backend. Every call is a single attempt;
// failures are returned to the caller and never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBearerToken forwards credentials on every request
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a new backend client for baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid backend URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("backend URL must be http or https", goerr.V("url", baseURL))
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListDepartments implements interfaces.Backend
func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if err := c.do(ctx, http.MethodGet, departmentsPath, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// GetEmployee implements interfaces.Backend
func (c *Client) GetEmployee(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	if id == "" {
		return nil, goerr.New("employee ID is empty")
	}

	var employee model.Employee
	if err := c.do(ctx, http.MethodGet, employeePath(id), nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee implements interfaces.Backend
func (c *Client) CreateEmployee(ctx context.Context, values model.EmployeeValues) (*model.Employee, error) {
	var employee model.Employee
	if err := c.do(ctx, http.MethodPost, employeesPath, values, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployee implements interfaces.Backend
func (c *Client) UpdateEmployee(ctx context.Context, id types.EmployeeID, values model.EmployeeValues) (*model.Employee, error) {
	if id == "" {
		return nil, goerr.New("employee ID is empty")
	}

	var employee model.Employee
	if err := c.do(ctx, http.MethodPut, employeePath(id), values, &employee); err != nil {
		return nil, err
	}
	if employee.ID == "" {
		employee.ID = id
	}
	return &employee, nil
}

func employeePath(id types.EmployeeID) string {
	return employeesPath + "/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body",
				goerr.V("method", method),
				goerr.V("url", endpoint))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to build backend request",
			goerr.V("method", method),
			goerr.V("url", endpoint))
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(model.ErrBackendNetwork, "backend request failed",
			goerr.V("method", method),
			goerr.V("url", endpoint),
			goerr.V("error", err.Error()))
	}
	defer resp.Body.Close()

	// Read the full body so the connection can be reused
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(model.ErrBackendNetwork, "failed to read backend response",
			goerr.V("method", method),
			goerr.V("url", endpoint),
			goerr.V("error", err.Error()))
	}

	ctxlog.From(ctx).Debug("Backend request completed",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return goerr.Wrap(model.ErrBackendServer, "backend returned error status",
			goerr.V("method", method),
			goerr.V("url", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", snippet(respBody)))
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return goerr.Wrap(model.ErrBackendServer, "failed to decode backend response",
			goerr.V("method", method),
			goerr.V("url", endpoint),
			goerr.V("error", err.Error()),
			goerr.V("body", snippet(respBody)))
	}
	return nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= maxErrorBodySnippet {
		return s
	}
	return s[:maxErrorBodySnippet] + "..."
}

var _ interfaces.Backend = (*Client)(nil) // Compile-time interface check
