package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

// DefaultTimeout bounds every remote call when no client is supplied.
const DefaultTimeout = 10 * time.Second

// HTTPConfig configures the HTTP client.
type HTTPConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// HTTPClient talks to the complaint service over its JSON REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewHTTPClient builds a client for the service rooted at cfg.BaseURL.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("api: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: base,
		client:  httpClient,
		log:     logger.Named("api"),
	}, nil
}

// CreateUser implements complaints.UserRepository via POST /users/. A 2xx
// response means the account exists even when its body cannot be decoded, in
// which case the returned user echoes the input.
func (c *HTTPClient) CreateUser(ctx context.Context, input complaints.RegisterUserInput) (complaints.User, error) {
	var user complaints.User
	if err := c.do(ctx, "create user", http.MethodPost, "/users/", input, &user); err != nil {
		var decodeErr *decodeError
		if !errors.As(err, &decodeErr) {
			return complaints.User{}, err
		}
		c.log.Warn("create user response unreadable", zap.Error(err))
		return complaints.User{Name: input.Name, Email: input.Email}, nil
	}
	return user, nil
}

// ListUsers fetches every registered user via GET /users/.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]complaints.User, error) {
	var users []complaints.User
	if err := c.do(ctx, "list users", http.MethodGet, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListComplaints implements complaints.ComplaintRepository via GET /complaints/.
// The collection is returned whole; filtering happens client side.
func (c *HTTPClient) ListComplaints(ctx context.Context) ([]complaints.Complaint, error) {
	var records []complaints.Complaint
	if err := c.do(ctx, "list complaints", http.MethodGet, "/complaints/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateComplaint implements complaints.ComplaintRepository via POST
// /complaints/. The response body is ignored.
func (c *HTTPClient) CreateComplaint(ctx context.Context, input complaints.CreateComplaintInput) error {
	return c.do(ctx, "create complaint", http.MethodPost, "/complaints/", input, nil)
}

// Ping calls GET / and returns the service greeting.
func (c *HTTPClient) Ping(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "ping", http.MethodGet, "/", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, payload any, target any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode %s payload: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return &complaints.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		c.log.Debug("remote error",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
		)
		return &complaints.ServerError{Status: resp.StatusCode, Detail: errorDetail(raw)}
	}
	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &decodeError{op: op, err: err}
	}
	return nil
}

// decodeError marks a 2xx response whose body was not the expected JSON.
type decodeError struct {
	op  string
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("api: decode %s response: %v", e.op, e.err)
}

func (e *decodeError) Unwrap() error { return e.err }

// errorDetail extracts {"detail": "..."}. Structured details, such as
// validation error lists, are not surfaced.
func errorDetail(raw []byte) string {
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	detail, _ := body.Detail.(string)
	return detail
}
