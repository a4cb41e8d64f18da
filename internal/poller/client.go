package poller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/tracing"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-success response from the alarm server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alarm server returned %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type checkRemindersResponse struct {
	NewlyQueued int `json:"newly_queued"`
}

type queueResponse struct {
	Count int                 `json:"count"`
	Queue []domain.QueueEntry `json:"queue"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client talks to the caller API with a bearer token. Request deadlines come from ctx.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) CheckReminders(ctx context.Context) (int, error) {
	var resp checkRemindersResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/caller/check-reminders", &resp); err != nil {
		return 0, err
	}
	return resp.NewlyQueued, nil
}

func (c *Client) FetchQueue(ctx context.Context) ([]domain.QueueEntry, error) {
	var resp queueResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/caller/reminder-queue", &resp); err != nil {
		return nil, err
	}
	return resp.Queue, nil
}

func (c *Client) Dismiss(ctx context.Context, queueID string) error {
	path := "/api/v1/caller/reminder-queue/" + url.PathEscape(queueID) + "/dismiss"
	return c.do(ctx, http.MethodPost, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	u := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.NewRequestID()
	}
	req.Header.Set(logging.RequestIDHeader, requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.DebugContext(ctx, "failed to decode alarm server response",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	default:
		return apiErr
	}
}
