package reportportal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	jsonPartName   = "json_request_part"
	filePartName   = "file"
)

// ClientConfig holds the connection settings of a ReportPortal instance.
type ClientConfig struct {
	// Endpoint is the base URL, e.g. https://rp.example.com.
	Endpoint string
	Project  string
	APIKey   string
	// Timeout is used only when no http.Client is supplied.
	Timeout time.Duration
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reportportal: http %d", e.StatusCode)
	}
	return fmt.Sprintf("reportportal: http %d: %s", e.StatusCode, e.Message)
}

// Client talks to the ReportPortal REST API v1.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ Service = (*Client)(nil)

// NewClient constructs a client. A nil httpClient gets a default client with
// cfg.Timeout.
func NewClient(cfg ClientConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Endpoint, "/") + "/api/v1/" + url.PathEscape(cfg.Project),
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}
}

// StartLaunch opens a launch.
func (c *Client) StartLaunch(ctx context.Context, rq *StartLaunchRQ) (*EntryCreatedRS, error) {
	var rs EntryCreatedRS
	if err := c.sendJSON(ctx, http.MethodPost, "/launch", rq, &rs); err != nil {
		return nil, fmt.Errorf("start launch: %w", err)
	}
	return &rs, nil
}

// FinishLaunch closes a launch.
func (c *Client) FinishLaunch(ctx context.Context, launchID string, rq *FinishExecutionRQ) error {
	if err := c.sendJSON(ctx, http.MethodPut, "/launch/"+url.PathEscape(launchID)+"/finish", rq, nil); err != nil {
		return fmt.Errorf("finish launch %s: %w", launchID, err)
	}
	return nil
}

// StartTestItem opens an item under parentID, or at the launch root when
// parentID is empty.
func (c *Client) StartTestItem(ctx context.Context, parentID string, rq *StartTestItemRQ) (*EntryCreatedRS, error) {
	path := "/item"
	if parentID != "" {
		path += "/" + url.PathEscape(parentID)
	}

	var rs EntryCreatedRS
	if err := c.sendJSON(ctx, http.MethodPost, path, rq, &rs); err != nil {
		return nil, fmt.Errorf("start item %q: %w", rq.Name, err)
	}
	return &rs, nil
}

// FinishTestItem closes an item.
func (c *Client) FinishTestItem(ctx context.Context, itemID string, rq *FinishTestItemRQ) error {
	if err := c.sendJSON(ctx, http.MethodPut, "/item/"+url.PathEscape(itemID), rq, nil); err != nil {
		return fmt.Errorf("finish item %s: %w", itemID, err)
	}
	return nil
}

// Log appends a log entry. Entries with a file are sent as a multipart
// request: a JSON array in json_request_part followed by the file part.
func (c *Client) Log(ctx context.Context, rq *SaveLogRQ) error {
	if rq.File == nil {
		if err := c.sendJSON(ctx, http.MethodPost, "/log", rq, nil); err != nil {
			return fmt.Errorf("save log: %w", err)
		}
		return nil
	}

	body, contentType, err := multipartLog(rq)
	if err != nil {
		return fmt.Errorf("save log: %w", err)
	}
	if err := c.send(ctx, http.MethodPost, "/log", contentType, body, nil); err != nil {
		return fmt.Errorf("save log with attachment %q: %w", rq.File.Name, err)
	}
	return nil
}

func multipartLog(rq *SaveLogRQ) (*bytes.Buffer, string, error) {
	payload, err := json.Marshal([]*SaveLogRQ{rq})
	if err != nil {
		return nil, "", err
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	jsonHeader := textproto.MIMEHeader{}
	jsonHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, jsonPartName))
	jsonHeader.Set("Content-Type", "application/json")
	part, err := w.CreatePart(jsonHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}

	contentType := rq.File.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, filePartName, rq.File.Name))
	fileHeader.Set("Content-Type", contentType)
	part, err = w.CreatePart(fileHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(rq.File.Content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.send(ctx, method, path, "application/json", bytes.NewReader(payload), out)
}

func (c *Client) send(ctx context.Context, method, path, contentType string, payload io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeHTTPError(resp.StatusCode, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

type errorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return &APIError{StatusCode: status, Message: resp.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
