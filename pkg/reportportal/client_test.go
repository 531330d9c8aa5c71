package reportportal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	auth        string
	contentType string
	body        []byte
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = append(captured, capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			auth:        r.Header.Get("Authorization"),
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv, &captured
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(ClientConfig{Endpoint: srv.URL + "/", Project: "demo", APIKey: "secret"}, srv.Client())
}

func TestClient_StartLaunch(t *testing.T) {
	t.Run("should post launch and return id", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, `{"id":"launch-1"}`)
		client := newTestClient(srv)
		start := time.UnixMilli(1700000000123)

		rs, err := client.StartLaunch(context.Background(), &StartLaunchRQ{
			Name:       "nightly",
			StartTime:  NewTimestamp(start),
			Attributes: AttributesFromTags([]string{"smoke"}),
			Mode:       ModeDefault,
		})

		require.NoError(t, err)
		require.Equal(t, "launch-1", rs.ID)
		require.Len(t, *captured, 1)

		req := (*captured)[0]
		require.Equal(t, http.MethodPost, req.method)
		require.Equal(t, "/api/v1/demo/launch", req.path)
		require.Equal(t, "Bearer secret", req.auth)
		require.JSONEq(t, `{"name":"nightly","startTime":1700000000123,"attributes":[{"value":"smoke"}],"mode":"DEFAULT"}`, string(req.body))
	})

	t.Run("should return api error for non-2xx response", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusUnauthorized, `{"errorCode":4003,"message":"Access denied"}`)
		client := newTestClient(srv)

		_, err := client.StartLaunch(context.Background(), &StartLaunchRQ{Name: "x"})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Access denied", apiErr.Message)
	})

	t.Run("should keep raw body when error is not json", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusBadGateway, "upstream down\n")
		client := newTestClient(srv)

		_, err := client.StartLaunch(context.Background(), &StartLaunchRQ{Name: "x"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "upstream down", apiErr.Message)
	})
}

func TestClient_Items(t *testing.T) {
	t.Run("should start root item without parent segment", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, `{"id":"item-1"}`)
		client := newTestClient(srv)

		rs, err := client.StartTestItem(context.Background(), "", &StartTestItemRQ{LaunchID: "l", Name: "Feature: A", Type: ItemTypeSuite})

		require.NoError(t, err)
		require.Equal(t, "item-1", rs.ID)
		require.Equal(t, "/api/v1/demo/item", (*captured)[0].path)
	})

	t.Run("should start child item under parent", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, `{"id":"item-2"}`)
		client := newTestClient(srv)

		_, err := client.StartTestItem(context.Background(), "item-1", &StartTestItemRQ{Name: "Scenario: B", Type: ItemTypeTest})

		require.NoError(t, err)
		require.Equal(t, "/api/v1/demo/item/item-1", (*captured)[0].path)
	})

	t.Run("should finish item with issue", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
		client := newTestClient(srv)

		err := client.FinishTestItem(context.Background(), "item-2", &FinishTestItemRQ{
			LaunchID: "l",
			EndTime:  NewTimestamp(time.UnixMilli(5)),
			Status:   StatusFailed,
			Issue:    &Issue{IssueType: IssueAutomationBug, Comment: "Pending step"},
		})

		require.NoError(t, err)
		req := (*captured)[0]
		require.Equal(t, http.MethodPut, req.method)
		require.Equal(t, "/api/v1/demo/item/item-2", req.path)
		require.JSONEq(t, `{"launchUuid":"l","endTime":5,"status":"FAILED","issue":{"issueType":"AUTOMATION_BUG","comment":"Pending step"}}`, string(req.body))
	})

	t.Run("should finish launch", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusOK, `{}`)
		client := newTestClient(srv)

		err := client.FinishLaunch(context.Background(), "launch-1", &FinishExecutionRQ{EndTime: NewTimestamp(time.UnixMilli(9))})

		require.NoError(t, err)
		require.Equal(t, "/api/v1/demo/launch/launch-1/finish", (*captured)[0].path)
		require.Equal(t, http.MethodPut, (*captured)[0].method)
	})
}

func TestClient_Log(t *testing.T) {
	t.Run("should send plain entry as json", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, `{"id":"log-1"}`)
		client := newTestClient(srv)

		err := client.Log(context.Background(), &SaveLogRQ{LaunchID: "l", ItemID: "i", Time: NewTimestamp(time.UnixMilli(0)), Message: "hello", Level: LevelInfo})

		require.NoError(t, err)
		req := (*captured)[0]
		require.Equal(t, "/api/v1/demo/log", req.path)
		require.Equal(t, "application/json", req.contentType)
		require.JSONEq(t, `{"launchUuid":"l","itemUuid":"i","time":0,"message":"hello","level":"INFO"}`, string(req.body))
	})

	t.Run("should send attachment as multipart", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusCreated, `{"responses":[]}`)
		client := newTestClient(srv)

		err := client.Log(context.Background(), &SaveLogRQ{
			LaunchID: "l",
			ItemID:   "i",
			Message:  "image",
			Level:    LevelUnknown,
			File:     &File{Name: "image", ContentType: "image/png", Content: []byte{0x89, 'P', 'N', 'G'}},
		})

		require.NoError(t, err)
		req := (*captured)[0]
		mediaType, params, err := mime.ParseMediaType(req.contentType)
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(bytes.NewReader(req.body), params["boundary"])

		jsonPart, err := reader.NextPart()
		require.NoError(t, err)
		require.Equal(t, "json_request_part", jsonPart.FormName())
		var entries []map[string]any
		require.NoError(t, json.NewDecoder(jsonPart).Decode(&entries))
		require.Len(t, entries, 1)
		require.Equal(t, "image", entries[0]["message"])
		require.Equal(t, map[string]any{"name": "image"}, entries[0]["file"])

		filePart, err := reader.NextPart()
		require.NoError(t, err)
		require.Equal(t, "file", filePart.FormName())
		require.Equal(t, "image", filePart.FileName())
		require.Equal(t, "image/png", filePart.Header.Get("Content-Type"))
		content, err := io.ReadAll(filePart)
		require.NoError(t, err)
		require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("should default http client timeout", func(t *testing.T) {
		client := NewClient(ClientConfig{Endpoint: "https://rp", Project: "p"}, nil)

		require.Equal(t, defaultTimeout, client.client.Timeout)
		require.Equal(t, "https://rp/api/v1/p", client.baseURL)
	})

	t.Run("should use configured timeout", func(t *testing.T) {
		client := NewClient(ClientConfig{Endpoint: "https://rp", Project: "p", Timeout: time.Second}, nil)

		require.Equal(t, time.Second, client.client.Timeout)
	})
}
