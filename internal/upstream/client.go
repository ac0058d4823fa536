package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client talks to the remote storefront backend. The backend is an opaque
// external service: every call is a single attempt, no retry, no backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// BackendError is a logical failure reported by the backend itself
// (success: false with a message), as opposed to a transport failure.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (status %d)", e.Status)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

// envelope is the common response wrapper the backend uses.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	return c.do(req, path, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

// MultipartFile is an in-memory upload part.
type MultipartFile struct {
	Field    string
	Filename string
	Content  []byte
}

func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, files []MultipartFile, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return errors.Wrap(err, "write form field")
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return errors.Wrap(err, "create form file")
		}
		if _, err := part.Write(file.Content); err != nil {
			return errors.Wrap(err, "write form file")
		}
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "close multipart writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Error("backend request failed")
		return errors.Wrapf(err, "%s %s", req.Method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		backendErr := &BackendError{Status: resp.StatusCode}
		var env envelope
		if json.Unmarshal(body, &env) == nil {
			backendErr.Message = env.Message
		}
		c.log.WithFields(logrus.Fields{"path": path, "status": resp.StatusCode, "message": backendErr.Message}).
			Error("backend returned non-2xx")
		return backendErr
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrapf(err, "decode response from %s", path)
	}
	if env.Success != nil && !*env.Success {
		c.log.WithFields(logrus.Fields{"path": path, "message": env.Message}).
			Warn("backend reported failure")
		return &BackendError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(err, "decode response from %s", path)
		}
	}
	return nil
}
