package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JaimeStill/print-orders/internal/config"
)

const (
	pathDimensions  = "/get-dimensions"
	pathCreateOrder = "/create-order"
	pathUpload      = "/upload"
)

// Client talks to the storefront over HTTP.
type Client struct {
	baseURL        *url.URL
	http           *http.Client
	fileTimeout    time.Duration
	requestTimeout time.Duration
	logger         *slog.Logger
}

// New creates a storefront client from a finalized client configuration.
func New(cfg *config.ClientConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base_url: %w", err)
	}

	return &Client{
		baseURL:        base,
		http:           &http.Client{},
		fileTimeout:    cfg.FileTimeoutDuration(),
		requestTimeout: cfg.RequestTimeoutDuration(),
		logger:         logger.With("system", "storefront"),
	}, nil
}

type formFile struct {
	field string
	name  string
	body  io.Reader
}

// postForm sends a multipart form and returns the response.
// The caller closes the response body.
func (c *Client) postForm(ctx context.Context, path string, fields [][2]string, file *formFile) (*http.Response, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, fields, file))
	}()

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		pr.Close()
		return nil, classify(err)
	}

	resp.Body = &pipedBody{ReadCloser: resp.Body, pipe: pr}
	return resp, nil
}

// pipedBody releases the form writer when the response is closed, in case
// the server answered before consuming the whole request.
type pipedBody struct {
	io.ReadCloser
	pipe *io.PipeReader
}

func (b *pipedBody) Close() error {
	b.pipe.Close()
	return b.ReadCloser.Close()
}

func writeForm(mw *multipart.Writer, fields [][2]string, file *formFile) error {
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}

	if file != nil {
		part, err := mw.CreateFormFile(file.field, file.name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.body); err != nil {
			return err
		}
	}

	return mw.Close()
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// errorBody is the JSON error envelope returned by the storefront.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (b errorBody) message(fallback string) string {
	switch {
	case b.Details != "":
		return b.Details
	case b.Error != "":
		return b.Error
	default:
		return fallback
	}
}

// statusError builds the error for a non-2xx response.
func statusError(kind error, resp *http.Response, fallback string) error {
	var body errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &body); err != nil {
		body.Details = strings.TrimSpace(string(data))
	}
	return fmt.Errorf("%w: %w: status %d: %s", kind, ErrNetwork, resp.StatusCode, body.message(fallback))
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
