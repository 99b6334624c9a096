package telegram

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
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://api.telegram.org"
	DefaultTimeout = 10 * time.Second

	// Responses are tiny JSON documents, anything larger is not worth reading in full
	maxResponseBytes = 1 << 20
)

// Option configures a Client
type Option func(c *Client)

// WithBaseURL points the client at a different Bot API host, e.g. a local Bot API server
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout bounds the entire request, including reading the response body
func WithTimeout(ttl time.Duration) Option {
	return func(c *Client) {
		c.timeout = ttl
	}
}

// WithHTTPClient replaces the underlying client. Its Timeout is overwritten by WithTimeout's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Bot API client
func New(options ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		http:    &http.Client{},
		logger:  discardLogger(),
	}

	for _, o := range options {
		o(c)
	}

	hc := *c.http
	hc.Timeout = c.timeout
	c.http = &hc

	return c
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  logrus.FieldLogger
}

// SendMessage posts text to the chat of creds. Exactly one request is made, it's never retried. A nil error means the
// API responded with 200 OK and confirmed the message with "ok": true.
func (c *Client) SendMessage(ctx context.Context, creds Credentials, text string) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID: creds.ChatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("unable to encode message, reason: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(creds.Token, "sendMessage"), bytes.NewReader(payload))
	if err != nil {
		// The URL carries the token, it must not end up in the error
		return errors.New("unable to build request, check the API URL and bot token")
	}

	req.Header.Set("Content-Type", "application/json")

	// Neither the token nor the chat id are logged
	logger := c.logger.WithField("message_bytes", len(text))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = sanitizeTransportError(err)
		logger.WithError(err).Error("Request failed")
		return err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		err = sanitizeTransportError(err)
		logger.WithError(err).Error("Reading the response failed")
		return err
	}

	logger = logger.WithFields(logrus.Fields{
		"http_status": resp.StatusCode,
		"time_ms":     time.Since(start).Milliseconds(),
	})

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Unexpected HTTP status")
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var r apiResponse
	if err := json.Unmarshal(body, &r); err != nil || !r.OK {
		logger.WithField("description", r.Description).Warn("API did not confirm the message")
		return &APIError{
			Body:        string(body),
			Description: r.Description,
			Code:        r.ErrorCode,
		}
	}

	logger.Debug("Message sent")
	return nil
}

func (c *Client) endpoint(token, method string) string {
	return c.baseURL + "/bot" + token + "/" + method
}

// sanitizeTransportError strips the request URL, which contains the bot token, from transport errors
func sanitizeTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &NetworkError{Op: urlErr.Op, Err: urlErr.Err}
	}

	return &NetworkError{Op: "read", Err: err}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}
