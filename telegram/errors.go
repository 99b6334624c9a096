package telegram

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("bot token and chat id are required")
)

// NetworkError is returned when the request couldn't be completed, e.g. on DNS failures, refused connections or
// timeouts. The request URL, which carries the bot token, is never part of the message.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is returned when the Bot API responded with a status other than 200 OK
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Body)
}

// APIError is returned when the Bot API responded with 200 OK, but didn't confirm the message with "ok": true
type APIError struct {
	Body        string
	Description string
	Code        int
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("API error %d: %s", e.Code, e.Description)
	}

	return fmt.Sprintf("API error: %s", e.Body)
}
