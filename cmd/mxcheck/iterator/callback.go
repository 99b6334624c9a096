package iterator

import (
	"bufio"
	"io"
)

// DefaultMaxLineBytes is the longest line NewLineIterator accepts
const DefaultMaxLineBytes = 1 << 20

// NewCallbackIterator provides an iterator interface based on closure callbacks
func NewCallbackIterator(next func() bool, value func() (string, error), close func() error) *CallbackIterator {
	return &CallbackIterator{
		next:  next,
		value: value,
		close: close,
	}
}

// NewLineIterator iterates over the lines of r, without the line endings. Lines longer than maxLineBytes stop the
// iteration, Close reports it.
func NewLineIterator(r io.Reader, maxLineBytes int) *CallbackIterator {
	// The scanner's limit is the larger of the buffer's capacity and max
	initial := 4096
	if maxLineBytes < initial {
		initial = maxLineBytes
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), maxLineBytes)

	return NewCallbackIterator(
		scanner.Scan,
		func() (string, error) {
			return scanner.Text(), nil
		},
		scanner.Err,
	)
}

type CallbackIterator struct {
	next  func() bool
	value func() (string, error)
	close func() error
}

// Next returns true if we have more iterations pending
func (i *CallbackIterator) Next() bool {
	return i.next()
}

// Value returns the current value, and/or an error
func (i *CallbackIterator) Value() (string, error) {
	return i.value()
}

// Close performs any cleanups. It may be used to return the last error
func (i *CallbackIterator) Close() error {
	return i.close()
}
