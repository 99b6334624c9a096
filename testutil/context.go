package testutil

import (
	"context"
	"sync"
	"time"
)

// Context wraps a parent context and can be interrupted at a moment of the test's choosing, e.g. from a server
// handler while a request is in flight. Once interrupted, Done is closed and Err keeps returning the first error.
type Context struct {
	parent context.Context
	done   chan struct{}
	once   sync.Once

	mu  sync.RWMutex
	err error
}

func NewContext(parent context.Context) *Context {
	c := &Context{
		parent: parent,
		done:   make(chan struct{}),
	}

	if pd := parent.Done(); pd != nil {
		go func() {
			select {
			case <-pd:
				c.interrupt(parent.Err())
			case <-c.done:
			}
		}()
	}

	return c
}

// Interrupt cancels the context, as a SIGINT would
func (c *Context) Interrupt() {
	c.interrupt(context.Canceled)
}

func (c *Context) interrupt(err error) {
	c.once.Do(func() {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()

		close(c.done)
	})
}

func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.parent.Deadline()
}

func (c *Context) Done() <-chan struct{} {
	return c.done
}

func (c *Context) Err() error {
	c.mu.RLock()
	err := c.err
	c.mu.RUnlock()

	if err != nil {
		return err
	}

	if err := c.parent.Err(); err != nil {
		c.interrupt(err)
		return c.Err()
	}

	return nil
}

func (c *Context) Value(key any) any {
	return c.parent.Value(key)
}
