package runtimer

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

type Callback func(s os.Signal)

func New(signals ...os.Signal) *SignalHandler {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	sh := &SignalHandler{
		c:    c,
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	go sh.handle()

	return sh
}

// NotifyContext returns a copy of parent that's canceled on the first of signals. Calling stop releases the signal
// handler, it's safe to call more than once.
func NotifyContext(parent context.Context, signals ...os.Signal) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)

	sh := New(signals...)
	sh.RegisterCallback(func(os.Signal) {
		cancel()
	})

	return ctx, func() {
		sh.Stop()
		cancel()
	}
}

type SignalHandler struct {
	c    chan os.Signal
	quit chan struct{}
	done chan struct{}
	once sync.Once

	m   sync.Mutex
	fns []Callback
}

func (sh *SignalHandler) handle() {
	defer close(sh.done)

	select {
	case s := <-sh.c:
		signal.Stop(sh.c)

		sh.m.Lock()
		fns := append([]Callback(nil), sh.fns...)
		sh.m.Unlock()

		for _, fn := range fns {
			fn(s)
		}

	case <-sh.quit:
		signal.Stop(sh.c)
	}
}

func (sh *SignalHandler) RegisterCallback(fn Callback) {
	sh.m.Lock()
	sh.fns = append(sh.fns, fn)
	sh.m.Unlock()
}

// Wait block until all callback's have been called
func (sh *SignalHandler) Wait() {
	<-sh.done
}

// Stop stops listening for signals. When a signal was already received, it blocks until the callbacks are done.
func (sh *SignalHandler) Stop() {
	sh.once.Do(func() {
		close(sh.quit)
	})

	<-sh.done
}
