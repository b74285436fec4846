// Package ack holds the acknowledgment handle returned by every sink's Publish call.
package ack

import (
	// Go Internal Packages
	"context"
	"sync"
)

// Result resolves to the backend's acknowledgment id once the message is accepted,
// or to the error that prevented it. *pubsub.PublishResult satisfies it as is.
type Result interface {
	Get(ctx context.Context) (string, error)
}

// Future is a Result that is resolved exactly once, from any goroutine.
type Future struct {
	once  sync.Once
	ready chan struct{}
	id    string
	err   error
}

func NewFuture() *Future {
	return &Future{ready: make(chan struct{})}
}

// Resolve sets the outcome. Calls after the first are ignored.
func (f *Future) Resolve(id string, err error) {
	f.once.Do(func() {
		f.id, f.err = id, err
		close(f.ready)
	})
}

// Ready is closed once the future is resolved.
func (f *Future) Ready() <-chan struct{} {
	return f.ready
}

// Get blocks until the future is resolved or ctx is done. A resolved future wins over a
// done context.
func (f *Future) Get(ctx context.Context) (string, error) {
	select {
	case <-f.ready:
		return f.id, f.err
	default:
	}

	select {
	case <-f.ready:
		return f.id, f.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Resolved returns an already resolved Result, for sinks that acknowledge synchronously.
func Resolved(id string, err error) Result {
	f := NewFuture()
	f.Resolve(id, err)
	return f
}
