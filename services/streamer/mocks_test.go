package streamer

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"
	"sync"

	// Local Packages
	ack "tx-simulator/ack"
	models "tx-simulator/models"
)

var errRejected = errors.New("backend rejected message")

// stubPublisher acknowledges every record except the calls listed in failOn (1-based).
type stubPublisher struct {
	mu      sync.Mutex
	failOn  map[int]bool
	records []models.Record
	onCall  func(n int)
}

func newStubPublisher(failOn ...int) *stubPublisher {
	p := &stubPublisher{failOn: make(map[int]bool)}
	for _, n := range failOn {
		p.failOn[n] = true
	}
	return p
}

func (p *stubPublisher) Publish(_ context.Context, record models.Record) ack.Result {
	p.mu.Lock()
	p.records = append(p.records, record)
	n := len(p.records)
	p.mu.Unlock()

	if p.onCall != nil {
		p.onCall(n)
	}
	if p.failOn[n] {
		return ack.Resolved("", errRejected)
	}
	return ack.Resolved(fmt.Sprintf("msg-%d", n), nil)
}

func (p *stubPublisher) calls() []models.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Record(nil), p.records...)
}

// pendingPublisher never acknowledges.
type pendingPublisher struct{}

func (pendingPublisher) Publish(context.Context, models.Record) ack.Result {
	return ack.NewFuture()
}
