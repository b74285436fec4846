// Package console is an offline sink that writes every transaction to a writer instead
// of a messaging backend.
package console

import (
	// Go Internal Packages
	"context"
	"io"
	"strconv"
	"sync"

	// Local Packages
	ack "tx-simulator/ack"
	helpers "tx-simulator/helpers"
	models "tx-simulator/models"
)

type Publisher struct {
	mu     sync.Mutex
	w      io.Writer
	pretty bool
	seq    uint64
}

func NewPublisher(w io.Writer, pretty bool) *Publisher {
	return &Publisher{w: w, pretty: pretty}
}

// Publish writes the record value on its own line. The acknowledgment id is the
// 1-based sequence number of the write.
func (p *Publisher) Publish(_ context.Context, record models.Record) ack.Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.pretty {
		err = helpers.IndentJSON(p.w, record.Value)
	} else {
		_, err = p.w.Write(append(append([]byte(nil), record.Value...), '\n'))
	}
	if err != nil {
		return ack.Resolved("", err)
	}

	p.seq++
	return ack.Resolved(strconv.FormatUint(p.seq, 10), nil)
}
