package streamer

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"
	"time"

	// Local Packages
	ack "tx-simulator/ack"
	errors "tx-simulator/errors"
	metrics "tx-simulator/metrics"
	models "tx-simulator/models"

	// External Packages
	"go.uber.org/zap"
)

type TxGenerator interface {
	Generate() models.Transaction
}

// Publisher submits one encoded record and returns a handle for its acknowledgment.
type Publisher interface {
	Publish(ctx context.Context, record models.Record) ack.Result
}

type Config struct {
	Topic       string
	Interval    time.Duration
	MaxMessages int // 0 streams until the context is cancelled
}

type TxStreamer struct {
	Config    Config
	Generator TxGenerator
	Publisher Publisher
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func NewTxStreamer(conf Config, gen TxGenerator, pub Publisher, m *metrics.Metrics, logger *zap.Logger) *TxStreamer {
	return &TxStreamer{Config: conf, Generator: gen, Publisher: pub, Metrics: m, Logger: logger}
}

// Run publishes one transaction per interval until ctx is cancelled or MaxMessages
// transactions were attempted. A failed publish is logged and never retried.
func (s *TxStreamer) Run(ctx context.Context) error {
	s.Logger.Info(fmt.Sprintf("starting stream to %s", s.Config.Topic),
		zap.Duration("interval", s.Config.Interval),
		zap.Int("max_messages", s.Config.MaxMessages),
	)

	attempted := 0
	for {
		if ctx.Err() != nil {
			s.Logger.Warn("stream stopped: context canceled", zap.Int("attempted", attempted))
			return ctx.Err()
		}

		// Errors are already logged and counted, the next record goes out on schedule
		_, _ = s.PublishOne(ctx)
		attempted++

		if s.Config.MaxMessages > 0 && attempted >= s.Config.MaxMessages {
			s.Logger.Info("stream finished", zap.Int("attempted", attempted))
			return nil
		}

		if err := s.wait(ctx); err != nil {
			s.Logger.Warn("stream stopped: context canceled", zap.Int("attempted", attempted))
			return err
		}
	}
}

// PublishOne generates, encodes and publishes a single transaction and blocks until the
// sink acknowledges it. It returns the acknowledgment id.
func (s *TxStreamer) PublishOne(ctx context.Context) (string, error) {
	tx := s.Generator.Generate()

	payload, err := json.Marshal(tx)
	if err != nil {
		err = errors.EncodeFailedErr(tx.TxID, err)
		s.Metrics.ObserveFailure("encode")
		s.Logger.Error("failed to encode transaction", zap.Error(err))
		return "", err
	}

	start := time.Now()
	result := s.Publisher.Publish(ctx, models.Record{Key: []byte(tx.TxID), Value: payload})
	id, err := result.Get(ctx)
	if err != nil {
		err = errors.PublishFailedErr(s.Config.Topic, tx.TxID, err)
		s.Metrics.ObserveFailure("ack")
		s.Logger.Error("failed to publish transaction", zap.String("transaction_id", tx.TxID), zap.Error(err))
		return "", err
	}

	s.Metrics.ObservePublished(tx.PSP, time.Since(start))
	s.Logger.Info("published transaction",
		zap.String("message_id", id),
		zap.String("transaction_id", tx.TxID),
		zap.Stringer("amount", tx.Amount),
	)
	return id, nil
}

func (s *TxStreamer) wait(ctx context.Context) error {
	if s.Config.Interval <= 0 {
		return nil
	}

	timer := time.NewTimer(s.Config.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
