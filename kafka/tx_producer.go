package kafka

import (
	// Go Internal Packages
	"context"
	"fmt"
	"time"

	// Local Packages
	ack "tx-simulator/ack"
	errors "tx-simulator/errors"
	models "tx-simulator/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	ClientID     string
	FlushTimeout time.Duration
}

type TxProducer struct {
	Client *kgo.Client
	Config *ProducerConfig
	Logger *zap.Logger
}

// NewTxProducer creates a producer for the configured topic. Records are keyed by
// transaction id so a transaction always lands on the same partition.
func NewTxProducer(conf *ProducerConfig, metrics *kprom.Metrics, logger *zap.Logger) (*TxProducer, error) {
	if len(conf.Brokers) == 0 {
		return nil, errors.EmptyParamErr("kafka.brokers")
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...),    // Connects to Kafka brokers
		kgo.DefaultProduceTopic(conf.Topic), // Every record goes to one topic
		kgo.ClientID(conf.ClientID),         // Identifies the simulator in broker logs
		kgo.RecordRetries(1),                // A failed record is reported, not retried
		kgo.ProducerLinger(0),               // One record per interval, nothing to batch
		kgo.RequiredAcks(kgo.AllISRAcks()),  // Acknowledged means replicated
	}
	if metrics != nil {
		opts = append(opts, kgo.WithHooks(metrics)) // Attaches monitoring hooks
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, errors.E(errors.Unavailable, "cannot create kafka client", err)
	}

	return &TxProducer{Client: client, Config: conf, Logger: logger}, nil
}

// Ping checks that at least one seed broker is reachable.
func (p *TxProducer) Ping(ctx context.Context) error {
	if err := p.Client.Ping(ctx); err != nil {
		return errors.E(errors.Unavailable, "cannot reach kafka brokers", err)
	}
	return nil
}

// Publish produces the record asynchronously. The result resolves to "topic/partition/offset".
func (p *TxProducer) Publish(ctx context.Context, record models.Record) ack.Result {
	future := ack.NewFuture()
	r := &kgo.Record{Key: record.Key, Value: record.Value}

	p.Client.Produce(ctx, r, func(produced *kgo.Record, err error) {
		if err != nil {
			future.Resolve("", err)
			return
		}
		future.Resolve(AckID(produced), nil)
	})
	return future
}

// Stop flushes buffered records and closes the client.
func (p *TxProducer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.flushTimeout())
	defer cancel()
	defer p.Client.Close()

	if err := p.Client.Flush(ctx); err != nil {
		p.Logger.Warn("flush before close did not finish", zap.Error(err))
		return err
	}
	return nil
}

func (p *TxProducer) flushTimeout() time.Duration {
	if p.Config.FlushTimeout <= 0 {
		return 5 * time.Second
	}
	return p.Config.FlushTimeout
}

// AckID formats the position of a produced record.
func AckID(r *kgo.Record) string {
	return fmt.Sprintf("%s/%d/%d", r.Topic, r.Partition, r.Offset)
}
