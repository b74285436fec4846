package pubsub

import (
	// Go Internal Packages
	"context"
	"fmt"

	// Local Packages
	ack "tx-simulator/ack"
	errors "tx-simulator/errors"
	models "tx-simulator/models"

	// External Packages
	gpubsub "cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Connect creates a Pub/Sub client for the project. Credentials come from the opts or,
// when none are given, from Application Default Credentials (PUBSUB_EMULATOR_HOST is honored).
func Connect(ctx context.Context, projectID string, opts ...option.ClientOption) (*gpubsub.Client, error) {
	if projectID == "" {
		return nil, errors.EmptyParamErr("pubsub.project_id")
	}

	client, err := gpubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.E(errors.Unavailable, "cannot create pubsub client", err)
	}
	return client, nil
}

type TxPublisher struct {
	client *gpubsub.Client
	topic  *gpubsub.Topic
	logger *zap.Logger
}

// NewTxPublisher publishes to topicID. Every message is sent as soon as it is submitted,
// there is no client side batching.
func NewTxPublisher(client *gpubsub.Client, topicID string, logger *zap.Logger) *TxPublisher {
	topic := client.Topic(topicID)
	topic.PublishSettings.CountThreshold = 1
	return &TxPublisher{client: client, topic: topic, logger: logger}
}

// TopicPath returns the fully qualified topic name.
func (p *TxPublisher) TopicPath() string {
	return p.topic.String()
}

// EnsureTopic checks that the topic exists, creating it when create is set.
func (p *TxPublisher) EnsureTopic(ctx context.Context, create bool) error {
	exists, err := p.topic.Exists(ctx)
	if err != nil {
		return errors.E(errors.Unavailable, fmt.Sprintf("cannot check topic %s", p.topic.ID()), err)
	}
	if exists {
		return nil
	}
	if !create {
		return errors.E(errors.Invalid, fmt.Sprintf("topic %s does not exist", p.TopicPath()), nil)
	}

	if _, err = p.client.CreateTopic(ctx, p.topic.ID()); err != nil {
		return errors.E(errors.Unavailable, fmt.Sprintf("cannot create topic %s", p.topic.ID()), err)
	}
	p.logger.Info("created topic", zap.String("topic", p.TopicPath()))
	return nil
}

// Publish submits the record value as the message body. The result resolves to the
// server-assigned message id.
func (p *TxPublisher) Publish(ctx context.Context, record models.Record) ack.Result {
	return p.topic.Publish(ctx, &gpubsub.Message{Data: record.Value})
}

// Stop flushes pending messages and closes the client.
func (p *TxPublisher) Stop() error {
	p.topic.Stop()
	return p.client.Close()
}
