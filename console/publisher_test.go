package console

import (
	// Go Internal Packages
	"bytes"
	"context"
	"errors"
	"testing"

	// Local Packages
	models "tx-simulator/models"

	// External Packages
	"github.com/stretchr/testify/require"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestPublishLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf, false)
	ctx := context.Background()

	id, err := p.Publish(ctx, models.Record{Value: []byte(`{"psp":"Square"}`)}).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", id)

	id, err = p.Publish(ctx, models.Record{Value: []byte(`{"psp":"paypal"}`)}).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "2", id)

	require.Equal(t, "{\"psp\":\"Square\"}\n{\"psp\":\"paypal\"}\n", buf.String())
}

func TestPublishPretty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(&buf, true)
	ctx := context.Background()

	_, err := p.Publish(ctx, models.Record{Value: []byte(`{"psp":"Stripe"}`)}).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"psp\": \"Stripe\"\n}\n", buf.String())
}

func TestPublishWriteError(t *testing.T) {
	p := NewPublisher(brokenWriter{}, false)
	ctx := context.Background()

	_, err := p.Publish(ctx, models.Record{Value: []byte(`{}`)}).Get(ctx)
	require.EqualError(t, err, "stdout closed")

	// a failed write does not consume a sequence number
	p.w = &bytes.Buffer{}
	id, err := p.Publish(ctx, models.Record{Value: []byte(`{}`)}).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", id)
}
