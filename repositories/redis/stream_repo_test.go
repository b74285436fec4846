package redis

import (
	// Go Internal Packages
	"context"
	"errors"
	"testing"

	// Local Packages
	models "tx-simulator/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAdder struct {
	args []*redis.XAddArgs
	err  error
}

func (f *fakeAdder) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	cmd := redis.NewStringCmd(ctx, "xadd", a.Stream)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal("1718000000000-0")
	return cmd
}

func TestStreamPublish(t *testing.T) {
	adder := &fakeAdder{}
	repo := NewStreamRepository(adder, zap.NewNop(), "globalpay-transactions", 10000)

	record := models.Record{Key: []byte("tx-1"), Value: []byte(`{"transaction_id":"tx-1"}`)}
	id, err := repo.Publish(context.Background(), record).Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1718000000000-0", id)

	require.Len(t, adder.args, 1)
	args := adder.args[0]
	require.Equal(t, "globalpay-transactions", args.Stream)
	require.Equal(t, int64(10000), args.MaxLen)
	require.True(t, args.Approx)
	require.Equal(t, record.Value, args.Values.(map[string]any)["data"])
}

func TestStreamPublishUnbounded(t *testing.T) {
	adder := &fakeAdder{}
	repo := NewStreamRepository(adder, zap.NewNop(), "globalpay-transactions", 0)

	_, err := repo.Publish(context.Background(), models.Record{Value: []byte(`{}`)}).Get(context.Background())
	require.NoError(t, err)
	require.Zero(t, adder.args[0].MaxLen)
	require.False(t, adder.args[0].Approx)
}

func TestStreamPublishError(t *testing.T) {
	boom := errors.New("READONLY You can't write against a read only replica")
	repo := NewStreamRepository(&fakeAdder{err: boom}, zap.NewNop(), "globalpay-transactions", 0)

	_, err := repo.Publish(context.Background(), models.Record{Value: []byte(`{}`)}).Get(context.Background())
	require.ErrorIs(t, err, boom)
}
