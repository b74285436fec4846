package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "tx-simulator/config"
	console "tx-simulator/console"
	kafka "tx-simulator/kafka"
	metrics "tx-simulator/metrics"
	pubsub "tx-simulator/pubsub"
	redis "tx-simulator/repositories/redis"
	server "tx-simulator/server"
	generator "tx-simulator/services/generator"
	streamer "tx-simulator/services/streamer"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Sink is a publisher that owns a backend connection.
type Sink interface {
	streamer.Publisher
	Stop() error
}

type redisSink struct {
	*redis.StreamRepository
	stop func() error
}

func (s redisSink) Stop() error { return s.stop() }

type consoleSink struct {
	*console.Publisher
}

func (consoleSink) Stop() error { return nil }

// NewLogger builds the logfmt production logger
func NewLogger(appKonf config.Config) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(appKonf.Logger.Level))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{appKonf.LogOutput()}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	return logger
}

// NewSink connects to the configured messaging backend.
func NewSink(ctx context.Context, appKonf config.Config, m *metrics.Metrics, logger *zap.Logger) (Sink, error) {
	switch appKonf.Sink {
	case config.SinkKafka:
		conf := &kafka.ProducerConfig{
			Brokers:      appKonf.Kafka.Brokers,
			Topic:        appKonf.Kafka.Topic,
			ClientID:     appKonf.Kafka.ClientID,
			FlushTimeout: appKonf.Kafka.FlushTimeout,
		}
		kmetrics := kprom.NewMetrics("txsim", kprom.Registry(m.Registry))
		producer, err := kafka.NewTxProducer(conf, kmetrics, logger)
		if err != nil {
			return nil, err
		}
		if err = producer.Ping(ctx); err != nil {
			producer.Client.Close()
			return nil, err
		}
		return producer, nil

	case config.SinkRedis:
		client, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
		if err != nil {
			return nil, err
		}
		repo := redis.NewStreamRepository(client, logger, appKonf.Redis.Stream, appKonf.Redis.MaxLen)
		return redisSink{StreamRepository: repo, stop: client.Close}, nil

	case config.SinkConsole:
		return consoleSink{console.NewPublisher(os.Stdout, appKonf.Console.Pretty)}, nil
	}

	var opts []option.ClientOption
	if appKonf.PubSub.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(appKonf.PubSub.CredentialsFile))
	}
	client, err := pubsub.Connect(ctx, appKonf.PubSub.ProjectID, opts...)
	if err != nil {
		return nil, err
	}
	publisher := pubsub.NewTxPublisher(client, appKonf.PubSub.Topic, logger)
	if appKonf.PubSub.VerifyTopic || appKonf.PubSub.CreateTopic {
		if err = publisher.EnsureTopic(ctx, appKonf.PubSub.CreateTopic); err != nil {
			_ = publisher.Stop()
			return nil, err
		}
	}
	return publisher, nil
}

func main() {
	// A .env file is optional, the environment wins over it
	_ = godotenv.Load()

	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()
	kingpin.Parse()

	k, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appKonf, err := config.Parse(k)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		if appKonf.LogOutput() == "stderr" {
			fmt.Fprint(os.Stderr, k.Sprint())
		} else {
			k.Print()
		}
	}

	logger := NewLogger(appKonf)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New("txsim")

	sink, err := NewSink(ctx, appKonf, m, logger)
	if err != nil {
		logger.Fatal("cannot create publisher", zap.String("sink", appKonf.Sink), zap.Error(err))
	}
	defer func() {
		if err := sink.Stop(); err != nil {
			logger.Warn("publisher did not stop cleanly", zap.Error(err))
		}
	}()

	if appKonf.HTTP.Addr != "" {
		go func() {
			if err := server.Serve(ctx, appKonf.HTTP.Addr, server.NewRouter(m), logger); err != nil {
				logger.Error("http server failed", zap.Error(err))
			}
		}()
	}

	genConf := generator.Config{
		CustomerIDMin: appKonf.Generator.CustomerIDMin,
		CustomerIDMax: appKonf.Generator.CustomerIDMax,
		AmountMin:     appKonf.Generator.AmountMin,
		AmountMax:     appKonf.Generator.AmountMax,
	}
	txGenerator := generator.NewTxGenerator(genConf, generator.WithSeed(appKonf.Stream.Seed))

	conf := streamer.Config{
		Topic:       appKonf.Topic(),
		Interval:    appKonf.Stream.Interval,
		MaxMessages: appKonf.Stream.MaxMessages,
	}
	txStreamer := streamer.NewTxStreamer(conf, txGenerator, sink, m, logger)

	err = txStreamer.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stream stopped", zap.Error(err))
	}
}
