package config

import (
	// Go Internal Packages
	"os"
	"strings"
	"time"

	// Local Packages
	errors "tx-simulator/errors"
)

var DefaultConfig = []byte(`
application: "tx-simulator"

logger:
  level: "info"

is_prod_mode: false

sink: "pubsub"

stream:
  interval: "1s"
  max_messages: 0
  seed: 0

generator:
  customer_id_min: 1000
  customer_id_max: 9999
  amount_min: 10.00
  amount_max: 15000.00

pubsub:
  project_id: ""
  topic: "globalpay-transactions"
  credentials_file: ""
  verify_topic: false
  create_topic: false

kafka:
  brokers:
    - "localhost:9092"
  topic: "globalpay-transactions"
  client_id: "tx-simulator"
  flush_timeout: "5s"

redis:
  uri: "localhost:6379"
  password: ""
  stream: "globalpay-transactions"
  max_len: 100000

console:
  pretty: false

http:
  addr: ""
`)

// Supported sinks
const (
	SinkPubSub  = "pubsub"
	SinkKafka   = "kafka"
	SinkRedis   = "redis"
	SinkConsole = "console"
)

type Config struct {
	Application string    `koanf:"application"`
	Logger      Logger    `koanf:"logger"`
	IsProdMode  bool      `koanf:"is_prod_mode"`
	Sink        string    `koanf:"sink"`
	Stream      Stream    `koanf:"stream"`
	Generator   Generator `koanf:"generator"`
	PubSub      PubSub    `koanf:"pubsub"`
	Kafka       Kafka     `koanf:"kafka"`
	Redis       Redis     `koanf:"redis"`
	Console     Console   `koanf:"console"`
	HTTP        HTTP      `koanf:"http"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Stream struct {
	Interval    time.Duration `koanf:"interval"`
	MaxMessages int           `koanf:"max_messages"`
	Seed        uint64        `koanf:"seed"`
}

type Generator struct {
	CustomerIDMin int     `koanf:"customer_id_min"`
	CustomerIDMax int     `koanf:"customer_id_max"`
	AmountMin     float64 `koanf:"amount_min"`
	AmountMax     float64 `koanf:"amount_max"`
}

type PubSub struct {
	ProjectID       string `koanf:"project_id"`
	Topic           string `koanf:"topic"`
	CredentialsFile string `koanf:"credentials_file"`
	VerifyTopic     bool   `koanf:"verify_topic"`
	CreateTopic     bool   `koanf:"create_topic"`
}

type Kafka struct {
	Brokers      []string      `koanf:"brokers"`
	Topic        string        `koanf:"topic"`
	ClientID     string        `koanf:"client_id"`
	FlushTimeout time.Duration `koanf:"flush_timeout"`
}

type Redis struct {
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
	Stream   string `koanf:"stream"`
	MaxLen   int64  `koanf:"max_len"`
}

type Console struct {
	Pretty bool `koanf:"pretty"`
}

type HTTP struct {
	Addr string `koanf:"addr"`
}

// Topic returns the destination name of the selected sink.
func (c *Config) Topic() string {
	switch c.Sink {
	case SinkKafka:
		return c.Kafka.Topic
	case SinkRedis:
		return c.Redis.Stream
	case SinkConsole:
		return "stdout"
	}
	return c.PubSub.Topic
}

// LogOutput returns where logs go. The console sink owns stdout, so its logs go to stderr.
func (c *Config) LogOutput() string {
	if c.Sink == SinkConsole {
		return "stderr"
	}
	return "stdout"
}

// LoadSecrets loads the secret variables from the environment and overrides the config
func LoadSecrets(k Config) Config {
	if projectID := os.Getenv("GOOGLE_CLOUD_PROJECT"); projectID != "" {
		k.PubSub.ProjectID = projectID
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		k.Kafka.Brokers = strings.Split(brokers, ",")
	}

	if redisURI := os.Getenv("REDIS_URI"); redisURI != "" {
		k.Redis.URI = redisURI
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		k.Redis.Password = redisPassword
	}

	if isProdMode, ok := os.LookupEnv("IS_PROD_MODE"); ok {
		k.IsProdMode = isProdMode == "true"
	}
	return k
}

// Validate validates the configuration. Only the selected sink's section is checked.
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Stream.Interval < 0 {
		ve.Add("stream.interval", "cannot be negative")
	}
	if c.Stream.MaxMessages < 0 {
		ve.Add("stream.max_messages", "cannot be negative")
	}
	if c.Generator.CustomerIDMin > c.Generator.CustomerIDMax {
		ve.Add("generator.customer_id_min", "cannot be greater than customer_id_max")
	}
	if c.Generator.AmountMin <= 0 {
		ve.Add("generator.amount_min", "must be positive")
	}
	if c.Generator.AmountMin > c.Generator.AmountMax {
		ve.Add("generator.amount_min", "cannot be greater than amount_max")
	}

	switch c.Sink {
	case SinkPubSub:
		if c.PubSub.ProjectID == "" {
			ve.Add("pubsub.project_id", "cannot be empty, set GOOGLE_CLOUD_PROJECT")
		}
		if c.PubSub.Topic == "" {
			ve.Add("pubsub.topic", "cannot be empty")
		}
	case SinkKafka:
		if len(c.Kafka.Brokers) == 0 {
			ve.Add("kafka.brokers", "cannot be empty")
		}
		if c.Kafka.Topic == "" {
			ve.Add("kafka.topic", "cannot be empty")
		}
	case SinkRedis:
		if c.Redis.URI == "" {
			ve.Add("redis.uri", "cannot be empty")
		}
		if c.Redis.Stream == "" {
			ve.Add("redis.stream", "cannot be empty")
		}
	case SinkConsole:
	default:
		ve.Add("sink", "must be one of pubsub, kafka, redis, console")
	}

	if err := ve.Err(); err != nil {
		return errors.ValidationFailedErr(err)
	}
	return nil
}
