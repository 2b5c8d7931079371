package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/service"
)

const (
	defaultMaxRetries  = 5
	defaultBaseBackoff = 200 * time.Millisecond
	maxBackoff         = 5 * time.Second
)

type Config struct {
	Brokers     []string
	GroupID     string
	Topic       string
	DLQ         string
	MaxRetries  int
	BaseBackoff time.Duration
}

// MessageHandler is what the consumer feeds; service.Service satisfies it.
type MessageHandler interface {
	HandleMessage(ctx context.Context, payload []byte) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader  messageReader
	dlq     messageWriter
	handler MessageHandler
	cfg     Config
}

func NewConsumer(cfg Config, h MessageHandler) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        100 * time.Millisecond,
		CommitInterval: 0,
	})
	var w messageWriter
	if cfg.DLQ != "" {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQ,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return newConsumer(cfg, r, w, h)
}

func newConsumer(cfg Config, r messageReader, dlq messageWriter, h MessageHandler) *Consumer {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = defaultBaseBackoff
	}
	return &Consumer{reader: r, dlq: dlq, handler: h, cfg: cfg}
}

// Subscribe blocks until ctx is cancelled. A message is committed once it is
// handled or parked in the DLQ.
func (c *Consumer) Subscribe(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			logrus.WithError(err).Warn("kafka fetch failed")
			if !sleep(ctx, 300*time.Millisecond) {
				return nil
			}
			continue
		}

		log := logrus.WithFields(logrus.Fields{"topic": m.Topic, "partition": m.Partition, "offset": m.Offset})
		log.WithField("key", string(m.Key)).Debug("message fetched")

		attempts, last := c.handle(ctx, m)
		if last != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !c.park(ctx, m, attempts, last, log) {
				continue
			}
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Error("commit failed")
		}
	}
}

// handle runs the handler with backoff and reports how many attempts it took.
func (c *Consumer) handle(ctx context.Context, m kafka.Message) (int, error) {
	var last error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 && !sleep(ctx, backoff(attempt, c.cfg.BaseBackoff)) {
			return attempt, ctx.Err()
		}
		last = c.handler.HandleMessage(ctx, m.Value)
		if last == nil {
			return attempt + 1, nil
		}
		if isNonRetryable(last) {
			return attempt + 1, last
		}
	}
	return c.cfg.MaxRetries + 1, last
}

// park writes the message to the DLQ. It returns false when the write failed
// and the message must not be committed.
func (c *Consumer) park(ctx context.Context, m kafka.Message, attempts int, cause error, log *logrus.Entry) bool {
	if c.dlq == nil {
		log.WithError(cause).Error("DLQ disabled, dropping message")
		return true
	}
	headers := append([]kafka.Header{}, m.Headers...)
	headers = append(headers,
		kafka.Header{Key: "x-dlq-reason", Value: []byte(trimErr(cause))},
		kafka.Header{Key: "x-dlq-attempts", Value: []byte(strconv.Itoa(attempts))},
		kafka.Header{Key: "x-dlq-ts", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		kafka.Header{Key: "x-dlq-source-topic", Value: []byte(c.cfg.Topic)},
		kafka.Header{Key: "x-dlq-group", Value: []byte(c.cfg.GroupID)},
	)
	if err := c.dlq.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: m.Value, Headers: headers}); err != nil {
		log.WithError(err).Error("write to DLQ failed")
		sleep(ctx, 500*time.Millisecond)
		return false
	}
	log.WithError(cause).Warn("message parked in DLQ")
	return true
}

func (c *Consumer) Close() error {
	var result *multierror.Error
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	d := base * (1 << (n - 1))
	if d > maxBackoff || d <= 0 {
		d = maxBackoff
	}
	return d
}

func trimErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		return s[:1000]
	}
	return s
}

func isNonRetryable(err error) bool {
	return errors.Is(err, service.ErrDecode) || errors.Is(err, service.ErrValidation)
}
