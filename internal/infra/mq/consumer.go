package mq

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerError 代表消費者錯誤
type ConsumerError struct {
	// Fatal 表示是否為致命錯誤，需要終止消費
	Fatal bool
	Err   error
}

func (e *ConsumerError) Error() string {
	if e.Fatal {
		return fmt.Sprintf("fatal error: %v", e.Err)
	}
	return fmt.Sprintf("temporary error: %v", e.Err)
}

func (e *ConsumerError) Unwrap() error {
	return e.Err
}

// Consumer interface defines the methods that a Kafka consumer must implement
type Consumer interface {
	Consume(ctx context.Context) (<-chan Message, <-chan error)
	CommitMessages(ctx context.Context, msgs ...Message) error
	Close() error
}

type kafkaConsumer struct {
	reader    *kafka.Reader
	cfg       *Config
	closed    atomic.Bool
	consuming atomic.Bool
	msgCh     chan Message
	errCh     chan error
	stopCh    chan struct{}
	mu        sync.Mutex
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(cfg *Config) (Consumer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ConsumerGroup == "" {
		return nil, ErrInvalidateParameter
	}

	return &kafkaConsumer{
		reader: newReader(cfg),
		cfg:    cfg,
		msgCh:  make(chan Message),
		errCh:  make(chan error, 1),
		stopCh: make(chan struct{}),
	}, nil
}

func newReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.ConsumerGroup,
		MinBytes:       cfg.ConsumerMinBytes,
		MaxBytes:       cfg.ConsumerMaxBytes,
		MaxWait:        cfg.ConsumerMaxWait,
		CommitInterval: cfg.CommitInterval,

		Dialer: &kafka.Dialer{
			Timeout:   10 * time.Second,
			DualStack: true,
			KeepAlive: 30 * time.Second,
		},

		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("kafka reader error: "+msg, args...)
		}),

		ReadBackoffMin: cfg.RetryBackoffMin,
		ReadBackoffMax: cfg.RetryBackoffMax,
	})
}

// resetConnection 重置連接
func (c *kafkaConsumer) resetConnection() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.reader.Close(); err != nil {
		log.Printf("error closing reader during reset: %v", err)
	}

	c.reader = newReader(c.cfg)
	return nil
}

// Consume implements the Consumer interface
// 只能同時執行一個消費循環
func (c *kafkaConsumer) Consume(ctx context.Context) (<-chan Message, <-chan error) {
	if c.closed.Load() {
		c.errCh <- &ConsumerError{Fatal: true, Err: ErrClientClosed}
		return c.msgCh, c.errCh
	}

	if !c.consuming.CompareAndSwap(false, true) {
		c.errCh <- &ConsumerError{Fatal: true, Err: ErrConsumerAlreadyRunning}
		return c.msgCh, c.errCh
	}

	go c.consumeLoop(ctx)

	return c.msgCh, c.errCh
}

func (c *kafkaConsumer) consumeLoop(ctx context.Context) {
	defer func() {
		c.consuming.Store(false)
		if r := recover(); r != nil {
			c.errCh <- &ConsumerError{
				Fatal: true,
				Err:   fmt.Errorf("consumer panic: %v", r),
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		default:
			if c.closed.Load() {
				c.errCh <- &ConsumerError{Fatal: true, Err: ErrClientClosed}
				return
			}

			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				kafkaErr := NewKafkaError("Consume", c.cfg.Topic, err)

				if IsConnectionError(err) {
					if resetErr := c.resetConnection(); resetErr != nil {
						c.errCh <- &ConsumerError{
							Fatal: true,
							Err:   fmt.Errorf("failed to reset connection: %w", resetErr),
						}
						return
					}

					c.errCh <- &ConsumerError{Fatal: false, Err: kafkaErr}

					select {
					case <-c.stopCh:
						return
					case <-ctx.Done():
						return
					case <-time.After(c.cfg.ReconnectWaitTime):
						continue
					}
				}

				c.errCh <- &ConsumerError{Fatal: false, Err: kafkaErr}
				continue
			}

			select {
			case c.msgCh <- FromKafkaMessage(msg):
			case <-ctx.Done():
				return
			case <-c.stopCh:
				return
			}
		}
	}
}

// CommitMessages implements the Consumer interface
func (c *kafkaConsumer) CommitMessages(ctx context.Context, msgs ...Message) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, msg := range msgs {
		kafkaMsgs[i] = kafka.Message{
			Topic:     msg.Topic,
			Partition: msg.Partition,
			Offset:    msg.Offset,
		}
	}

	if err := c.reader.CommitMessages(ctx, kafkaMsgs...); err != nil {
		return NewKafkaError("CommitMessages", c.cfg.Topic, err)
	}
	return nil
}

// Close implements the Consumer interface
func (c *kafkaConsumer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(c.stopCh)
	return c.reader.Close()
}
