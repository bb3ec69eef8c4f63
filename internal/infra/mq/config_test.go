package mq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Brokers = []string{"localhost:9092"}
	cfg.Topic = "email-tasks"
	require.NoError(t, cfg.Validate())
}

func TestConfigValidateMissingBrokers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Topic = "email-tasks"
	require.Error(t, cfg.Validate())
}

func TestConfigValidateMissingTopic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Brokers = []string{"localhost:9092"}
	require.Error(t, cfg.Validate())
}

func TestNewConsumerRequiresGroup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Brokers = []string{"localhost:9092"}
	cfg.Topic = "email-tasks"

	_, err := NewConsumer(cfg)
	require.Error(t, err)

	cfg.ConsumerGroup = "email-workers"
	consumer, err := NewConsumer(cfg)
	require.NoError(t, err)
	require.NoError(t, consumer.Close())
}
