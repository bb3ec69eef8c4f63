package mq

import (
	"time"
)

// Config 代表 Kafka 客戶端設定，生產者與消費者共用
type Config struct {
	Brokers []string
	Topic   string

	// 消費者配置
	ConsumerGroup    string
	ConsumerMinBytes int
	ConsumerMaxBytes int
	ConsumerMaxWait  time.Duration
	CommitInterval   time.Duration

	// 生產者配置
	RequiredAcks int
	BatchSize    int
	BatchTimeout time.Duration

	// 重試相關配置
	RetryAttempts     int
	RetryBackoffMin   time.Duration
	RetryBackoffMax   time.Duration
	ReconnectWaitTime time.Duration
}

// Validate 檢查必要欄位
func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return ErrInvalidateParameter
	}
	if c.Topic == "" {
		return ErrInvalidateParameter
	}
	return nil
}

// DefaultConfig returns a Config with default settings
func DefaultConfig() *Config {
	return &Config{
		ConsumerMinBytes:  10e3, // 10KB
		ConsumerMaxBytes:  10e6, // 10MB
		ConsumerMaxWait:   time.Second,
		CommitInterval:    100 * time.Millisecond,
		RequiredAcks:      -1, // 等待所有副本確認
		BatchSize:         100,
		BatchTimeout:      time.Second,
		RetryAttempts:     3,
		RetryBackoffMin:   200 * time.Millisecond,
		RetryBackoffMax:   5 * time.Second,
		ReconnectWaitTime: time.Second,
	}
}
