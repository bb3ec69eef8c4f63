package mq

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrInvalidateParameter 表示參數不合法
	ErrInvalidateParameter = errors.New("invalidate parameter")
	// ErrClientClosed 表示消費者或生產者已關閉
	ErrClientClosed = errors.New("consumer or producer is closed")
	// ErrConsumerAlreadyRunning 表示消費者已經在運行
	ErrConsumerAlreadyRunning = errors.New("consumer is already running")
)

// KafkaError 代表 Kafka 操作錯誤
type KafkaError struct {
	Operation string
	Topic     string
	Err       error
}

func (e *KafkaError) Error() string {
	return fmt.Sprintf("kafka operation %s on topic %s failed: %v", e.Operation, e.Topic, e.Err)
}

func (e *KafkaError) Unwrap() error {
	return e.Err
}

// NewKafkaError 創建新的 KafkaError
func NewKafkaError(operation, topic string, err error) error {
	return &KafkaError{
		Operation: operation,
		Topic:     topic,
		Err:       err,
	}
}

// IsTemporary 判斷錯誤是否為暫時性錯誤，可以重試
func IsTemporary(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return IsConnectionError(err)
}

// IsConnectionError 判斷是否為連接層級的錯誤，需要重置連接
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var kafkaErr *KafkaError
	if errors.As(err, &kafkaErr) {
		err = kafkaErr.Err
	}

	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable")
}
