package mq

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// Header 代表訊息的標頭
// 用於存放訊息的元數據，如追蹤ID、訊息類型等
type Header struct {
	Key   string
	Value []byte
}

// Message 代表一則佇列訊息
// Key 用於分區分配，相同的 Key 會被分配到相同的分區，保證相關訊息的順序性
type Message struct {
	Key       []byte
	Value     []byte
	Topic     string
	Partition int
	Offset    int64
	Headers   []Header
	Time      time.Time
}

// ToKafkaMessage 轉換為 kafka-go 的訊息格式
func (m *Message) ToKafkaMessage() kafka.Message {
	headers := make([]kafka.Header, len(m.Headers))
	for i, h := range m.Headers {
		headers[i] = kafka.Header{
			Key:   h.Key,
			Value: h.Value,
		}
	}

	return kafka.Message{
		Key:     m.Key,
		Value:   m.Value,
		Headers: headers,
		Time:    m.Time,
	}
}

// FromKafkaMessage 由 kafka-go 的訊息格式轉換回來
func FromKafkaMessage(msg kafka.Message) Message {
	headers := make([]Header, len(msg.Headers))
	for i, h := range msg.Headers {
		headers[i] = Header{
			Key:   h.Key,
			Value: h.Value,
		}
	}

	return Message{
		Key:       msg.Key,
		Value:     msg.Value,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Headers:   headers,
		Time:      msg.Time,
	}
}
