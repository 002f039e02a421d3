package kafka

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const DefaultTopic = "bookstore.events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"bookstore.events"`
}

type EventType string

const (
	EventBookCreated        EventType = "book.created"
	EventBookUpdated        EventType = "book.updated"
	EventBookDeleted        EventType = "book.deleted"
	EventOrderCreated       EventType = "order.created"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventStockDecremented   EventType = "book.stock_decremented"
)

type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Resource  string    `json:"resource"`
	RecordID  int       `json:"recordId"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

func NewEvent(typ EventType, resource string, id int, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Resource:  resource,
		RecordID:  id,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true
	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
}

// NewPublisher wraps an async producer. A nil producer gives a publisher that drops events.
func NewPublisher(producer sarama.AsyncProducer, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ev Event) error {
	if p == nil || p.producer == nil {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Resource),
		Value: sarama.ByteEncoder(data),
	}
	return nil
}
