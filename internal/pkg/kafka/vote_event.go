package kafka

import (
	"context"
	"time"

	"Credo/internal/api/config"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// VoteEvent 投票落库后发出的事件，消费侧据此回刷内容计票
type VoteEvent struct {
	PublicationID uint64    `json:"publication_id"`
	VoterID       uint64    `json:"voter_id"`
	Believed      *bool     `json:"believed"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type VoteEventProducer interface {
	Publish(ctx context.Context, event *VoteEvent) error
	Close() error
}

type voteEventProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewVoteEventProducer(cfg *config.Config) (VoteEventProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &voteEventProducerImpl{
		producer: producer,
		topic:    cfg.KafkaVoteConsumer.Topic,
	}, nil
}

func (s *voteEventProducerImpl) Publish(ctx context.Context, event *VoteEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(uintToStr(event.PublicationID)),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (s *voteEventProducerImpl) Close() error {
	return s.producer.Close()
}
